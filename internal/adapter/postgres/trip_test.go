package postgres

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
)

func TestClassify_ConnectionErrorMapsToStoreUnavailable(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := classify(fmt.Errorf("trip repo: List: %w", dialErr))

	if !errors.Is(err, types.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable in chain, got %v", err)
	}
}

func TestClassify_ServerErrorPassesThrough(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	wrapped := fmt.Errorf("trip repo: List: %w", pgErr)

	err := classify(wrapped)
	if errors.Is(err, types.ErrStoreUnavailable) {
		t.Fatalf("server-side error must not map to ErrStoreUnavailable: %v", err)
	}
	if !errors.Is(err, wrapped) {
		t.Fatalf("expected error to pass through unchanged, got %v", err)
	}
}

func TestClassify_Nil(t *testing.T) {
	if err := classify(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
