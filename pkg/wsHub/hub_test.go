package ws

import (
	"context"
	"testing"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

func TestHub_ReplaceSameClientThenClose(t *testing.T) {
	hub := NewConnHub(logger.InitLogger("hub-test", logger.LevelError))

	id, err := uuid.New()
	if err != nil {
		t.Fatalf("failed to generate client id: %v", err)
	}

	if err := hub.Add(NewConn(context.Background(), id, nil)); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	// same clientID replaces the first connection, the wait group must not
	// count the slot twice
	if err := hub.Add(NewConn(context.Background(), id, nil)); err != nil {
		t.Fatalf("replacing Add failed: %v", err)
	}

	if got := hub.Count(); got != 1 {
		t.Fatalf("expected 1 connection after replace, got %d", got)
	}

	done := make(chan struct{})
	go func() {
		hub.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return after a connection was replaced")
	}
}

func TestHub_DeleteUnknownClient(t *testing.T) {
	hub := NewConnHub(logger.InitLogger("hub-test", logger.LevelError))

	id, err := uuid.New()
	if err != nil {
		t.Fatalf("failed to generate client id: %v", err)
	}

	if err := hub.Delete(id); err != ErrConnIsNotFound {
		t.Fatalf("expected ErrConnIsNotFound, got %v", err)
	}
}
