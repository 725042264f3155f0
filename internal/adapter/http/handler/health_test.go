package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubProber struct {
	count int
	err   error
}

func (s *stubProber) Count(ctx context.Context) (int, error) {
	return s.count, s.err
}

func TestHealthCheck_Healthy(t *testing.T) {
	h := NewHealth("taxi-analytics", &stubProber{count: 10}, testLogger())

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Status != "healthy" || body.Database != "connected" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHealthCheck_StoreDown(t *testing.T) {
	h := NewHealth("taxi-analytics", &stubProber{err: errors.New("dial refused")}, testLogger())

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Status != "unhealthy" || body.Database != "disconnected" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
