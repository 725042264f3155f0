package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

func corsMiddleware(origins string) *Middleware {
	return NewMiddleware(testSecret, origins, logger.InitLogger("middleware-test", logger.LevelError))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_AllowAll(t *testing.T) {
	h := corsMiddleware("*").CORS(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/analytics/overview", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestCORS_Allowlist(t *testing.T) {
	h := corsMiddleware("http://localhost:3000, https://dashboard.example.com").CORS(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/analytics/overview", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.com" {
		t.Fatalf("expected origin to be echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/analytics/overview", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin should not be allowed, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := corsMiddleware("*").CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/ingest-taxi-data", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if called {
		t.Fatal("preflight must not reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatal("expected allowed methods header on preflight")
	}
}
