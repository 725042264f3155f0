package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
)

const testSecret = "test-ingest-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestMiddleware() *Middleware {
	return NewMiddleware(testSecret, "*", logger.InitLogger("middleware-test", logger.LevelError))
}

func TestRequireIngestToken_ValidToken(t *testing.T) {
	called := false
	h := newTestMiddleware().RequireIngestToken(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/ingest-taxi-data", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Fatal("handler was not called")
	}
}

func TestRequireIngestToken_MissingHeader(t *testing.T) {
	h := newTestMiddleware().RequireIngestToken(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ingest-taxi-data", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireIngestToken_WrongSecret(t *testing.T) {
	h := newTestMiddleware().RequireIngestToken(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/ingest-taxi-data", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "some-other-secret"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireIngestToken_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic dXNlcg==", "Bearer "} {
		h := newTestMiddleware().RequireIngestToken(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		})

		req := httptest.NewRequest(http.MethodPost, "/ingest-taxi-data", nil)
		req.Header.Set("Authorization", header)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}
