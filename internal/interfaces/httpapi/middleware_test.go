package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/scouting-dashboard/internal/domain/user"
	"github.com/riskibarqy/scouting-dashboard/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
	gotToken  string
}

func (s *stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	s.gotToken = token
	return s.principal, s.err
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://scout.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	req.Header.Set("Origin", "https://scout.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://scout.example.com" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_OptionsPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/stats", nil)
	req.Header.Set("Origin", "https://scout.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
	}
}

func TestCORS_DisallowsUnconfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://allowed.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	req.Header.Set("Origin", "https://not-allowed.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
	}
}

func TestRequireAuth(t *testing.T) {
	var seen user.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   string
		verifier *stubVerifier
		wantCode int
	}{
		{name: "missing header", header: "", verifier: &stubVerifier{}, wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", verifier: &stubVerifier{}, wantCode: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", verifier: &stubVerifier{}, wantCode: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", verifier: &stubVerifier{err: fmt.Errorf("%w: expired", usecase.ErrUnauthorized)}, wantCode: http.StatusUnauthorized},
		{name: "valid token", header: "bearer good", verifier: &stubVerifier{principal: user.Principal{UserID: "u-1"}}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = user.Principal{}
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireAuth(tt.verifier, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if tt.wantCode == http.StatusOK {
				if seen.UserID != "u-1" || tt.verifier.gotToken != "good" {
					t.Fatalf("principal not propagated: %+v token=%q", seen, tt.verifier.gotToken)
				}
			}
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz "} {
		if shouldTraceRequest(path) {
			t.Fatalf("expected no tracing for path %q", path)
		}
	}
	for _, path := range []string{"/v1/dashboard/stats", "/v1/players", "/"} {
		if !shouldTraceRequest(path) {
			t.Fatalf("expected tracing for path %q", path)
		}
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(nil, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/players", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
