package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/scouting-dashboard/internal/config"
	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
)

func TestNewHTTPServer_MemoryFallback(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		CORSAllowedOrigins: []string{"*"},
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		Dashboard: config.DashboardConfig{
			ExpiryHorizonMonths: 12,
			ExpiringLimit:       20,
			TopN:                10,
			DistributionLimit:   10,
		},
	}
	logger := logging.NewNop()

	repos, err := NewRepositories(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("new repositories: %v", err)
	}
	t.Cleanup(func() { _ = repos.Close() })
	if repos.Writer != nil {
		t.Fatalf("expected no writer for the memory store")
	}

	srv, err := NewHTTPServer(cfg, repos, logger)
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewHTTPServer_Validation(t *testing.T) {
	logger := logging.NewNop()

	if _, err := NewHTTPServer(config.Config{}, Repositories{}, logger); err == nil {
		t.Fatalf("expected error for empty addr")
	}
	if _, err := NewHTTPServer(config.Config{HTTPAddr: ":0", AuthEnabled: true}, Repositories{}, logger); err == nil {
		t.Fatalf("expected error for auth without secret")
	}
}
