package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DB_URL to select memory storage, got %q", cfg.DBURL)
	}
	if cfg.AuthEnabled {
		t.Fatalf("expected auth disabled by default in dev")
	}
	want := DashboardConfig{ExpiryHorizonMonths: 12, ExpiringLimit: 20, TopN: 10, DistributionLimit: 10}
	if cfg.Dashboard != want {
		t.Fatalf("unexpected dashboard defaults: %+v", cfg.Dashboard)
	}
	if cfg.CacheTTL != 60*time.Second || !cfg.CacheEnabled {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.SeedWorkers != 8 {
		t.Fatalf("unexpected seed workers: %d", cfg.SeedWorkers)
	}
}

func TestLoad_AuthRequiresSecretOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when auth is enabled without AUTH_JWT_SECRET")
	}

	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.AuthEnabled || cfg.AuthJWTIssuer != "scouting-dashboard" {
		t.Fatalf("unexpected auth config: enabled=%v issuer=%q", cfg.AuthEnabled, cfg.AuthJWTIssuer)
	}
}

func TestLoad_DashboardConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DASHBOARD_EXPIRY_HORIZON_MONTHS", "6")
		t.Setenv("DASHBOARD_EXPIRING_LIMIT", "5")
		t.Setenv("DASHBOARD_TOP_N", "3")
		t.Setenv("DASHBOARD_DISTRIBUTION_LIMIT", "0")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		want := DashboardConfig{ExpiryHorizonMonths: 6, ExpiringLimit: 5, TopN: 3, DistributionLimit: 0}
		if cfg.Dashboard != want {
			t.Fatalf("unexpected dashboard config: %+v", cfg.Dashboard)
		}
	})

	t.Run("rejects zero top n", func(t *testing.T) {
		t.Setenv("DASHBOARD_TOP_N", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DASHBOARD_TOP_N=0")
		}
	})

	t.Run("rejects negative horizon", func(t *testing.T) {
		t.Setenv("DASHBOARD_EXPIRY_HORIZON_MONTHS", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative horizon")
		}
	})
}

func TestLoad_DBCircuitConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DB_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("DB_CIRCUIT_OPEN_TIMEOUT", "30s")
	t.Setenv("DB_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.DBCircuitEnabled || cfg.DBCircuitFailureCount != 3 || cfg.DBCircuitOpenTimeout != 30*time.Second || cfg.DBCircuitHalfOpenMaxReq != 1 {
		t.Fatalf("unexpected circuit config: %+v", cfg)
	}

	t.Setenv("DB_CIRCUIT_OPEN_TIMEOUT", "0s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero open timeout")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev"`)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "scouting-api")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "scouting-api" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}

	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without server address")
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://scout.example.com , ,http://localhost:3000 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:3000" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}

	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for empty CORS origins")
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("AUTH_JWT_SECRET", "s3cret")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}
