package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/scouting-dashboard/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	CORSAllowedOrigins      []string
	SwaggerEnabled          bool
	LogLevel                logging.Level
	DBURL                   string
	DBBootstrapSeed         bool
	DBCircuitEnabled        bool
	DBCircuitFailureCount   int
	DBCircuitOpenTimeout    time.Duration
	DBCircuitHalfOpenMaxReq int
	CacheEnabled            bool
	CacheTTL                time.Duration
	AuthEnabled             bool
	AuthJWTSecret           string
	AuthJWTIssuer           string
	Dashboard               DashboardConfig
	UptraceEnabled          bool
	UptraceDSN              string
	UptraceLogsEnabled      bool
	PprofEnabled            bool
	PprofAddr               string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
	SeedWorkers             int
}

// DashboardConfig tunes the aggregation report.
type DashboardConfig struct {
	ExpiryHorizonMonths int
	ExpiringLimit       int
	TopN                int
	DistributionLimit   int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "scouting-dashboard-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:              strings.TrimSpace(os.Getenv("DB_URL")),
		AuthJWTSecret:      strings.TrimSpace(getEnv("AUTH_JWT_SECRET", "")),
		AuthJWTIssuer:      strings.TrimSpace(getEnv("AUTH_JWT_ISSUER", "scouting-dashboard")),
		UptraceDSN:         strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeAuthToken: strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.SwaggerEnabled, err = getEnvAsBool("SWAGGER_ENABLED", appEnv != EnvProd); err != nil {
		return Config{}, err
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.DBBootstrapSeed, err = getEnvAsBool("DB_BOOTSTRAP_SEED", appEnv == EnvDev); err != nil {
		return Config{}, err
	}
	if cfg.DBCircuitEnabled, err = getEnvAsBool("DB_CIRCUIT_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.DBCircuitFailureCount, err = boundedInt("DB_CIRCUIT_FAILURE_COUNT", 5, 1); err != nil {
		return Config{}, err
	}
	if cfg.DBCircuitOpenTimeout, err = positiveDuration("DB_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.DBCircuitHalfOpenMaxReq, err = boundedInt("DB_CIRCUIT_HALF_OPEN_MAX_REQ", 2, 1); err != nil {
		return Config{}, err
	}

	if cfg.CacheEnabled, err = getEnvAsBool("CACHE_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = positiveDuration("CACHE_TTL", "60s"); err != nil {
		return Config{}, err
	}

	authDefault := "true"
	if appEnv == EnvDev {
		authDefault = "false"
	}
	authEnabled, err := strconv.ParseBool(getEnv("AUTH_ENABLED", authDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_ENABLED: %w", err)
	}
	if authEnabled && cfg.AuthJWTSecret == "" {
		return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required when AUTH_ENABLED=true")
	}
	cfg.AuthEnabled = authEnabled

	if cfg.Dashboard.ExpiryHorizonMonths, err = boundedInt("DASHBOARD_EXPIRY_HORIZON_MONTHS", 12, 0); err != nil {
		return Config{}, err
	}
	if cfg.Dashboard.ExpiringLimit, err = boundedInt("DASHBOARD_EXPIRING_LIMIT", 20, 1); err != nil {
		return Config{}, err
	}
	if cfg.Dashboard.TopN, err = boundedInt("DASHBOARD_TOP_N", 10, 1); err != nil {
		return Config{}, err
	}
	if cfg.Dashboard.DistributionLimit, err = boundedInt("DASHBOARD_DISTRIBUTION_LIMIT", 10, 0); err != nil {
		return Config{}, err
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.UptraceLogsEnabled, err = getEnvAsBool("UPTRACE_LOGS_ENABLED", true); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return Config{}, err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.SeedWorkers, err = boundedInt("SEED_WORKERS", 8, 1); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func boundedInt(key string, fallback, min int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < min {
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	return out, nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}
