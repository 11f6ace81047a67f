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

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
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
		t.Setenv("UPTRACE_ENABLED", "false")
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

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "sports-analytics-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "sports-analytics-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_StorageDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults to memory", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageMemory {
			t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
		}
	})

	t.Run("accepts postgres case-insensitively", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", " Postgres ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres {
			t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
		}
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})
}

func TestLoad_SeedWatchRequiresFile(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SEED_WATCH", "true")
	t.Setenv("SEED_FILE", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SEED_WATCH=true without SEED_FILE")
	}
}

func TestLoad_AnalyticsPolicy(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("FORM_DEFAULT_LAST_N", "")
		t.Setenv("FORM_MAX_LAST_N", "")
		t.Setenv("TREND_THRESHOLD", "")
		t.Setenv("TREND_WORKERS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FormDefaultLastN != 5 || cfg.FormMaxLastN != 50 {
			t.Fatalf("unexpected form window: default=%d max=%d", cfg.FormDefaultLastN, cfg.FormMaxLastN)
		}
		if cfg.TrendThreshold != 0.1 {
			t.Fatalf("unexpected trend threshold: %v", cfg.TrendThreshold)
		}
		if cfg.TrendWorkers != 8 {
			t.Fatalf("unexpected trend workers: %d", cfg.TrendWorkers)
		}
	})

	t.Run("default last_n above max", func(t *testing.T) {
		t.Setenv("FORM_DEFAULT_LAST_N", "20")
		t.Setenv("FORM_MAX_LAST_N", "10")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when FORM_DEFAULT_LAST_N exceeds FORM_MAX_LAST_N")
		}
	})

	t.Run("negative threshold", func(t *testing.T) {
		t.Setenv("TREND_THRESHOLD", "-0.5")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative TREND_THRESHOLD")
		}
	})

	t.Run("custom threshold", func(t *testing.T) {
		t.Setenv("TREND_THRESHOLD", "0.25")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.TrendThreshold != 0.25 {
			t.Fatalf("unexpected trend threshold: %v", cfg.TrendThreshold)
		}
	})
}

func TestLoad_RateLimitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("zero rps", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for RATE_LIMIT_RPS=0")
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "3")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 3 {
			t.Fatalf("unexpected rate limit: rps=%v burst=%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
		}
	})
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected CacheEnabled=true by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default CacheTTL: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "0s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for CACHE_TTL=0s")
		}
	})
}

func TestLoad_DBCircuitBreaker(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DB_BREAKER_ENABLED", "")
	t.Setenv("DB_BREAKER_FAILURE_THRESHOLD", "0")
	t.Setenv("DB_BREAKER_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.DBCircuitBreaker.Enabled {
		t.Fatalf("expected breaker enabled by default")
	}
	if cfg.DBCircuitBreaker.FailureThreshold != 5 {
		t.Fatalf("expected non-positive threshold to fall back to default, got %d", cfg.DBCircuitBreaker.FailureThreshold)
	}
	if cfg.DBCircuitBreaker.OpenTimeout != 30*time.Second {
		t.Fatalf("unexpected open timeout: %s", cfg.DBCircuitBreaker.OpenTimeout)
	}
}

func TestLoad_RequestTimeout(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Setenv("APP_REQUEST_TIMEOUT", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected default request timeout: %s", cfg.RequestTimeout)
	}

	t.Setenv("APP_REQUEST_TIMEOUT", "-1s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative APP_REQUEST_TIMEOUT")
	}
}
