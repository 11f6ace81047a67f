package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

// startTracing installs the global OpenTelemetry providers exporting to
// Uptrace. Spans from otelhttp and otelsql flow through them.
func startTracing(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return nil, nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(storageAttr(cfg)),
	)
	logger.Info("uptrace enabled", "environment", cfg.AppEnv, "storage", cfg.StorageDriver)

	return uptrace.Shutdown, nil
}
