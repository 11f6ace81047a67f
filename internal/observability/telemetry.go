package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

// Telemetry owns the process-wide tracing and profiling backends.
type Telemetry struct {
	logger   *logging.Logger
	stoppers []stopper
}

type stopper struct {
	name string
	stop func(context.Context) error
}

// Start brings up every backend enabled in cfg. Disabled backends are logged
// and skipped. On error the backends already started are shut down.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	steps := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{name: "uptrace", start: startTracing},
		{name: "pyroscope", start: startPyroscope},
		{name: "pprof", start: startPprof},
	}
	for _, step := range steps {
		stop, err := step.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, crerr.Wrapf(err, "start %s", step.name)
		}
		if stop != nil {
			t.stoppers = append(t.stoppers, stopper{name: step.name, stop: stop})
		}
	}
	return t, nil
}

// Shutdown stops backends in reverse start order and returns every failure.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var result error
	for i := len(t.stoppers) - 1; i >= 0; i-- {
		s := t.stoppers[i]
		if err := s.stop(ctx); err != nil {
			result = crerr.CombineErrors(result, crerr.Wrapf(err, "stop %s", s.name))
			continue
		}
		t.logger.Debug("telemetry backend stopped", "backend", s.name)
	}
	t.stoppers = nil
	return result
}

// Backends lists the running backends in start order.
func (t *Telemetry) Backends() []string {
	out := make([]string, 0, len(t.stoppers))
	for _, s := range t.stoppers {
		out = append(out, s.name)
	}
	return out
}
