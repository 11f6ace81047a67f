package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "sports-analytics-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Empty(t, tel.Backends())
	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestStart_UptraceWithoutDSNIsSkipped(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  ", AppEnv: config.EnvDev}

	tel, err := Start(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Empty(t, tel.Backends())
}

func TestTelemetry_ShutdownReverseOrderAndCombinesErrors(t *testing.T) {
	var order []string
	tel := &Telemetry{logger: logging.NewNop()}
	for _, name := range []string{"uptrace", "pyroscope", "pprof"} {
		tel.stoppers = append(tel.stoppers, stopper{name: name, stop: func(context.Context) error {
			order = append(order, name)
			if name != "pyroscope" {
				return errors.New(name + " stuck")
			}
			return nil
		}})
	}

	err := tel.Shutdown(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"pprof", "pyroscope", "uptrace"}, order)
	assert.Contains(t, err.Error(), "pprof stuck")
	assert.NoError(t, tel.Shutdown(context.Background()))

	var nilTel *Telemetry
	assert.NoError(t, nilTel.Shutdown(context.Background()))
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "goroutine")
}
