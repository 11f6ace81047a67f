package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/sports-analytics/internal/config"
	"github.com/riskibarqy/sports-analytics/internal/domain/analytics"
	"github.com/riskibarqy/sports-analytics/internal/interfaces/httpapi"
	"github.com/riskibarqy/sports-analytics/internal/interfaces/mcpapi"
	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
	"github.com/riskibarqy/sports-analytics/internal/usecase"
)

// NewAnalyticsService wires the analytics use case with the policy from cfg.
func NewAnalyticsService(cfg config.Config, storage *Storage, logger *logging.Logger) *usecase.AnalyticsService {
	return usecase.NewAnalyticsService(
		storage.Teams,
		storage.Matches,
		storage.Players,
		storage.Stats,
		usecase.AnalyticsPolicy{
			DefaultLastN: cfg.FormDefaultLastN,
			MaxLastN:     cfg.FormMaxLastN,
			Trend:        analytics.TrendPolicy{Threshold: cfg.TrendThreshold},
			Workers:      cfg.TrendWorkers,
		},
		logger,
	)
}

// NewHTTPServer builds the API server. The returned cleanup releases the
// storage backend and must be called after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	analyticsSvc := NewAnalyticsService(cfg, storage, logger)
	handler := httpapi.NewHandler(
		usecase.NewTeamService(storage.Teams, storage.Matches, storage.Players),
		usecase.NewMatchService(storage.Matches, storage.Teams, storage.Stats),
		usecase.NewPlayerService(storage.Players, storage.Teams, storage.Stats),
		usecase.NewPlayerStatsService(storage.Stats, storage.Players, storage.Matches),
		analyticsSvc,
		logger,
	)

	opts := httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
		RequestTimeout:     cfg.RequestTimeout,
	}
	if cfg.MCPEnabled {
		opts.MCP = mcpapi.Handler(mcpapi.NewServer(analyticsSvc, cfg.ServiceVersion, logger))
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, opts, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, storage.Close, nil
}
