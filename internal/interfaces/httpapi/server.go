package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/sports-analytics/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRPS       float64
	RateLimitBurst     int
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration
	// MCP is mounted at /mcp when non-nil.
	MCP http.Handler
}

func NewRouter(handler *Handler, opts RouterOptions, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerCatalogRoutes(mux, handler)
	registerAnalyticsRoutes(mux, handler)
	if opts.MCP != nil {
		registerMCPRoutes(mux, opts.MCP)
	}

	var next http.Handler = recoverPanic(logger, mux)
	if opts.RequestTimeout > 0 {
		next = RequestTimeout(opts.RequestTimeout, next)
	}
	if opts.RateLimitEnabled {
		next = RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, next)
	}
	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, next)))
}
