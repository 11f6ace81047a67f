package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig is the DB_BREAKER_* block of the service config.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalized fills non-positive fields from DefaultCircuitBreakerConfig.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	d := DefaultCircuitBreakerConfig()
	c.FailureThreshold = positiveOr(c.FailureThreshold, d.FailureThreshold)
	c.HalfOpenMaxReq = positiveOr(c.HalfOpenMaxReq, d.HalfOpenMaxReq)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = d.OpenTimeout
	}
	return c
}

func (c CircuitBreakerConfig) String() string {
	if !c.Enabled {
		return "breaker(disabled)"
	}
	return fmt.Sprintf("breaker(failures=%d open=%s probes=%d)", c.FailureThreshold, c.OpenTimeout, c.HalfOpenMaxReq)
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
