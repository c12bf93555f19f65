package hostedpay

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type config struct {
	logger *zap.Logger
	clock  func() time.Time
}

// Middleware wraps the return handler routes.
type Middleware func(http.HandlerFunc) http.HandlerFunc

func applyMiddleware(h http.HandlerFunc, middleware ...Middleware) http.HandlerFunc {
	for _, m := range middleware {
		if m == nil {
			continue
		}
		h = m(h)
	}
	return h
}

// Option customizes the gateway behavior.
type Option func(*config)

// WithLogger routes gateway logs to the given logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock sets the time source used for product row delivery dates.
func WithClock(fn func() time.Time) Option {
	if fn == nil {
		panic("hostedpay: clock must not be nil")
	}
	return func(cfg *config) {
		cfg.clock = fn
	}
}
