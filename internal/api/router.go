package api

import (
	"net/http"

	"go.uber.org/zap"
)

const defaultMaxBodyBytes int64 = 1 << 20

// RouterOption configures the behaviour of NewRouter.
type RouterOption func(*routerConfig)

// WithLogging controls whether access logs are emitted.
func WithLogging(enabled bool) RouterOption {
	return func(cfg *routerConfig) {
		cfg.enableLogging = enabled
	}
}

// WithRateLimiter replaces the token bucket. Tests use it to inject a fixed decision.
func WithRateLimiter(limiter admissionLimiter) RouterOption {
	return func(cfg *routerConfig) {
		cfg.limiter = limiter
	}
}

// WithRateLimit sizes the token bucket. A zero rate or burst turns throttling off.
func WithRateLimit(ratePerSecond float64, burst int) RouterOption {
	return func(cfg *routerConfig) {
		if ratePerSecond <= 0 || burst <= 0 {
			cfg.limiter = nil
			return
		}
		cfg.limiter = newTokenBucket(ratePerSecond, burst)
	}
}

// WithMaxBodyBytes caps request bodies on mutating endpoints.
func WithMaxBodyBytes(limit int64) RouterOption {
	return func(cfg *routerConfig) {
		cfg.maxBodyBytes = limit
	}
}

type routerConfig struct {
	enableLogging bool
	logger        *zap.Logger
	limiter       admissionLimiter
	maxBodyBytes  int64
}

// NewRouter registers the dormitory API routes and wraps them in the middleware chain.
func NewRouter(handler *Handler, logger *zap.Logger, opts ...RouterOption) http.Handler {
	cfg := routerConfig{
		enableLogging: true,
		logger:        logger,
		limiter:       newTokenBucket(25, 50),
		maxBodyBytes:  defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", handler.handleHealth)
	mux.HandleFunc("GET /api/modules", handler.handleModules)
	mux.HandleFunc("GET /api/reference", handler.handleGetReference)
	mux.HandleFunc("PUT /api/reference", handler.handlePutReference)
	mux.HandleFunc("POST /api/calculate", handler.handleCalculate)
	mux.HandleFunc("POST /api/compare", handler.handleCompare)

	// Listed outermost first.
	chain := []middleware{requestIDMiddleware, func(next http.Handler) http.Handler {
		return rateLimitMiddleware(cfg.limiter, next)
	}}
	if cfg.enableLogging {
		chain = append(chain, func(next http.Handler) http.Handler {
			return loggingMiddleware(cfg.logger, next)
		})
	}
	chain = append(chain,
		func(next http.Handler) http.Handler { return recoveryMiddleware(cfg.logger, next) },
		corsMiddleware,
		func(next http.Handler) http.Handler { return bodyLimitMiddleware(cfg.maxBodyBytes, next) },
	)

	return wrap(mux, chain...)
}
