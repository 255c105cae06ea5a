package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/NicoBar2/scrapingdarwin/internal/ratelimit/metrics"
	"github.com/NicoBar2/scrapingdarwin/internal/ratelimit/models"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/audit"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// BucketStore is the sliding-window counter the middleware consults.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

// Middleware throttles requests per client IP.
type Middleware struct {
	store   BucketStore
	limit   int
	window  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
	emitter audit.Emitter
}

type Option func(*Middleware)

func WithMetrics(m *metrics.Metrics) Option {
	return func(mw *Middleware) { mw.metrics = m }
}

// WithAuditEmitter reports each rejected attempt as a security event.
func WithAuditEmitter(e audit.Emitter) Option {
	return func(mw *Middleware) { mw.emitter = e }
}

// New builds a limiter allowing limit requests per window. A limit of zero
// disables throttling.
func New(store BucketStore, limit int, window time.Duration, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		store:  store,
		limit:  limit,
		window: window,
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.limit <= 0 {
		logger.Info("login rate limiting disabled")
	}
	return m
}

// RateLimit keys the window by scope and client IP.
func (m *Middleware) RateLimit(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ip := requestcontext.ClientIP(ctx)

			result, err := m.store.Allow(ctx, scope+":"+ip, m.limit, m.window)
			if err != nil {
				// Fail open: a broken limiter must not lock everyone out.
				m.logger.ErrorContext(ctx, "failed to check rate limit",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}

			addRateLimitHeaders(w, result)

			if !result.Allowed {
				m.metrics.IncrementThrottled()
				m.logger.WarnContext(ctx, "rate limit exceeded",
					"scope", scope,
					"client_ip", ip,
					"retry_after", result.RetryAfter,
					"request_id", requestcontext.RequestID(ctx),
				)
				if m.emitter != nil {
					_ = m.emitter.Emit(ctx, audit.Event{
						Action:     audit.EventLoginThrottled,
						Decision:   "rejected",
						Reason:     "rate_limited",
						RequestID:  requestcontext.RequestID(ctx),
						Attributes: map[string]any{"scope": scope, "client_ip": ip},
					})
				}
				writeRateLimitExceeded(w, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func addRateLimitHeaders(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeRateLimitExceeded(w http.ResponseWriter, result *models.RateLimitResult) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.RateLimitExceededResponse{
		Error:      "rate_limited",
		Message:    "Demasiados intentos. Intente nuevamente más tarde.",
		RetryAfter: result.RetryAfter,
	})
}
