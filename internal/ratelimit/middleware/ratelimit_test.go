package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicoBar2/scrapingdarwin/internal/ratelimit/models"
	"github.com/NicoBar2/scrapingdarwin/internal/ratelimit/store/bucket"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/audit"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

type recordingEmitter struct {
	events []audit.Event
}

func (e *recordingEmitter) Emit(_ context.Context, event audit.Event) error {
	e.events = append(e.events, event)
	return nil
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (*models.RateLimitResult, error) {
	return nil, errors.New("store unavailable")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(h http.Handler, ip string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r = r.WithContext(requestcontext.WithClientMetadata(r.Context(), ip, "test"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimit(t *testing.T) {
	// Real in-memory store; no mocks needed for a pure sliding window.
	emitter := &recordingEmitter{}
	mw := New(bucket.NewInMemoryBucketStore(), 2, time.Minute, discardLogger(), WithAuditEmitter(emitter))
	h := mw.RateLimit("login")(okHandler)

	first := serve(h, "192.0.2.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(h, "192.0.2.1").Code)

	denied := serve(h, "192.0.2.1")
	require.Equal(t, http.StatusTooManyRequests, denied.Code)
	assert.NotEmpty(t, denied.Header().Get("Retry-After"))
	assert.Contains(t, denied.Body.String(), `"error":"rate_limited"`)
	require.Len(t, emitter.events, 1)
	assert.Equal(t, audit.EventLoginThrottled, emitter.events[0].Action)

	assert.Equal(t, http.StatusOK, serve(h, "192.0.2.2").Code, "other clients unaffected")
}

func TestRateLimitDisabled(t *testing.T) {
	h := New(failingStore{}, 0, time.Minute, discardLogger()).RateLimit("login")(okHandler)

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(h, "192.0.2.1").Code)
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	h := New(failingStore{}, 1, time.Minute, discardLogger()).RateLimit("login")(okHandler)

	assert.Equal(t, http.StatusOK, serve(h, "192.0.2.1").Code)
	assert.Equal(t, http.StatusOK, serve(h, "192.0.2.1").Code)
}
