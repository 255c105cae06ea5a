package testutil

import (
	"net/http"
	"time"

	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

// WithSubject marks the request as authenticated for subject, mirroring what
// the bearer-token middleware stores after validating a token.
func WithSubject(req *http.Request, subject string) *http.Request {
	return req.WithContext(requestcontext.WithSubject(req.Context(), subject))
}

// WithRequestTime pins the request-scoped clock, which fixes the reference
// date used by age calculations.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithClientIP sets the client address normally resolved by the metadata middleware.
func WithClientIP(req *http.Request, ip string) *http.Request {
	ctx := requestcontext.WithClientMetadata(req.Context(), ip, req.UserAgent())
	return req.WithContext(ctx)
}
