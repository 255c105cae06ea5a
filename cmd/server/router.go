package main

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	authHandler "github.com/NicoBar2/scrapingdarwin/internal/auth/handler"
	identityHandler "github.com/NicoBar2/scrapingdarwin/internal/identity/handler"
	networkHandler "github.com/NicoBar2/scrapingdarwin/internal/network/handler"
	numwordsHandler "github.com/NicoBar2/scrapingdarwin/internal/numwords/handler"
	httpMetrics "github.com/NicoBar2/scrapingdarwin/internal/platform/metrics"
	rateLimitMW "github.com/NicoBar2/scrapingdarwin/internal/ratelimit/middleware"
	securityHandler "github.com/NicoBar2/scrapingdarwin/internal/security/handler"
	textHandler "github.com/NicoBar2/scrapingdarwin/internal/text/handler"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/httputil"
	authmw "github.com/NicoBar2/scrapingdarwin/pkg/platform/middleware/auth"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/middleware/metadata"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/middleware/request"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/middleware/requesttime"
)

const loginScope = "login"

type routerDeps struct {
	logger         *slog.Logger
	httpMetrics    request.LatencyObserver
	validator      authmw.JWTValidator
	login          authHandler.Service
	identity       identityHandler.Service
	limiter        *rateLimitMW.Middleware
	trustedProxies []netip.Prefix
	requestTimeout time.Duration
}

// newRouter mounts every API module under /api. Login is public but
// throttled; everything else requires a bearer token.
func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(request.Recovery(deps.logger))
	r.Use(request.RequestID)
	r.Use(metadata.ClientMetadata(deps.trustedProxies))
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(deps.logger, deps.httpMetrics))
	r.Use(chimw.Timeout(deps.requestTimeout))
	r.Use(request.ContentTypeJSON)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", httpMetrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Group(func(public chi.Router) {
			public.Use(deps.limiter.RateLimit(loginScope))
			authHandler.New(deps.login, deps.logger).Register(public)
		})

		api.Group(func(protected chi.Router) {
			protected.Use(authmw.RequireAuth(deps.validator, deps.logger))
			identityHandler.New(deps.identity, deps.logger).Register(protected)
			numwordsHandler.New(deps.logger).Register(protected)
			securityHandler.New(deps.logger).Register(protected)
			textHandler.New(deps.logger).Register(protected)
			networkHandler.New(deps.logger).Register(protected)
		})
	})

	return r
}
