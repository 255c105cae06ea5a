package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NicoBar2/scrapingdarwin/internal/auth"
	authService "github.com/NicoBar2/scrapingdarwin/internal/auth/service"
	identityMetrics "github.com/NicoBar2/scrapingdarwin/internal/identity/metrics"
	identityService "github.com/NicoBar2/scrapingdarwin/internal/identity/service"
	jwttoken "github.com/NicoBar2/scrapingdarwin/internal/jwt_token"
	"github.com/NicoBar2/scrapingdarwin/internal/platform/config"
	"github.com/NicoBar2/scrapingdarwin/internal/platform/httpserver"
	"github.com/NicoBar2/scrapingdarwin/internal/platform/logger"
	httpMetrics "github.com/NicoBar2/scrapingdarwin/internal/platform/metrics"
	rateLimitMetrics "github.com/NicoBar2/scrapingdarwin/internal/ratelimit/metrics"
	rateLimitMW "github.com/NicoBar2/scrapingdarwin/internal/ratelimit/middleware"
	"github.com/NicoBar2/scrapingdarwin/internal/ratelimit/store/bucket"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/audit"
)

const (
	tokenAudience   = "scrapingdarwin-api"
	loginWindow     = time.Minute
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scrapingdarwin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closer, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()

	if cfg.UsesDevSecret() {
		log.Warn("JWT_SECRET_KEY not set, using development signing key", "env", cfg.Environment)
	}

	creds, err := auth.NewCredentials(cfg.AuthUsername, cfg.AuthPassword, cfg.AuthPasswordHash)
	if err != nil {
		return fmt.Errorf("init credentials: %w", err)
	}

	publisher := audit.NewLogPublisher(log)
	hasher := audit.NewSubjectHasher(cfg.AuditHashKey)
	tokens := jwttoken.NewJWTService(cfg.JWTSecretKey, cfg.JWTIssuer, tokenAudience)
	buckets := bucket.NewInMemoryBucketStore()
	limiterMetrics := rateLimitMetrics.New()

	router := newRouter(routerDeps{
		logger:      log,
		httpMetrics: httpMetrics.New(),
		validator:   jwttoken.NewJWTServiceAdapter(tokens),
		login:       authService.New(creds, tokens, cfg.AccessTokenTTL, publisher, hasher, log),
		identity:    identityService.NewService(publisher, hasher, identityMetrics.New(), log),
		limiter: rateLimitMW.New(buckets, cfg.LoginRateLimit, loginWindow, log,
			rateLimitMW.WithMetrics(limiterMetrics),
			rateLimitMW.WithAuditEmitter(publisher),
		),
		trustedProxies: cfg.TrustedProxies,
		requestTimeout: cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting scrapingdarwin", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweepBuckets(ctx, buckets, limiterMetrics, log)
		return nil
	})

	return g.Wait()
}

// sweepBuckets drops idle login windows until ctx is cancelled.
func sweepBuckets(ctx context.Context, store *bucket.InMemoryBucketStore, m *rateLimitMetrics.Metrics, log *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tracked := store.Sweep()
			m.SetTrackedKeys(tracked)
			log.Debug("swept rate limit windows", "tracked_keys", tracked)
		}
	}
}
