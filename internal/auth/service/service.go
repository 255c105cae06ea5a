package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/NicoBar2/scrapingdarwin/pkg/platform/audit"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

const tokenTypeBearer = "Bearer"

// Verifier checks a username/password pair.
type Verifier interface {
	Verify(username, password string) error
}

// TokenIssuer signs access tokens for an authenticated subject.
type TokenIssuer interface {
	GenerateAccessToken(subject string, expiresIn time.Duration) (string, error)
}

// Reporter receives login outcome events.
type Reporter interface {
	Emit(ctx context.Context, event audit.Event) error
}

// TokenResult is returned on a successful login.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

type Service struct {
	verifier Verifier
	issuer   TokenIssuer
	ttl      time.Duration
	reporter Reporter
	hasher   *audit.SubjectHasher
	logger   *slog.Logger
}

func New(verifier Verifier, issuer TokenIssuer, ttl time.Duration, reporter Reporter, hasher *audit.SubjectHasher, logger *slog.Logger) *Service {
	return &Service{
		verifier: verifier,
		issuer:   issuer,
		ttl:      ttl,
		reporter: reporter,
		hasher:   hasher,
		logger:   logger,
	}
}

// Login exchanges operator credentials for a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenResult, error) {
	if err := s.verifier.Verify(username, password); err != nil {
		s.emit(ctx, audit.Event{
			Action:        audit.EventLoginFailed,
			Decision:      "denied",
			Reason:        "invalid_credentials",
			SubjectIDHash: s.hasher.Hash(username),
		})
		return nil, err
	}

	token, err := s.issuer.GenerateAccessToken(username, s.ttl)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, audit.Event{
		Action:   audit.EventLoginSucceeded,
		Decision: "granted",
		Subject:  username,
	})

	return &TokenResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   s.ttl,
	}, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.reporter == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	event.Timestamp = requestcontext.Now(ctx)
	event.Attributes = map[string]any{"client_ip": requestcontext.ClientIP(ctx)}
	if err := s.reporter.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit login event",
			"event", string(event.Action),
			"error", err,
			"request_id", event.RequestID,
		)
	}
}
