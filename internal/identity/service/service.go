package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NicoBar2/scrapingdarwin/internal/identity"
	"github.com/NicoBar2/scrapingdarwin/internal/identity/metrics"
	"github.com/NicoBar2/scrapingdarwin/pkg/platform/audit"
	"github.com/NicoBar2/scrapingdarwin/pkg/requestcontext"
)

const (
	opVerifyIdentification = "verify_identification"
	opCalculateAge         = "calculate_age"

	outcomeOK = "ok"
)

// Reporter receives one structured event per identity operation.
type Reporter interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service runs the pure identity checks for a request: it resolves the
// request-scoped reference time, reports the outcome and records metrics.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	reporter Reporter
	hasher   *audit.SubjectHasher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
}

func NewService(reporter Reporter, hasher *audit.SubjectHasher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		reporter: reporter,
		hasher:   hasher,
		metrics:  m,
		logger:   logger,
		tracer:   otel.Tracer("github.com/NicoBar2/scrapingdarwin/internal/identity"),
	}
}

// VerifyIdentification validates a cédula.
func (s *Service) VerifyIdentification(ctx context.Context, id string) identity.Verdict {
	ctx, span := s.tracer.Start(ctx, "identity.VerifyIdentification")
	defer span.End()

	verdict := identity.ValidateIdentification(id)

	span.SetAttributes(
		attribute.Bool("identity.valid", verdict.Valid),
		attribute.String("identity.reason", verdict.Reason.String()),
	)
	s.metrics.IncrementOutcome(opVerifyIdentification, outcomeLabel(verdict.Reason))

	event := audit.Event{
		Action:        audit.EventIdentificationChecked,
		Decision:      decision(verdict.Reason, "valid"),
		Reason:        verdict.Reason.String(),
		SubjectIDHash: s.hasher.Hash(id),
	}
	if verdict.Valid {
		event.Attributes = map[string]any{"province_code": verdict.Province.Code}
	}
	s.emit(ctx, event)

	return verdict
}

// CalculateAge computes the age for birthDate against the request time.
func (s *Service) CalculateAge(ctx context.Context, birthDate string) identity.AgeResult {
	ctx, span := s.tracer.Start(ctx, "identity.CalculateAge")
	defer span.End()

	result := identity.CalculateAge(birthDate, requestcontext.Now(ctx))

	span.SetAttributes(attribute.String("identity.reason", result.Reason.String()))
	s.metrics.IncrementOutcome(opCalculateAge, outcomeLabel(result.Reason))

	event := audit.Event{
		Action:   audit.EventAgeCalculated,
		Decision: decision(result.Reason, "calculated"),
		Reason:   result.Reason.String(),
	}
	if result.OK() {
		s.metrics.IncrementMajority(result.Age.IsAdult)
		event.Attributes = map[string]any{"is_adult": result.Age.IsAdult}
	}
	s.emit(ctx, event)

	return result
}

// emit reports an event; reporter failures are logged and never alter results.
func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.reporter == nil {
		return
	}
	event.Subject = requestcontext.Subject(ctx)
	event.RequestID = requestcontext.RequestID(ctx)
	event.Timestamp = requestcontext.Now(ctx)
	if err := s.reporter.Emit(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit identity event",
			"event", string(event.Action),
			"error", err,
			"request_id", event.RequestID,
		)
	}
}

func outcomeLabel(r identity.Reason) string {
	if r.OK() {
		return outcomeOK
	}
	return r.String()
}

func decision(r identity.Reason, success string) string {
	if r.OK() {
		return success
	}
	return "rejected"
}
