package audit

import (
	"context"
	"log/slog"
	"time"
)

// Emitter is the port services depend on for structured event reporting.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// LogPublisher writes audit events as structured log records. Security events
// are logged at warn level when they carry a rejection reason.
type LogPublisher struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewLogPublisher creates a publisher writing to logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger, now: time.Now}
}

func (p *LogPublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}
	if event.Category == "" {
		event.Category = event.Action.Category()
	}

	attrs := []slog.Attr{
		slog.String("event", string(event.Action)),
		slog.String("category", string(event.Category)),
		slog.Time("occurred_at", event.Timestamp),
	}
	if event.Decision != "" {
		attrs = append(attrs, slog.String("decision", event.Decision))
	}
	if event.Reason != "" {
		attrs = append(attrs, slog.String("reason", event.Reason))
	}
	if event.Subject != "" {
		attrs = append(attrs, slog.String("subject", event.Subject))
	}
	if event.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", event.RequestID))
	}
	if event.SubjectIDHash != "" {
		attrs = append(attrs, slog.String("subject_id_hash", event.SubjectIDHash))
	}
	for k, v := range event.Attributes {
		attrs = append(attrs, slog.Any(k, v))
	}

	level := slog.LevelInfo
	if event.Reason != "" {
		level = slog.LevelWarn
	}
	p.logger.LogAttrs(ctx, level, "audit event", attrs...)
	return nil
}
