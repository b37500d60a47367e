package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/platemind/v1/internal/ports/outbound"
)

// LogSink writes audit events to the structured log. It is the default
// sink when the Redis stream is disabled.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink builds a log-backed sink.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("audit")}
}

// Emit records the event at warn level so safety incidents stand out.
func (s *LogSink) Emit(_ context.Context, event outbound.AuditEvent) {
	s.logger.Warn("safety event",
		zap.String("event_id", event.ID.String()),
		zap.String("type", string(event.Type)),
		zap.String("household_id", event.HouseholdID.String()),
		zap.String("subject", event.Subject),
		zap.String("detail", event.Detail),
		zap.Time("occurred_at", event.OccurredAt))
}
