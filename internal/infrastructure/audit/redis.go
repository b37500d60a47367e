// Package audit persists safety events. Audit emission never blocks or
// fails the request path: a sink that cannot write logs the problem
// and drops the event.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/platemind/v1/internal/infrastructure/config"
	"github.com/platemind/v1/internal/ports/outbound"
)

// RedisSink appends audit events to a capped Redis stream so external
// consumers can review refusals and violations.
type RedisSink struct {
	client  *redis.Client
	stream  string
	maxLen  int64
	timeout time.Duration
	logger  *zap.Logger
}

// NewRedisSink connects the sink to the configured stream.
func NewRedisSink(cfg config.RedisConfig, logger *zap.Logger) *RedisSink {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  cfg.DialTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	return &RedisSink{
		client:  client,
		stream:  cfg.Stream,
		maxLen:  cfg.MaxLen,
		timeout: cfg.WriteTimeout,
		logger:  logger,
	}
}

// Emit appends one event to the stream.
func (s *RedisSink) Emit(ctx context.Context, event outbound.AuditEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to encode audit event", zap.Error(err))
		return
	}

	// Detach from the request context so a cancelled request still
	// gets its audit trail written.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err = s.client.XAdd(writeCtx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"type":         string(event.Type),
			"household_id": event.HouseholdID.String(),
			"payload":      string(payload),
		},
	}).Err()
	if err != nil {
		s.logger.Error("failed to write audit event",
			zap.String("stream", s.stream),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

// Close releases the Redis connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
