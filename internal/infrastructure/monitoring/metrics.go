// Package monitoring exposes engine counters over Prometheus.
package monitoring

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/platemind/v1/internal/infrastructure/config"
)

// EngineMetrics implements the engine's metrics hooks.
type EngineMetrics struct {
	gateDecisions  *prometheus.CounterVec
	hardViolations *prometheus.CounterVec
	retries        prometheus.Counter
	fallbacks      prometheus.Counter
	exhausted      prometheus.Counter
}

// NewEngineMetrics registers the engine counters on a fresh registry
// and returns both.
func NewEngineMetrics() (*EngineMetrics, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &EngineMetrics{
		gateDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platemind",
			Name:      "gate_decisions_total",
			Help:      "Gate outcomes by decision",
		}, []string{"outcome"}),
		hardViolations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platemind",
			Name:      "hard_violations_total",
			Help:      "Hard constraint violations found in generated candidates",
		}, []string{"kind"}),
		retries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platemind",
			Name:      "generation_retries_total",
			Help:      "Generation attempts beyond the first",
		}),
		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platemind",
			Name:      "fallback_engaged_total",
			Help:      "Requests that reached the fallback library",
		}),
		exhausted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "platemind",
			Name:      "fallback_exhausted_total",
			Help:      "Requests that found no safe recipe anywhere",
		}),
	}
	return m, registry
}

func (m *EngineMetrics) GateDecision(outcome string) { m.gateDecisions.WithLabelValues(outcome).Inc() }
func (m *EngineMetrics) HardViolation(kind string)   { m.hardViolations.WithLabelValues(kind).Inc() }
func (m *EngineMetrics) GenerationRetry()            { m.retries.Inc() }
func (m *EngineMetrics) FallbackEngaged()            { m.fallbacks.Inc() }
func (m *EngineMetrics) FallbackExhausted()          { m.exhausted.Inc() }

// Server serves the metrics endpoint.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

// NewServer builds the metrics HTTP server.
func NewServer(cfg config.MetricsConfig, registry *prometheus.Registry, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("metrics server listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
