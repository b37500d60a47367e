// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/platemind/v1/internal/application/engine"
	"github.com/platemind/v1/internal/infrastructure/ai/deepseek"
	"github.com/platemind/v1/internal/infrastructure/audit"
	"github.com/platemind/v1/internal/infrastructure/config"
	"github.com/platemind/v1/internal/infrastructure/monitoring"
	gormStore "github.com/platemind/v1/internal/infrastructure/persistence/gorm"
	"github.com/platemind/v1/internal/infrastructure/persistence/memory"
	"github.com/platemind/v1/internal/ports/inbound"
	"github.com/platemind/v1/internal/ports/outbound"
	"github.com/platemind/v1/pkg/logger"
)

// Module wires the whole engine
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	GeneratorModule,
	AuditModule,
	MetricsModule,
	EngineModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// StorageModule provides the profile store and fallback library
var StorageModule = fx.Provide(
	func(cfg *config.Config) (outbound.ProfileStore, error) {
		if cfg.Database.Driver == "memory" {
			return memory.NewProfileStore(), nil
		}
		store, err := gormStore.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		return store, nil
	},
	func(cfg *config.Config) outbound.FallbackSource {
		if !cfg.Engine.FallbackEnabled {
			return nil
		}
		return memory.NewFallbackLibrary()
	},
)

// GeneratorModule provides the recipe generator
var GeneratorModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.RecipeGenerator {
		return deepseek.NewClient(
			cfg.AI.BaseURL,
			cfg.AI.APIKey,
			log,
			deepseek.WithModel(cfg.AI.Model),
			deepseek.WithMaxTokens(cfg.AI.MaxTokens),
			deepseek.WithTemperature(cfg.AI.Temperature),
		)
	},
)

// AuditModule provides the audit sink
var AuditModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.AuditSink {
		if cfg.Redis.Enabled {
			return audit.NewRedisSink(cfg.Redis, log)
		}
		return audit.NewLogSink(log)
	},
)

// MetricsModule provides Prometheus metrics and their HTTP server
var MetricsModule = fx.Provide(
	func() (*monitoring.EngineMetrics, *prometheus.Registry) {
		return monitoring.NewEngineMetrics()
	},
	func(cfg *config.Config, registry *prometheus.Registry, log *zap.Logger) *monitoring.Server {
		if !cfg.Metrics.Enabled {
			return nil
		}
		return monitoring.NewServer(cfg.Metrics, registry, log)
	},
)

// EngineModule provides the engine service
var EngineModule = fx.Provide(
	func(
		cfg *config.Config,
		profiles outbound.ProfileStore,
		generator outbound.RecipeGenerator,
		fallback outbound.FallbackSource,
		sink outbound.AuditSink,
		metrics *monitoring.EngineMetrics,
		log *zap.Logger,
	) inbound.EngineService {
		var limiter *rate.Limiter
		if cfg.RateLimit.Enabled {
			limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		}
		return engine.NewService(
			profiles, generator, fallback, sink,
			metrics, limiter, log,
			cfg.Engine.MaxGenerationAttempts,
		)
	},
)

// LifecycleModule manages startup and shutdown
var LifecycleModule = fx.Invoke(
	func(lc fx.Lifecycle, cfg *config.Config, srv *monitoring.Server, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				log.Info("engine starting",
					zap.String("name", cfg.App.Name),
					zap.String("version", cfg.App.Version),
					zap.String("environment", cfg.App.Environment))
				if srv != nil {
					go func() {
						if err := srv.Start(); err != nil {
							log.Error("metrics server failed", zap.Error(err))
						}
					}()
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info("engine stopping")
				if srv != nil {
					return srv.Stop(ctx)
				}
				return nil
			},
		})
	},
)
