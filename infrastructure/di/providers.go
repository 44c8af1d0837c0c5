package di

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trivia-backend/application/commands"
	"trivia-backend/application/commands/bus"
	commandhandlers "trivia-backend/application/commands/handlers"
	"trivia-backend/application/ports"
	"trivia-backend/application/queries"
	querybus "trivia-backend/application/queries/bus"
	queryhandlers "trivia-backend/application/queries/handlers"
	"trivia-backend/domain/core/entities"
	"trivia-backend/infrastructure/config"
	"trivia-backend/infrastructure/messaging/eventbridge"
	"trivia-backend/infrastructure/persistence/memory"
	"trivia-backend/infrastructure/persistence/postgres"
	"trivia-backend/interfaces/http/rest"
	"trivia-backend/interfaces/http/rest/middleware"
	"trivia-backend/pkg/observability"
)

// MetricsNamespace prefixes every exported Prometheus metric
const MetricsNamespace = "trivia"

// ProvideLogLevel parses the configured level into an adjustable level
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level: %w", err)
	}
	return zap.NewAtomicLevelAt(level), nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, func(), error) {
	logger, err := loggerConfig(cfg, level).Build()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}

// loggerConfig picks JSON output in production and inside Lambda, where
// CloudWatch ingests structured lines
func loggerConfig(cfg *config.Config, level zap.AtomicLevel) zap.Config {
	var zapCfg zap.Config
	if cfg.IsProduction() || config.IsLambda() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level
	return zapCfg
}

// ProvideStore opens the configured store. Postgres is migrated and either
// driver is seeded with the default categories when configured to.
func ProvideStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.Store, func(), error) {
	var store ports.Store

	switch cfg.Database.Driver {
	case config.DriverMemory:
		store = memory.NewStore()
		logger.Info("Using in-memory store")
	default:
		pgStore, err := postgres.OpenPostgres(cfg.Database.URL, postgres.PoolSettings{
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := pgStore.Migrate(ctx); err != nil {
				_ = pgStore.Close()
				return nil, nil, err
			}
		}
		store = pgStore
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close store", zap.Error(err))
		}
	}

	if cfg.Database.SeedCategories {
		if _, err := SeedCategories(ctx, store, logger); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	return store, cleanup, nil
}

// SeedCategories inserts the default categories into an empty store
func SeedCategories(ctx context.Context, store ports.Store, logger *zap.Logger) (int, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(&zapLoggerAdapter{logger}))
	if err := commandBus.Register(commands.SeedCategoriesCommand{}, commandhandlers.NewSeedCategoriesHandler(store.Categories(), logger)); err != nil {
		return 0, err
	}

	result, err := commandBus.Send(ctx, commands.SeedCategoriesCommand{Names: entities.DefaultCategories})
	if err != nil {
		return 0, err
	}
	seeded, ok := result.(*commands.SeedCategoriesResult)
	if !ok {
		return 0, fmt.Errorf("unexpected seed result %T", result)
	}
	return seeded.Created, nil
}

// ProvideEventPublisher sends events to EventBridge when a bus is configured
// and logs them otherwise
func ProvideEventPublisher(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.EventPublisher, error) {
	if cfg.Events.BusName == "" {
		return eventbridge.NewLogPublisher(logger), nil
	}

	client, err := eventbridge.NewClient(ctx, cfg.Events.AWSRegion)
	if err != nil {
		return nil, err
	}
	return eventbridge.NewPublisher(client, cfg.Events.BusName, cfg.Events.Source, logger), nil
}

// ProvideMetrics creates the Prometheus collector, or nil when metrics are off
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	if !cfg.Observability.EnableMetrics {
		return nil
	}
	return observability.NewCollector(MetricsNamespace)
}

// ProvideTracing installs the OTLP tracer provider when tracing is enabled
func ProvideTracing(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*observability.TracerProvider, func(), error) {
	if !cfg.Observability.EnableTracing {
		return nil, func() {}, nil
	}

	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName: observability.InstrumentationName,
		Environment: cfg.Environment,
		Endpoint:    cfg.Observability.OTLPEndpoint,
		SampleRate:  cfg.Observability.SampleRate,
		Insecure:    !cfg.IsProduction(),
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down tracer provider", zap.Error(err))
		}
	}
	return tp, cleanup, nil
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	store ports.Store,
	publisher ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	middlewares := []bus.Middleware{bus.LoggingMiddleware(&zapLoggerAdapter{logger}), bus.TracingMiddleware()}
	if metrics != nil {
		middlewares = append(middlewares, bus.MetricsMiddleware(metrics))
	}
	commandBus := bus.NewCommandBus(middlewares...)
	recorder := metricsRecorder(metrics)

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.CreateQuestionCommand{}, commandhandlers.NewCreateQuestionHandler(store.Questions(), publisher, recorder, logger)},
		{commands.DeleteQuestionCommand{}, commandhandlers.NewDeleteQuestionHandler(store.Questions(), publisher, recorder, logger)},
	}
	for _, reg := range registrations {
		if err := commandBus.Register(reg.cmd, reg.handler); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	store ports.Store,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	middlewares := []querybus.Middleware{querybus.TracingMiddleware()}
	if metrics != nil {
		middlewares = append(middlewares, querybus.MetricsMiddleware(metrics))
	}
	queryBus := querybus.NewQueryBus(middlewares...)

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.ListCategoriesQuery{}, queryhandlers.NewListCategoriesHandler(store.Categories())},
		{queries.ListQuestionsQuery{}, queryhandlers.NewListQuestionsHandler(store.Questions(), store.Categories())},
		{queries.SearchQuestionsQuery{}, queryhandlers.NewSearchQuestionsHandler(store.Questions())},
		{queries.QuestionsByCategoryQuery{}, queryhandlers.NewQuestionsByCategoryHandler(store.Categories(), store.Questions(), logger)},
		{queries.NextQuizQuestionQuery{}, queryhandlers.NewNextQuizQuestionHandler(store.Categories(), store.Questions(), metricsRecorder(metrics), nil, logger)},
	}
	for _, reg := range registrations {
		if err := queryBus.Register(reg.query, reg.handler); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	store ports.Store,
	metrics *observability.Collector,
	tracing *observability.TracerProvider,
	logger *zap.Logger,
) *rest.Router {
	opts := rest.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		EnableTracing:  tracing != nil,
		Metrics:        metrics,
	}
	if cb := cfg.CircuitBreaker; cb.Enabled {
		opts.CircuitBreaker = &middleware.CircuitBreakerConfig{
			Name:             "api",
			MaxRequests:      cb.MaxRequests,
			Interval:         cb.Interval,
			Timeout:          cb.Timeout,
			FailureThreshold: cb.FailureRatio,
			MinRequests:      cb.MinRequests,
		}
	}

	return rest.NewRouter(commandBus, queryBus, store, opts, logger)
}

func metricsRecorder(metrics *observability.Collector) ports.MetricsRecorder {
	if metrics == nil {
		return ports.NoopMetrics{}
	}
	return metrics
}

// zapLoggerAdapter adapts zap.Logger to the bus.Logger interface
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, a.fieldsToZap(keysAndValues...)...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, a.fieldsToZap(keysAndValues...)...)
}

func (a *zapLoggerAdapter) fieldsToZap(keysAndValues ...interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, _ := keysAndValues[i].(string)
		if err, ok := keysAndValues[i+1].(error); ok {
			zapFields = append(zapFields, zap.NamedError(key, err))
			continue
		}
		zapFields = append(zapFields, zap.Any(key, keysAndValues[i+1]))
	}
	return zapFields
}
