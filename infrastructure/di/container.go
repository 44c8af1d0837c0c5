package di

import (
	"go.uber.org/zap"

	"trivia-backend/application/commands/bus"
	"trivia-backend/application/ports"
	querybus "trivia-backend/application/queries/bus"
	"trivia-backend/infrastructure/config"
	"trivia-backend/interfaces/http/rest"
	"trivia-backend/pkg/observability"
)

// Container holds all application dependencies. Metrics and Tracing are nil
// when disabled in the configuration.
type Container struct {
	Config         *config.Config
	LogLevel       zap.AtomicLevel
	Logger         *zap.Logger
	Store          ports.Store
	EventPublisher ports.EventPublisher
	Metrics        *observability.Collector
	Tracing        *observability.TracerProvider
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
	Router         *rest.Router
}
