package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"trivia-backend/application/commands/bus"
	"trivia-backend/application/ports"
	querybus "trivia-backend/application/queries/bus"
	"trivia-backend/interfaces/http/rest/handlers"
	"trivia-backend/interfaces/http/rest/middleware"
	appErrors "trivia-backend/pkg/errors"
	"trivia-backend/pkg/observability"
)

// Options tunes the router. A nil Metrics collector disables request metrics
// and the /metrics endpoint.
type Options struct {
	AllowedOrigins []string
	EnableTracing  bool
	Metrics        *observability.Collector
	CircuitBreaker *middleware.CircuitBreakerConfig
}

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	health     ports.HealthChecker
	opts       Options
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	health ports.HealthChecker,
	opts Options,
	logger *zap.Logger,
) *Router {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		health:     health,
		opts:       opts,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()
	errHandler := appErrors.NewErrorHandler(rt.logger)

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	if rt.opts.Metrics != nil {
		router.Use(middleware.Metrics(rt.opts.Metrics))
	}
	if rt.opts.EnableTracing {
		router.Use(observability.TracingMiddleware)
	}
	router.Use(errHandler.Middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	router.NotFound(errHandler.NotFound)
	router.MethodNotAllowed(errHandler.MethodNotAllowed)

	healthHandler := handlers.NewHealthHandler(rt.health, rt.logger)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)
	if rt.opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.opts.Metrics.Handler())
	}

	categoryHandler := handlers.NewCategoryHandler(rt.queryBus, errHandler, rt.logger)
	questionHandler := handlers.NewQuestionHandler(rt.commandBus, rt.queryBus, errHandler, rt.logger)
	quizHandler := handlers.NewQuizHandler(rt.queryBus, errHandler, rt.logger)

	router.Group(func(r chi.Router) {
		if rt.opts.CircuitBreaker != nil {
			var states middleware.StateRecorder
			if rt.opts.Metrics != nil {
				states = rt.opts.Metrics
			}
			r.Use(middleware.CircuitBreaker(*rt.opts.CircuitBreaker, errHandler, states, rt.logger))
		}

		r.Get("/categories", categoryHandler.ListCategories)
		r.Get("/categories/{categoryID}/questions", categoryHandler.GetCategoryQuestions)

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", questionHandler.ListQuestions)
			r.Post("/", questionHandler.CreateQuestion)
			r.Post("/search", questionHandler.SearchQuestions)
			r.Get("/search", questionHandler.SearchQuestions)
			r.Delete("/{questionID}", questionHandler.DeleteQuestion)
		})

		r.Post("/quizzes", quizHandler.NextQuestion)
	})

	return router
}
