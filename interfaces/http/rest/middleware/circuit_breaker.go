package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	appErrors "trivia-backend/pkg/errors"
)

var errFailedResponse = errors.New("handler answered with a failure status")

// CircuitBreakerConfig holds configuration for circuit breaker
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// StateRecorder is told about every breaker state transition
type StateRecorder interface {
	SetCircuitState(name string, state int)
}

// CircuitBreaker trips when too many requests end in a store failure (422)
// or a server error. While open, requests are refused with the
// unprocessable envelope without reaching the handler.
func CircuitBreaker(
	config CircuitBreakerConfig,
	errHandler *appErrors.ErrorHandler,
	states StateRecorder,
	logger *zap.Logger,
) func(http.Handler) http.Handler {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			if states != nil {
				states.SetCircuitState(name, int(to))
			}
		},
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := cb.Execute(func() (any, error) {
				wrapper := &responseWrapper{
					ResponseWriter: w,
					statusCode:     http.StatusOK,
				}

				next.ServeHTTP(wrapper, r)

				if wrapper.statusCode == http.StatusUnprocessableEntity || wrapper.statusCode >= http.StatusInternalServerError {
					return nil, errFailedResponse
				}
				return nil, nil
			})

			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				errHandler.Handle(w, r, appErrors.NewUnprocessable("circuit breaker "+config.Name+" rejected request", err))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
