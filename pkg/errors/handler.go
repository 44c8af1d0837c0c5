package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the envelope written for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler maps errors to HTTP responses
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle resolves the kind of err and writes the matching envelope
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	kind := KindOf(err)
	status := kind.HTTPStatus()

	fields := []zap.Field{
		zap.String("error_kind", kind.String()),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("request_id", w.Header().Get("X-Request-ID")),
		zap.Error(err),
	}

	if status >= http.StatusUnprocessableEntity {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Warn("Request rejected", fields...)
	}

	h.sendJSON(w, status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: kind.PublicMessage(),
	})
}

// HandleStatus writes an envelope for a transport-level status that has no
// error kind, such as 405.
func (h *ErrorHandler) HandleStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.logger.Warn("HTTP error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	)

	h.sendJSON(w, status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// NotFound answers requests for unknown routes
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Handle(w, r, NewNotFound("route"))
}

// MethodNotAllowed answers requests for a known route with the wrong method
func (h *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.HandleStatus(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (h *ErrorHandler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}

// Middleware recovers panics and answers them with the internal error envelope
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.Handle(w, r, NewInternal("panic recovered", fmt.Errorf("%v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
