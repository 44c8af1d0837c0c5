package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	appErrors "trivia-backend/pkg/errors"
)

// responder writes success bodies and error envelopes
type responder struct {
	errors *appErrors.ErrorHandler
	logger *zap.Logger
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h responder) respondError(w http.ResponseWriter, r *http.Request, err error) {
	h.errors.Handle(w, r, err)
}

// decodeBody reads a JSON request body into dst. An empty or malformed body
// is a bad request.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return appErrors.NewBadRequest("request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &appErrors.AppError{
			Kind:    appErrors.KindBadRequest,
			Message: "invalid request body",
			Cause:   err,
		}
	}
	return nil
}

// pathID parses an integer URL parameter
func pathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.NewBadRequest(fmt.Sprintf("%s must be an integer, got %q", name, raw))
	}
	return id, nil
}

// resultAs asserts a bus result to the type the handler registered for it
func resultAs[T any](result interface{}) (T, error) {
	typed, ok := result.(T)
	if !ok {
		var zero T
		return zero, appErrors.NewInternal(fmt.Sprintf("unexpected result type %T", result), nil)
	}
	return typed, nil
}
