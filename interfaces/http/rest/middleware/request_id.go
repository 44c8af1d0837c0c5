package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"trivia-backend/pkg/common"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, then stores it
// in the context and echoes it on the response. It also stamps the start time
// that the access log measures from.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := common.WithStartTime(common.WithRequestID(r.Context(), requestID), time.Now())

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from the request context
func GetRequestID(r *http.Request) string {
	id, _ := common.GetRequestID(r.Context())
	return id
}
