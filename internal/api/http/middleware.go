package http

import (
	"context"
	"net/http"
	"time"
)

// NewTimeoutMiddleware creates middleware that cancels request's context after given time.
// Keeps a slow github fan-out from holding the handler past the server's write timeout.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h(w, r)
		}
	}
}
