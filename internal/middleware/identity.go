package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// Identity is asserted by the client through the X-User-Id header. The
// middleware only parses it; whether an endpoint requires a known member is
// decided by the handlers and services.

const userIDHeader = "X-User-Id"

type ctxKey int

const userIDKey ctxKey = iota

// WithIdentity puts the asserted user id into the request context when the
// header carries a positive integer. Requests without one pass through
// anonymously.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(userIDHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext returns the asserted user id, if any.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
