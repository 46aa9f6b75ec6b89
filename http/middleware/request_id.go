package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/rest"
)

// RequestIDHeader carries the request ID between clients, proxies and this server.
const RequestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under rest.RequestIDKey
// and echoes it in the X-Request-Id response header.
//
// A valid uuid already set in the X-Request-Id request header is reused.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			h.ServeHTTP(w, r.Clone(context.WithValue(r.Context(), rest.RequestIDKey, id)))
		})
	}
}
