package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/logger"
)

// LogRequest logs the request's method, requested URL, response status
// and duration once the request is handled, using the enclosed implementation of logger.Logger.
//
// LogRequest masks the values for the following query params:
//   - password
//
// If logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := newStatusRecorder(w)

			h.ServeHTTP(sr, r)

			uri := r.URL.Path
			q := r.URL.Query()
			rest.Mask(q, "password")
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			data := map[string]any{
				"duration": time.Since(start).String(),
				"size":     sr.size,
				"status":   sr.Status(),
			}

			if ip, ok := r.Context().Value(rest.IpAddrKey).(string); ok {
				data["ip"] = ip
			}

			if id, ok := r.Context().Value(rest.RequestIDKey).(string); ok {
				data["requestId"] = id
			}

			ls.Info(fmt.Sprintf("%s %s %d", r.Method, uri, sr.Status()), &logger.LogContext{Data: data})
		})
	}
}
