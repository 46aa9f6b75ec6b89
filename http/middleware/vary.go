package middleware

import "net/http"

// Vary adds the header names to the "Vary" response header before handling the request.
func Vary(headers ...string) Adapter {
	if len(headers) == 0 {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, name := range headers {
				w.Header().Add("Vary", name)
			}

			h.ServeHTTP(w, r)
		})
	}
}
