package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/rest"
)

// ReportPanic recovers panics raised while handling a request,
// reports them to Sentry and responds with http.StatusInternalServerError.
//
// In Development, panics are left alone so they surface in the terminal.
func ReportPanic(env rest.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return func(h http.Handler) http.Handler {
		reporting := sh.Handle(h)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			reporting.ServeHTTP(w, r)
		})
	}
}
