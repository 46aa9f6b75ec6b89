/*
Package when gates the middlewares of a route behind a predicate over the request.

A route whose gate fails is skipped as if it never matched,
and the router tries the next route matching the request:

	r.Handle(router.Route{
		Path:        "/documents/{id}",
		Middlewares: []middleware.Adapter{when.PrefersLinkedData(), ...},
	})
*/
package when

import (
	"net/http"
	"slices"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/negotiate"
	"github.com/xy-planning-network/rest/http/router"
)

// Check continues handling the request when fn returns true
// and hands it to the next matching route otherwise.
func Check(fn func(r *http.Request) bool) middleware.Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !fn(r) {
				router.NextRoute(w, r)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}

// Prefers continues handling a request when,
// of the acceptable media types, the one it prefers is among preferred.
func Prefers(acceptable []string, preferred ...string) middleware.Adapter {
	acceptable = slices.Clone(acceptable)
	preferred = slices.Clone(preferred)

	return Check(func(r *http.Request) bool {
		return slices.Contains(preferred, negotiate.Accepts(r, acceptable...))
	})
}

// PrefersJSONLD continues handling a request preferring JSON-LD over HTML.
func PrefersJSONLD() middleware.Adapter {
	return Prefers(rest.AcceptableTypes(), rest.JSONLDTypes()...)
}

// PrefersLinkedData continues handling a request preferring any linked data type over HTML.
func PrefersLinkedData() middleware.Adapter {
	return Prefers(rest.AcceptableTypes(), rest.LinkedDataTypes()...)
}
