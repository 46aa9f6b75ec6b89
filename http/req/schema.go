package req

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/router"
)

// A Schema describes the payloads a request may carry.
// Each func returns a fresh pointer to a struct to parse into;
// a nil func skips parsing that payload.
type Schema struct {
	Query func() any
	Body  func() any
}

type ctxKey int

const (
	queryKey ctxKey = iota
	bodyKey
)

// Validate parses and validates the payloads s describes,
// storing them in the request's context before calling the next handler.
//
// A payload failing validation ends the request through router.Fail
// with a *rest.Error of rest.KindValidation.
func (p *Parser) Validate(s Schema) middleware.Adapter {
	if s.Query == nil && s.Body == nil {
		return middleware.NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if s.Query != nil {
				q := s.Query()
				if err := p.ParseQueryParams(r.URL.Query(), q); err != nil {
					router.Fail(w, r, toRestError(err))
					return
				}

				ctx = context.WithValue(ctx, queryKey, q)
			}

			if s.Body != nil {
				b := s.Body()
				if err := p.ParseBody(r.Body, b); err != nil {
					router.Fail(w, r, toRestError(err))
					return
				}

				ctx = context.WithValue(ctx, bodyKey, b)
			}

			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// QueryFrom returns the query params Validate stored in ctx.
func QueryFrom[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(queryKey).(T)
	return v, ok
}

// BodyFrom returns the body Validate stored in ctx.
func BodyFrom[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(bodyKey).(T)
	return v, ok
}
