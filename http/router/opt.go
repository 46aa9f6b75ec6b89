package router

// A RouterOptFn configures a *Router when constructing it.
type RouterOptFn func(*Router)

// WithErrorHandler sets the handler [Fail] forwards errors to.
//
// If fn is nil, DefaultErrorHandler is kept.
func WithErrorHandler(fn ErrorHandlerFunc) RouterOptFn {
	return func(r *Router) {
		if fn != nil {
			r.c.onErr = fn
		}
	}
}
