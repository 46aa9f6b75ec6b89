package router

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
)

// Route pairs a path template and method with a handler and the adapters wrapping it.
//
// A Route with no Method matches every method.
// A Route with no Handler calls [NextRoute] after its middlewares.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// A ParamFunc validates or loads a path variable before any Route using it is handled.
// Calling next continues handling the Route; not calling it ends handling the request.
type ParamFunc func(w http.ResponseWriter, r *http.Request, next http.Handler, val string)

// An ErrorHandlerFunc responds to a request that failed with err.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// Router routes requests for resources to their handlers.
type Router struct {
	Env rest.Environment

	c   *core
	mr  *mux.Router
	mws []middleware.Adapter
}

// core holds the state a Router shares with its subrouters.
type core struct {
	sync.RWMutex
	entries       []entry
	everyReqStack []middleware.Adapter
	notFound      http.Handler
	onErr         ErrorHandlerFunc
	params        []param
	reportPanic   middleware.Adapter
}

type entry struct {
	route   *mux.Route
	handler http.Handler
}

type param struct {
	name string
	fn   ParamFunc
}

// New builds an empty Router for env.
func New(env rest.Environment, opts ...RouterOptFn) *Router {
	r := &Router{
		Env: env,
		c: &core{
			notFound: http.NotFoundHandler(),
			onErr:    DefaultErrorHandler,
		},
		mr: mux.NewRouter(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.c.reportPanic = middleware.ReportPanic(env)
	return r
}

// Handle registers one Route.
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound answers requests every Route passed on.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.c.Lock()
	defer r.c.Unlock()

	r.c.notFound = handler
}

// HandleRoutes registers routes in order, each wrapped by middlewares and then its own Middlewares.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	r.c.Lock()
	defer r.c.Unlock()

	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.mws)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.mws...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		var handler http.Handler = http.HandlerFunc(NextRoute)
		if route.Handler != nil {
			handler = route.Handler
		}

		mr := r.mr.NewRoute().Path(route.Path)
		if route.Method != "" {
			mr = mr.Methods(route.Method)
		}

		r.c.entries = append(r.c.entries, entry{route: mr, handler: middleware.Chain(handler, mws...)})
	}
}

// OnEveryRequest adds middlewares run ahead of route matching, so unmatched requests pass through them too.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.c.Lock()
	defer r.c.Unlock()

	r.c.everyReqStack = append(r.c.everyReqStack, middlewares...)
}

// Param registers fn to run before handling any Route whose path includes the variable name.
// ParamFuncs run in the order they were registered.
func (r *Router) Param(name string, fn ParamFunc) {
	r.c.Lock()
	defer r.c.Unlock()

	r.c.params = append(r.c.params, param{name: name, fn: fn})
}

// ServeHTTP runs the every-request stack, then the matching routes in registration order.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.c.RLock()
	stack := append([]middleware.Adapter{r.c.reportPanic}, r.c.everyReqStack...)
	r.c.RUnlock()

	middleware.Chain(http.HandlerFunc(r.c.dispatch), stack...).ServeHTTP(w, req)
}

// Subrouter constructs a [*Router] registering Routes under the prefix.
// Routes registered through it are tried in the same order as all others,
// with middlewares called before those of each Route.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/documents
func (r *Router) Subrouter(prefix string, middlewares ...middleware.Adapter) *Router {
	mws := make([]middleware.Adapter, 0, len(r.mws)+len(middlewares))
	mws = append(mws, r.mws...)
	mws = append(mws, middlewares...)

	return &Router{
		Env: r.Env,
		c:   r.c,
		mr:  r.mr.PathPrefix(prefix).Subrouter(),
		mws: mws,
	}
}

// Vars returns the path variables for the current request, if any.
func Vars(r *http.Request) map[string]string { return mux.Vars(r) }

// dispatch tries each matching Route in order until one handles the request.
func (c *core) dispatch(w http.ResponseWriter, req *http.Request) {
	c.RLock()
	entries, params, notFound, onErr := c.entries, c.params, c.notFound, c.onErr
	c.RUnlock()

	st := &state{onErr: onErr}
	req = withState(req, st)

	var mismatch bool
	for _, e := range entries {
		var m mux.RouteMatch
		if !e.route.Match(req, &m) {
			if m.MatchErr == mux.ErrMethodMismatch {
				mismatch = true
			}

			continue
		}

		st.next = false
		withParams(e.handler, m.Vars, params).ServeHTTP(w, mux.SetURLVars(req, m.Vars))
		if !st.next || st.failed {
			return
		}
	}

	if mismatch {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	notFound.ServeHTTP(w, req)
}

// withParams wraps h with each ParamFunc whose variable is set in vars.
func withParams(h http.Handler, vars map[string]string, params []param) http.Handler {
	for i := len(params) - 1; i >= 0; i-- {
		p := params[i]
		val, ok := vars[p.name]
		if !ok {
			continue
		}

		next := h
		h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p.fn(w, r, next, val)
		})
	}

	return h
}
