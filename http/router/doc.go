/*
Package router defines how a rest app routes HTTP requests to resources.

A [Router] registers [Route]s: a path and an HTTP method
mapped to an [http.HandlerFunc] and the middlewares called before it.
Paths use [github.com/gorilla/mux] templates, e.g., /documents/{id}.

Unlike a plain mux, a [Router] tries Routes in the order they were registered
and lets a Route decline a request it matched:
calling [NextRoute] from any middleware or handler hands the request to the next matching Route.
This lets several Routes share a path while each serves a different representation:

	rt.HandleRoutes([]router.Route{
		{Path: "/documents/{id}", Method: http.MethodGet, Middlewares: []middleware.Adapter{when.PrefersJSONLD()}, Handler: serveJSONLD},
		{Path: "/documents/{id}", Method: http.MethodGet, Handler: serveHTML},
	})

A Route without a Handler falls through to the next matching Route once its middlewares call the next http.Handler.

Errors raised while handling a request are passed to [Fail],
which hands them to the single error handler configured with [WithErrorHandler].

[*Router.Param] registers a [ParamFunc] running before any Route whose path has the named variable.
*/
package router
