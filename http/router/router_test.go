package router_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/router"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}
}

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouterOrder(t *testing.T) {
	// Arrange
	rt := router.New(rest.Testing)
	rt.HandleRoutes([]router.Route{
		{Path: "/documents/first", Method: http.MethodGet, Handler: write("first")},
		{Path: "/documents/{id}", Method: http.MethodGet, Handler: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "id="+router.Vars(r)["id"])
		}},
		{Path: "/documents/second", Method: http.MethodGet, Handler: write("unreachable")},
	})

	// Act + Assert
	require.Equal(t, "first", serve(rt, http.MethodGet, "/documents/first").Body.String())
	require.Equal(t, "id=second", serve(rt, http.MethodGet, "/documents/second").Body.String())
}

func TestRouterNextRoute(t *testing.T) {
	// Arrange
	var tried []string
	declines := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tried = append(tried, name)
			router.NextRoute(w, r)
		}
	}

	rt := router.New(rest.Testing)
	rt.HandleRoutes([]router.Route{
		{Path: "/documents/{id}", Method: http.MethodGet, Handler: declines("first")},
		{Path: "/documents/{id}", Method: http.MethodGet},
		{Path: "/documents/{slug}", Method: http.MethodGet, Handler: func(w http.ResponseWriter, r *http.Request) {
			tried = append(tried, "third")
			fmt.Fprint(w, "slug="+router.Vars(r)["slug"])
		}},
	})

	// Act
	w := serve(rt, http.MethodGet, "/documents/abc")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "slug=abc", w.Body.String())
	require.Equal(t, []string{"first", "third"}, tried)
}

func TestRouterNotFound(t *testing.T) {
	tcs := []struct {
		name     string
		notFound http.HandlerFunc
		code     int
		body     string
	}{
		{"Default", nil, http.StatusNotFound, "404 page not found\n"},
		{"Custom", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
			fmt.Fprint(w, "gone")
		}, http.StatusGone, "gone"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt := router.New(rest.Testing)
			rt.Handle(router.Route{Path: "/documents/{id}", Method: http.MethodGet, Handler: router.NextRoute})
			if tc.notFound != nil {
				rt.HandleNotFound(tc.notFound)
			}

			// Act
			w := serve(rt, http.MethodGet, "/documents/1")

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	rt := router.New(rest.Testing)
	rt.Handle(router.Route{Path: "/documents/{id}", Method: http.MethodGet, Handler: write("ok")})

	require.Equal(t, http.StatusMethodNotAllowed, serve(rt, http.MethodPost, "/documents/1").Code)
	require.Equal(t, http.StatusNotFound, serve(rt, http.MethodPost, "/elsewhere").Code)
}

func TestRouterAnyMethod(t *testing.T) {
	rt := router.New(rest.Testing)
	rt.Handle(router.Route{Path: "/ping", Handler: write("pong")})

	require.Equal(t, "pong", serve(rt, http.MethodGet, "/ping").Body.String())
	require.Equal(t, "pong", serve(rt, http.MethodDelete, "/ping").Body.String())
}

func TestRouterFail(t *testing.T) {
	// Arrange
	var handled []error
	boom := errors.New("boom")
	rt := router.New(rest.Testing, router.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
		handled = append(handled, err)
		w.WriteHeader(http.StatusTeapot)
	}))

	rt.HandleRoutes([]router.Route{
		{Path: "/documents/{id}", Method: http.MethodGet, Handler: func(w http.ResponseWriter, r *http.Request) {
			router.Fail(w, r, boom)
			router.Fail(w, r, errors.New("dropped"))
			router.NextRoute(w, r)
		}},
		{Path: "/documents/{id}", Method: http.MethodGet, Handler: write("unreachable")},
	})

	// Act
	w := serve(rt, http.MethodGet, "/documents/1")

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Equal(t, []error{boom}, handled)
	require.Empty(t, w.Body.String())
}

func TestRouterMiddlewares(t *testing.T) {
	// Arrange
	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	rt := router.New(rest.Testing)
	rt.OnEveryRequest(mark("every"))
	api := rt.Subrouter("/api", mark("sub"))
	api.HandleRoutes(
		[]router.Route{{Path: "/documents/{id}", Method: http.MethodGet, Handler: write("doc"), Middlewares: []middleware.Adapter{mark("route")}}},
		mark("group"),
	)

	// Act
	w := serve(rt, http.MethodGet, "/api/documents/1")
	missing := serve(rt, http.MethodGet, "/documents/1")

	// Assert
	require.Equal(t, "doc", w.Body.String())
	require.Equal(t, http.StatusNotFound, missing.Code)
	require.Equal(t, []string{"every", "sub", "group", "route", "every"}, order)
}

func TestRouterParam(t *testing.T) {
	// Arrange
	var seen []string
	rt := router.New(rest.Testing)
	rt.Param("id", func(w http.ResponseWriter, r *http.Request, next http.Handler, val string) {
		seen = append(seen, val)
		if val == "stop" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
	rt.HandleRoutes([]router.Route{
		{Path: "/documents/{id}", Method: http.MethodGet, Handler: write("doc")},
		{Path: "/collections/{name}", Method: http.MethodGet, Handler: write("collection")},
	})

	// Act + Assert
	require.Equal(t, "doc", serve(rt, http.MethodGet, "/documents/go").Body.String())
	require.Equal(t, http.StatusBadRequest, serve(rt, http.MethodGet, "/documents/stop").Code)
	require.Equal(t, "collection", serve(rt, http.MethodGet, "/collections/stop").Body.String())
	require.Equal(t, []string{"go", "stop"}, seen)
}

func TestRouterReportPanic(t *testing.T) {
	rt := router.New(rest.Production)
	rt.Handle(router.Route{Path: "/panic", Handler: func(http.ResponseWriter, *http.Request) { panic("boom") }})

	require.Equal(t, http.StatusInternalServerError, serve(rt, http.MethodGet, "/panic").Code)
}
