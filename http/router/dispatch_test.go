package router_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/router"
)

func TestNextRouteOutsideRouter(t *testing.T) {
	w := httptest.NewRecorder()
	router.NextRoute(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDefaultErrorHandler(t *testing.T) {
	tcs := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"Plain", errors.New("secret"), http.StatusInternalServerError, "Internal Server Error\n"},
		{"Private", &rest.Error{Message: "secret", HTTPStatusCode: http.StatusConflict}, http.StatusConflict, "Conflict\n"},
		{"Public", rest.NewNotAcceptableError(nil), http.StatusNotAcceptable, "Requested content types not acceptable.\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			// Act
			router.Fail(w, r, tc.err)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
		})
	}
}
