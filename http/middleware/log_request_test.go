package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.Adapter(middleware.NoopAdapter)), fmt.Sprintf("%p", actual))

	tcs := []struct {
		name     string
		url      string
		ip       string
		expected []string
	}{
		{"Document", "/documents/1", "", []string{"GET /documents/1 418", `"status":418`, `"requestId":"test-id"`}},
		{"Client IP", "/documents", "203.0.113.7", []string{"GET /documents 418", `"ip":"203.0.113.7"`}},
		{"Query", "/documents?limit=5", "", []string{"GET /documents?limit=5 418"}},
		{"Masked Query", "/documents?password=hunter2", "", []string{"GET /documents?password=" + rest.LogMaskVal + " 418"}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(logger.WithLogger(log.New(b, "", 0)))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.url, nil)
			r = r.Clone(context.WithValue(r.Context(), rest.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), rest.IpAddrKey, tc.ip))
			}

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(http.StatusTeapot)
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, http.StatusTeapot, w.Code)
			for _, e := range tc.expected {
				require.Contains(t, b.String(), e)
			}
			require.NotContains(t, b.String(), "hunter2")
		})
	}
}
