package logger_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "https://example.com/documents/1", nil)
	r.Header.Set("Accept", "application/ld+json")
	r = r.Clone(context.WithValue(r.Context(), rest.RequestIDKey, "test-id"))

	tcs := []struct {
		name     string
		lc       logger.LogContext
		expected map[string]any
	}{
		{"Zero-Value", logger.LogContext{}, map[string]any{}},
		{
			"Caller-Elided",
			logger.LogContext{Caller: "a/b.go:1"},
			map[string]any{},
		},
		{
			"Data",
			logger.LogContext{Data: map[string]any{"test": "data"}},
			map[string]any{"data": map[string]any{"test": "data"}},
		},
		{
			"Error",
			logger.LogContext{Error: errors.New("test")},
			map[string]any{"error": "test"},
		},
		{
			"Request",
			logger.LogContext{Request: r},
			map[string]any{
				"request": map[string]any{
					"method": http.MethodGet,
					"url":    "https://example.com/documents/1",
					"accept": "application/ld+json",
					"id":     "test-id",
				},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			b, err := tc.lc.MarshalText()

			// Assert
			require.Nil(t, err)
			actual := make(map[string]any)
			require.Nil(t, json.Unmarshal(b, &actual))
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestLogContextString(t *testing.T) {
	lc := logger.LogContext{Data: map[string]any{"bad": make(chan int)}}
	require.Contains(t, lc.String(), `"error"`)

	lc = logger.LogContext{Error: errors.New("test")}
	require.Equal(t, `{"error":"test"}`, lc.String())
}
