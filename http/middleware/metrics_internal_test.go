package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	// Arrange
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "418")
	before := testutil.ToFloat64(counter)
	h := Metrics()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// Act
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	sr := newStatusRecorder(w)
	require.Equal(t, http.StatusOK, sr.Status())

	n, err := sr.Write([]byte("abc"))
	require.Nil(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, sr.size)
	require.Equal(t, http.StatusOK, sr.Status())

	sr.WriteHeader(http.StatusTeapot)
	require.Equal(t, http.StatusOK, sr.Status())
	require.Same(t, w, sr.Unwrap())
}
