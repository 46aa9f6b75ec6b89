package negotiate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/negotiate"
)

func writer(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestFormatsAdd(t *testing.T) {
	fs := negotiate.Formats{}.
		Add(rest.MediaTypeJSONLD, writer("ld")).
		Add(rest.MediaTypeJSON, writer("json")).
		Add(rest.MediaTypeJSONLD, writer("replaced"))

	require.Equal(t, []string{rest.MediaTypeJSONLD, rest.MediaTypeJSON}, fs.Types())
}

func TestFormat(t *testing.T) {
	fs := negotiate.Formats{}.
		Add(rest.MediaTypeJSONLD, writer("ld")).
		Add(rest.MediaTypeJSON, writer("json")).
		Add(rest.MediaTypeHTML, writer("html"))

	tcs := []struct {
		name     string
		accept   string
		def      http.HandlerFunc
		expected string
		body     string
		code     int
	}{
		{"JSON-LD", "application/ld+json", nil, rest.MediaTypeJSONLD, "ld", http.StatusOK},
		{"JSON", "application/json", nil, rest.MediaTypeJSON, "json", http.StatusOK},
		{"HTML", "text/html", nil, rest.MediaTypeHTML, "html", http.StatusOK},
		{"Default", "image/png", writer("default"), "", "default", http.StatusOK},
		{"No-Default", "image/png", nil, "", "Not Acceptable\n", http.StatusNotAcceptable},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Accept", tc.accept)

			// Act
			actual := negotiate.Format(w, r, fs, tc.def)

			// Assert
			require.Equal(t, tc.expected, actual)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
			require.Equal(t, "Accept", w.Header().Get("Vary"))
		})
	}
}

func TestFormatEmpty(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	var called bool
	actual := negotiate.Format(w, r, nil, func(http.ResponseWriter, *http.Request) { called = true })

	require.Equal(t, "", actual)
	require.True(t, called)
}
