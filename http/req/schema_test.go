package req_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/req"
	"github.com/xy-planning-network/rest/http/router"
)

type listQuery struct {
	Limit int `schema:"limit" validate:"omitempty,lte=100"`
}

type createBody struct {
	Title string `json:"title" validate:"required"`
}

func TestParserValidate(t *testing.T) {
	schema := req.Schema{
		Query: func() any { return new(listQuery) },
		Body:  func() any { return new(createBody) },
	}

	tcs := []struct {
		name    string
		target  string
		body    string
		code    int
		kind    rest.Kind
		details bool
	}{
		{name: "Valid", target: "/documents?limit=10", body: `{"title":"hi"}`, code: http.StatusOK},
		{name: "Bad-Query", target: "/documents?limit=1000", body: `{"title":"hi"}`, code: http.StatusBadRequest, kind: rest.KindValidation, details: true},
		{name: "Unconvertible-Query", target: "/documents?limit=lots", body: `{"title":"hi"}`, code: http.StatusBadRequest, kind: rest.KindValidation, details: true},
		{name: "Empty-Body", target: "/documents", code: http.StatusBadRequest, kind: rest.KindValidation, details: true},
		{name: "Malformed-Body", target: "/documents", body: `{"title":`, code: http.StatusBadRequest, kind: rest.KindValidation},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var failed error
			var gotQuery *listQuery
			var gotBody *createBody

			rt := router.New(rest.Testing, router.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				failed = err
				w.WriteHeader(rest.ErrorStatus(err))
			}))
			rt.Handle(router.Route{
				Path:        "/documents",
				Method:      http.MethodPost,
				Middlewares: []middleware.Adapter{req.NewParser().Validate(schema)},
				Handler: func(w http.ResponseWriter, r *http.Request) {
					gotQuery, _ = req.QueryFrom[*listQuery](r.Context())
					gotBody, _ = req.BodyFrom[*createBody](r.Context())
				},
			})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, tc.target, strings.NewReader(tc.body))

			// Act
			rt.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.code == http.StatusOK {
				require.Nil(t, failed)
				require.Equal(t, &listQuery{Limit: 10}, gotQuery)
				require.Equal(t, &createBody{Title: "hi"}, gotBody)
				return
			}

			require.Nil(t, gotQuery)
			require.Nil(t, gotBody)

			var re *rest.Error
			require.True(t, errors.As(failed, &re))
			require.True(t, re.Public)
			require.Equal(t, tc.kind, re.Kind)
			require.Equal(t, tc.details, re.Details["errors"] != nil)
		})
	}
}

func TestParserValidateNoSchema(t *testing.T) {
	// Arrange
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := req.QueryFrom[*listQuery](r.Context())
		require.False(t, ok)
	})

	// Act
	req.NewParser().Validate(req.Schema{})(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.True(t, called)
}
