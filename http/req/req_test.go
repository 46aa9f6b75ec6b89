package req_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/req"
)

type documentBody struct {
	Title    string `json:"title" validate:"required"`
	Revision int64  `json:"revision" validate:"gt=0"`
	Meta     struct {
		Public bool `json:"public" validate:"eq=true"`
	} `json:"meta"`
	JSON    rest.Handling `json:"json" validate:"enum"`
	Formats []string      `json:"formats" validate:"dive,mediatype"`
	Secret  string        `json:"-"`
}

type documentsQuery struct {
	Collection string   `schema:"collection" validate:"required"`
	Limit      int64    `schema:"limit" validate:"omitempty,lte=100"`
	Format     string   `schema:"format" validate:"omitempty,mediatype"`
	IDs        []string `schema:"id" validate:"omitempty,max=3"`
	Internal   string   `schema:"-"`
}

func TestParserParseBody(t *testing.T) {
	tcs := []struct {
		name   string
		body   string
		target any
		err    error
		errs   req.ValidationErrors
	}{
		{name: "Not-Struct-Pointer", body: `{}`, target: documentBody{}, err: rest.ErrBadAny},
		{name: "Nil-Pointer", body: `{}`, target: (*documentBody)(nil), err: rest.ErrBadAny},
		{name: "Malformed", body: "\x00", target: new(documentBody), err: rest.ErrBadFormat},
		{name: "Bad-Handling", body: `{"json":"maybe"}`, target: new(documentBody), err: rest.ErrBadFormat},
		{
			name:   "Empty",
			target: new(documentBody),
			err:    rest.ErrNotValid,
			errs: req.ValidationErrors{
				{Field: "title", Got: "", Rule: "required; string"},
				{Field: "revision", Got: int64(0), Rule: "gt=0; int64"},
				{Field: "meta.public", Got: false, Rule: "eq=true; bool"},
				{Field: "json", Got: rest.Handling(0), Rule: "enum; rest.Handling"},
			},
		},
		{
			name:   "Invalid",
			body:   `{"title":"Alpha","revision":-1,"meta":{"public":true},"json":"route","formats":["text/plain"]}`,
			target: new(documentBody),
			err:    rest.ErrNotValid,
			errs: req.ValidationErrors{
				{Field: "revision", Got: int64(-1), Rule: "gt=0; int64"},
				{Field: "formats[0]", Got: "text/plain", Rule: "mediatype; string"},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			err := req.NewParser().ParseBody(strings.NewReader(tc.body), tc.target)

			// Assert
			require.ErrorIs(t, err, tc.err)
			if tc.errs == nil {
				return
			}

			var actual req.ValidationErrors
			require.ErrorAs(t, err, &actual)
			require.Equal(t, tc.errs, actual)
		})
	}
}

func TestParserParseBodyValid(t *testing.T) {
	// Arrange
	body := `{"title":"Alpha","revision":2,"meta":{"public":true},"json":"true","formats":["application/ld+json"],"secret":"x"}`
	var actual documentBody

	// Act
	err := req.NewParser().ParseBody(strings.NewReader(body), &actual)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "Alpha", actual.Title)
	require.Equal(t, int64(2), actual.Revision)
	require.True(t, actual.Meta.Public)
	require.Equal(t, rest.Enabled, actual.JSON)
	require.Equal(t, []string{rest.MediaTypeJSONLD}, actual.Formats)
	require.Empty(t, actual.Secret)
}

func TestParserParseQueryParams(t *testing.T) {
	tcs := []struct {
		name   string
		query  string
		target any
		err    error
		errs   req.ValidationErrors
	}{
		{name: "Not-Struct-Pointer", target: documentsQuery{}, err: rest.ErrBadAny},
		{name: "Schema-Required", target: new(struct {
			A string `schema:"a,required"`
		}), err: rest.ErrNotImplemented},
		{
			name:   "Unconvertible",
			query:  "collection=documents&limit=lots",
			target: new(documentsQuery),
			err:    rest.ErrNotValid,
			errs:   req.ValidationErrors{{Field: "limit", Got: "bad value at index 0", Rule: "must be int64"}},
		},
		{
			name:   "Invalid",
			query:  "limit=1000&format=text/plain&id=a&id=b&id=c&id=d",
			target: new(documentsQuery),
			err:    rest.ErrNotValid,
			errs: req.ValidationErrors{
				{Field: "collection", Got: "", Rule: "required; string"},
				{Field: "limit", Got: int64(1000), Rule: "lte=100; int64"},
				{Field: "format", Got: "text/plain", Rule: "mediatype; string"},
				{Field: "id", Got: []string{"a", "b", "c", "d"}, Rule: "max=3; []string"},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			params, err := url.ParseQuery(tc.query)
			require.Nil(t, err)

			// Act
			err = req.NewParser().ParseQueryParams(params, tc.target)

			// Assert
			require.ErrorIs(t, err, tc.err)
			if tc.errs == nil {
				return
			}

			var actual req.ValidationErrors
			require.ErrorAs(t, err, &actual)
			require.Equal(t, tc.errs, actual)
		})
	}
}

func TestParserParseQueryParamsValid(t *testing.T) {
	// Arrange
	params := url.Values{
		"collection": {"documents"},
		"limit":      {"10"},
		"format":     {rest.MediaTypeJSON},
		"id":         {"a", "b"},
		"extra":      {"ignored"},
	}
	var actual documentsQuery

	// Act
	err := req.NewParser().ParseQueryParams(params, &actual)

	// Assert
	require.Nil(t, err)
	require.Equal(t, documentsQuery{
		Collection: "documents",
		Limit:      10,
		Format:     rest.MediaTypeJSON,
		IDs:        []string{"a", "b"},
	}, actual)
}
