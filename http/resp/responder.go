package resp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sync"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/logger"
)

const (
	htmlContentType = "text/html; charset=UTF-8"
	jsonContentType = "application/json; charset=UTF-8"

	responderFrames = 0
)

// Responder writes HTML, JSON, redirect and empty responses.
// One Responder serves a whole application; per-request details arrive as Fn options.
type Responder struct {
	logger  logger.Logger
	parser  template.Parser
	pool    *sync.Pool // *bytes.Buffer bodies are rendered into before writing
	rootUrl *url.URL
}

// NewResponder applies opts and registers the nonce and rootUrl template functions on the parser.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool:    &sync.Pool{New: func() any { return new(bytes.Buffer) }},
		rootUrl: &url.URL{Path: "/"},
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	if d.parser != nil {
		d.parser.AddFn(template.Nonce())
		d.parser.AddFn(template.RootUrl(d.rootUrl))
	}

	return d
}

// Logger exposes the logger.Logger the Responder logs through.
func (rs *Responder) Logger() logger.Logger { return rs.logger }

// Err logs err and falls back to http.Error with a bare status text.
// Reach for it only when neither Html nor Json can respond.
func (rs *Responder) Err(w http.ResponseWriter, r *http.Request, err error, opts ...Fn) {
	rr, nested := rs.do(w, r, append(opts, Err(err))...)
	if errors.Is(nested, ErrDone) {
		return
	}

	if nested != nil {
		err = fmt.Errorf("%w: %s", err, nested)
	}

	code := http.StatusInternalServerError
	if rr != nil && rr.code != 0 {
		code = rr.code
	}

	http.Error(w, http.StatusText(code), code)
}

// errorBody is the JSON representation of an error sent to clients.
type errorBody struct {
	Message string         `json:"message"`
	Type    string         `json:"type,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorHandler responds to a request that failed with err.
//
// A public *rest.Error responds with its status code and a JSON body like:
//
//	{
//		"message": "Requested content types not acceptable.",
//		"type": "NotAcceptable",
//		"details": {"acceptable": ["text/html"]}
//	}
//
// Any other error responds with the status code it carries, http.StatusInternalServerError by default,
// and only that status' text as the message.
// Server errors are logged at the error level.
//
// Nothing is written when the request's context ended.
func (rs *Responder) ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrDone) {
		rs.logger.Debug("request ended before responding", newLogContext(r, err, nil))
		return
	}

	code := rest.ErrorStatus(err)
	body := errorBody{Message: http.StatusText(code)}

	var re *rest.Error
	if errors.As(err, &re) && re.Public {
		body = errorBody{Message: re.Error(), Type: string(re.Kind), Details: re.Details}
	}

	if code >= http.StatusInternalServerError {
		rs.logger.Error(err.Error(), newLogContext(r, err, nil))
	} else {
		rs.logger.Debug(err.Error(), newLogContext(r, err, nil))
	}

	if err := rs.Json(w, r, Code(code), Data(body)); err != nil && !errors.Is(err, ErrDone) {
		rs.Err(w, r, err)
	}
}

// Html parses the Tmpls set, executes the first with Data and writes it with status 200 unless Code says otherwise.
// The page is rendered in full before anything is written, so an error leaves w untouched.
func (rs *Responder) Html(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := rs.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rs.parser == nil {
		return fmt.Errorf("%w: no parser configured", ErrBadConfig)
	}

	if len(rr.tmpls) == 0 {
		return fmt.Errorf("%w: no templates to render", ErrMissingData)
	}

	tmpl, err := rs.parser.Parse(rr.tmpls...)
	if err != nil {
		return fmt.Errorf("cannot parse: %w", err)
	}

	b := rs.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer rs.pool.Put(b)

	if err := tmpl.ExecuteTemplate(b, path.Base(rr.tmpls[0]), rr.data); err != nil {
		return fmt.Errorf("cannot execute %s: %w", rr.tmpls[0], err)
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// Json responds with the value set by Data encoded as JSON.
// No envelope wraps that value.
//
// The default response status code is 200
// and the default "Content-Type" is "application/json; charset=UTF-8".
// ContentType overrides the latter.
func (rs *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := rs.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	if rr.contentType == "" {
		rr.contentType = jsonContentType
	}

	b := rs.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer rs.pool.Put(b)

	if err := json.NewEncoder(b).Encode(rr.data); err != nil {
		return fmt.Errorf("cannot encode %T: %w", rr.data, err)
	}

	w.Header().Set("Content-Type", rr.contentType)
	w.WriteHeader(rr.code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}

// NoContent responds with http.StatusNoContent and an empty body.
func (rs *Responder) NoContent(w http.ResponseWriter, r *http.Request) error {
	if err := r.Context().Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrDone, err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// Redirect sends the client to the URL set by Url, or the root URL without one.
// A 3xx Code is kept as is; 4xx becomes 303, 5xx becomes 307 and anything else 302.
func (rs *Responder) Redirect(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := rs.do(w, r, append([]Fn{ToRoot()}, opts...)...)
	if err != nil {
		return err
	}

	if rr.url == nil {
		return fmt.Errorf("%w: cannot redirect, no resp.url", ErrMissingData)
	}

	switch {
	case rr.code >= http.StatusMultipleChoices && rr.code <= http.StatusPermanentRedirect:
		// already a redirect
	case rr.code >= http.StatusBadRequest && rr.code < http.StatusInternalServerError:
		rr.code = http.StatusSeeOther
	case rr.code >= http.StatusInternalServerError:
		rr.code = http.StatusTemporaryRedirect
	default:
		rr.code = http.StatusFound
	}

	http.Redirect(w, r, rr.url.String(), rr.code)
	return nil
}

// do builds a *Response from opts.
// Options that fail, typically Param before Url, are retried until a pass leaves the failures unchanged;
// the errors of the final pass are joined and returned.
func (rs *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{w: w, r: r}

	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDone, err)
	}

	redos := rs.redo(resp, opts...)
	for len(redos) > 0 {
		if err := r.Context().Err(); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDone, err)
		}

		n := len(redos)
		redos = rs.redo(resp, redos...)
		if len(redos) == n {
			break
		}
	}

	var err error
	for _, opt := range redos {
		err = errors.Join(err, opt(*rs, resp))
	}

	return resp, err
}

// redo returns the opts that still fail against r.
func (rs *Responder) redo(r *Response, opts ...Fn) []Fn {
	bad := make([]Fn, 0)
	for _, opt := range opts {
		if err := opt(*rs, r); err != nil {
			bad = append(bad, opt)
		}
	}

	return bad
}
