package resp

import (
	"fmt"
	"net/http"
	"net/url"
)

// Fn shapes one Response; the Responder passed in is read-only configuration.
type Fn func(Responder, *Response) error

// Response collects what a Responder method writes once every Fn has run.
type Response struct {
	w           http.ResponseWriter
	r           *http.Request
	code        int
	contentType string
	data        any
	tmpls       []string
	url         *url.URL
}

// Code sets the status code; values outside 100-999 are ErrInvalid.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		if c < 100 || c > 999 {
			return fmt.Errorf("%w: status code %d", ErrInvalid, c)
		}

		r.code = c
		return nil
	}
}

// ContentType replaces the JSON media type, e.g. with a vendor type the client negotiated.
func ContentType(ct string) Fn {
	return func(_ Responder, r *Response) error {
		r.contentType = ct
		return nil
	}
}

// Data is the template data for Html and the encoded value for Json.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err logs e, when non-nil, and sets a 500.
func Err(e error) Fn {
	return func(d Responder, r *Response) error {
		if e != nil {
			d.logger.Error(e.Error(), newLogContext(r.r, e, r.data))
		}

		return Code(http.StatusInternalServerError)(d, r)
	}
}

// Param adds key=val to the redirect URL's query; it fails until Url or ToRoot ran.
func Param(key, val string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: no redirect URL for %s", ErrMissingData, key)
		}

		q := r.url.Query()
		q.Add(key, val)
		r.url.RawQuery = q.Encode()
		return nil
	}
}

// Tmpls adds templates for Html; the first one added is executed.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// ToRoot redirects to a copy of the Responder's root URL.
func ToRoot() Fn {
	return func(d Responder, r *Response) error {
		if d.rootUrl == nil {
			return fmt.Errorf("%w: no root URL", ErrBadConfig)
		}

		u := *d.rootUrl
		r.url = &u
		return nil
	}
}

// Url sets the redirect destination.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: redirect URL %q: %v", ErrInvalid, u, err)
		}

		r.url = parsed
		return nil
	}
}
