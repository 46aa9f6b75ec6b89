package resp

import (
	"net/url"

	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/logger"
)

// ResponderOptFn configures a Responder built by NewResponder.
type ResponderOptFn func(*Responder)

// WithLogger routes the Responder's log lines through l.
// NewResponder falls back to logger.New.
func WithLogger(l logger.Logger) ResponderOptFn {
	return func(rs *Responder) { rs.logger = l }
}

// WithParser hands Html the template.Parser it builds pages with.
// Without one, Html fails with ErrBadConfig.
func WithParser(p template.Parser) ResponderOptFn {
	return func(rs *Responder) { rs.parser = p }
}

// WithRootUrl sets where ToRoot redirects and what the rootUrl template function returns.
// A raw URL that url.ParseRequestURI rejects leaves the root at "/".
func WithRootUrl(raw string) ResponderOptFn {
	root, err := url.ParseRequestURI(raw)
	if err != nil {
		root = &url.URL{Path: "/"}
	}

	return func(rs *Responder) { rs.rootUrl = root }
}
