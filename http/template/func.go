package template

import (
	html "html/template"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/rest"
)

// AddFn registers fn under name for every later Parse; a blank name is a no-op.
func (p *Parse) AddFn(name string, fn any) Parser {
	if name == "" {
		return p
	}

	p.mu.Lock()
	if p.fns == nil {
		p.fns = make(html.FuncMap)
	}
	p.fns[name] = fn
	p.mu.Unlock()

	return p
}

// The constructors below return a name and function pair so callers can write
// p.AddFn(template.Env(rest.Production)).

// Env renders the deployment environment, e.g. data-env="{{ env }}".
func Env(e rest.Environment) (string, func() string) {
	name := e.String()
	return "env", func() string { return name }
}

// Nonce renders a fresh random value per call, suited to CSP script nonces.
func Nonce() (string, func() string) {
	return "nonce", uuid.NewString
}

// RootUrl renders the application's base URL, or "" for a nil u.
func RootUrl(u *url.URL) (string, func() string) {
	var root string
	if u != nil {
		root = u.String()
	}

	return "rootUrl", func() string { return root }
}
