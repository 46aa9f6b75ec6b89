package resource

import (
	"github.com/xy-planning-network/rest/http/req"
	"github.com/xy-planning-network/rest/http/resp"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/logger"
)

// A FactoryOptFn configures a *Factory when constructing it.
type FactoryOptFn func(*Factory)

// WithLogger sets the logger.Logger the Factory logs through.
func WithLogger(l logger.Logger) FactoryOptFn {
	return func(f *Factory) {
		f.logger = l
	}
}

// WithParser sets the *req.Parser validating requests when a Config sets Validate.
func WithParser(p *req.Parser) FactoryOptFn {
	return func(f *Factory) {
		f.parser = p
	}
}

// WithResponder sets the *resp.Responder writing JSON and HTML responses.
func WithResponder(d *resp.Responder) FactoryOptFn {
	return func(f *Factory) {
		f.responder = d
	}
}

// WithVars sets the template.VarsFunc gathering the default variables views render with.
func WithVars(fn template.VarsFunc) FactoryOptFn {
	return func(f *Factory) {
		f.vars = fn
	}
}
