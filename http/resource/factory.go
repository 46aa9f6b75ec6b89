package resource

import (
	"fmt"
	"net/http"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/negotiate"
	"github.com/xy-planning-network/rest/http/req"
	"github.com/xy-planning-network/rest/http/resp"
	"github.com/xy-planning-network/rest/http/router"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/logger"
)

// A Factory builds resource handlers sharing the same collaborators.
// A Factory holds no per-request state; one may be shared across routes and goroutines.
type Factory struct {
	logger    logger.Logger
	parser    *req.Parser
	responder *resp.Responder
	vars      template.VarsFunc
}

// NewFactory constructs a *Factory with the provided options.
//
// Collaborators not set by an option default to:
//   - logger.New()
//   - req.NewParser()
//   - a *resp.Responder logging through the Factory's logger and rendering no templates
//   - a template.VarsFunc returning empty Vars
func NewFactory(opts ...FactoryOptFn) *Factory {
	f := new(Factory)
	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = logger.New()
	}

	if f.parser == nil {
		f.parser = req.NewParser()
	}

	if f.responder == nil {
		f.responder = resp.NewResponder(resp.WithLogger(f.logger))
	}

	if f.vars == nil {
		f.vars = func(*http.Request) (template.Vars, error) { return template.Vars{}, nil }
	}

	return f
}

// MakeHandler returns the middlewares serving the resource cfg describes, in the order to attach them:
// validation, if cfg sets Validate, then negotiation.
//
// Each call returns independent middlewares; nothing is read or written until a request is handled.
func (f *Factory) MakeHandler(cfg Config) []middleware.Adapter {
	f.warnInvalid("JSON", cfg.JSON)
	f.warnInvalid("HTML", cfg.HTML)

	cfg = cfg.withDefaults()

	mws := make([]middleware.Adapter, 0, 2)
	if cfg.Validate != nil {
		mws = append(mws, f.parser.Validate(*cfg.Validate))
	}

	return append(mws, f.negotiation(cfg))
}

// LinkedDataHandler is MakeHandler serving only linked data:
// the JSON family is enabled and the HTML family deferred, whatever cfg sets.
func (f *Factory) LinkedDataHandler(cfg Config) []middleware.Adapter {
	cfg.JSON = rest.Enabled
	cfg.HTML = rest.Deferred
	return f.MakeHandler(cfg)
}

// warnInvalid logs a Handling that is set but not valid.
func (f *Factory) warnInvalid(family string, h rest.Handling) {
	if h == 0 || h.Valid() == nil {
		return
	}

	f.logger.Warn(
		fmt.Sprintf("invalid %s handling %d, using default", family, h),
		&logger.LogContext{Caller: logger.CurrentCaller(), Data: map[string]any{"handling": int(h)}},
	)
}

// negotiation builds the middleware dispatching a request to the producer of the media type it prefers.
// The middleware never calls the handler it wraps.
func (f *Factory) negotiation(cfg Config) middleware.Adapter {
	acceptable := cfg.acceptable()

	var fs negotiate.Formats
	switch cfg.JSON {
	case rest.Enabled:
		fs = fs.Add(rest.MediaTypeJSONLD, f.jsonProducer(cfg.Get, rest.MediaTypeJSONLD))
		fs = fs.Add(rest.MediaTypeJSON, f.jsonProducer(cfg.Get, rest.MediaTypeJSON))
	case rest.Deferred:
		fs = fs.Add(rest.MediaTypeJSONLD, deferProducer(rest.MediaTypeJSONLD))
		fs = fs.Add(rest.MediaTypeJSON, deferProducer(rest.MediaTypeJSON))
	}

	switch cfg.HTML {
	case rest.Enabled:
		fs = fs.Add(rest.MediaTypeHTML, f.htmlProducer(cfg))
	case rest.Deferred:
		fs = fs.Add(rest.MediaTypeHTML, deferProducer(rest.MediaTypeHTML))
	}

	reject := func(w http.ResponseWriter, r *http.Request) {
		observe(negotiate.Rejected, "")
		router.Fail(w, r, rest.NewNotAcceptableError(acceptable))
	}

	return func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			negotiate.Format(w, r, fs, reject)
		})
	}
}

// jsonProducer writes the resource get fetches as JSON with the media type as its "Content-Type".
func (f *Factory) jsonProducer(get GetFunc, mediaType string) http.HandlerFunc {
	contentType := mediaType + "; charset=UTF-8"

	return func(w http.ResponseWriter, r *http.Request) {
		observe(negotiate.Handled, mediaType)

		if get == nil {
			if err := f.responder.NoContent(w, r); err != nil {
				router.Fail(w, r, err)
			}

			return
		}

		res, err := get(w, r)
		if err != nil {
			router.Fail(w, r, err)
			return
		}

		if err := f.responder.Json(w, r, resp.Data(res), resp.ContentType(contentType)); err != nil {
			router.Fail(w, r, err)
		}
	}
}

// htmlProducer renders cfg.Template with the default Vars,
// updated from the resource when cfg.TemplateNeedsResource is set.
func (f *Factory) htmlProducer(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observe(negotiate.Handled, rest.MediaTypeHTML)

		vars, err := f.vars(r)
		if err != nil {
			router.Fail(w, r, fmt.Errorf("cannot get view vars: %w", err))
			return
		}

		if vars == nil {
			vars = template.Vars{}
		}

		if cfg.TemplateNeedsResource {
			if cfg.Get == nil {
				router.Fail(w, r, fmt.Errorf("%w: %s needs a resource but no GetFunc is set", rest.ErrBadConfig, cfg.Template))
				return
			}

			res, err := cfg.Get(w, r)
			if err != nil {
				router.Fail(w, r, err)
				return
			}

			if cfg.UpdateVars != nil {
				if err := cfg.UpdateVars(r.Context(), res, vars); err != nil {
					router.Fail(w, r, err)
					return
				}
			}
		}

		if err := f.responder.Html(w, r, resp.Tmpls(cfg.Template), resp.Data(vars)); err != nil {
			router.Fail(w, r, err)
		}
	}
}

// deferProducer hands the request to the next matching route.
func deferProducer(mediaType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observe(negotiate.Deferred, mediaType)
		router.NextRoute(w, r)
	}
}
