package ranger

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/resource"
	"github.com/xy-planning-network/rest/http/resp"
	"github.com/xy-planning-network/rest/http/router"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/logger"
)

const (
	DefaultHost = "localhost"
	DefaultPort = ":3000"

	defaultTmplDir = "tmpl"
)

//go:embed tmpl/*
var tmpls embed.FS

// defaultLogger constructs a logger.Logger at the configured level,
// shipping errors to Sentry when SENTRY_DSN is set.
func defaultLogger(cfg Config) logger.Logger {
	opts := []logger.LoggerOptFn{
		logger.WithEnv(cfg.Env.String()),
		logger.WithLevel(cfg.LogLevel),
	}

	if cfg.SentryDSN != "" {
		opts = append(opts, logger.WithSentryDSN(cfg.SentryDSN))
	}

	return logger.New(opts...)
}

// defaultParser constructs a *template.Parse looking up views first in dir,
// then in the views this package embeds.
//
// defaultParser makes available these functions in an HTML template,
// in addition to those the *resp.Responder adds:
//
//   - "env"
//   - "isDevelopment"
//   - "isProduction"
func defaultParser(env rest.Environment, dir string) (*template.Parse, error) {
	embedded, err := fs.Sub(tmpls, defaultTmplDir)
	if err != nil {
		return nil, err
	}

	dirs := make([]fs.FS, 0, 2)
	if dir != "" {
		dirs = append(dirs, os.DirFS(dir))
	}
	dirs = append(dirs, embedded)

	return template.NewParser(
		dirs,
		template.WithFn(template.Env(env)),
		template.WithFn("isDevelopment", env.IsDevelopment),
		template.WithFn("isProduction", env.IsProduction),
	), nil
}

// defaultResponder configures the *resp.Responder resource handlers respond with.
func defaultResponder(l logger.Logger, rootURL *url.URL, p template.Parser) *resp.Responder {
	return resp.NewResponder(
		resp.WithLogger(l),
		resp.WithParser(p),
		resp.WithRootUrl(rootURL.String()),
	)
}

// defaultFactory constructs the *resource.Factory building manifest resource handlers.
func defaultFactory(env rest.Environment, rootURL *url.URL, l logger.Logger, d *resp.Responder) *resource.Factory {
	return resource.NewFactory(
		resource.WithLogger(l),
		resource.WithResponder(d),
		resource.WithVars(template.DefaultVars(env, rootURL)),
	)
}

// defaultRouter constructs a *router.Router to be used by the web server.
//
// Every request is tagged with an ID and IP address, measured, logged,
// rate limited when RATE_LIMIT is set and, when BASE_URL is set, checked against CORS.
// Any {id} path variable must be a valid resource ID.
func defaultRouter(cfg Config, l logger.Logger, d *resp.Responder, mws []middleware.Adapter) *router.Router {
	var visitors *middleware.Visitors
	if cfg.RateLimit > 0 {
		visitors = middleware.NewVisitors(cfg.RateLimit, cfg.RateBurst)
	}

	rt := router.New(cfg.Env, router.WithErrorHandler(d.ErrorHandler))
	rt.OnEveryRequest(
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.Metrics(),
		middleware.LogRequest(l),
		middleware.RateLimit(visitors),
		middleware.CORS(cfg.BaseURL),
	)
	rt.OnEveryRequest(mws...)
	rt.Param("id", resource.IDParam)
	rt.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		d.ErrorHandler(w, r, &rest.Error{
			Message:        fmt.Sprintf("%s not found", r.URL.Path),
			Kind:           rest.KindNotFound,
			Public:         true,
			HTTPStatusCode: http.StatusNotFound,
			Err:            rest.ErrNotExist,
		})
	})

	return rt
}

// defaultServer constructs a default *http.Server.
func defaultServer(ctx context.Context, cfg Config) *http.Server {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
