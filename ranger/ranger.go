package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/resource"
	"github.com/xy-planning-network/rest/http/resp"
	"github.com/xy-planning-network/rest/http/router"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/internal/docstore"
	"github.com/xy-planning-network/rest/logger"
)

// A Ranger manages and exposes all components of a rest app to one another.
type Ranger struct {
	*router.Router

	cfg       Config
	ctx       context.Context
	factory   *resource.Factory
	hasCfg    bool
	logger    logger.Logger
	mws       []middleware.Adapter
	parser    template.Parser
	responder *resp.Responder
	rootURL   *url.URL
	srv       *http.Server
	store     docstore.Store
}

// New assembles a Ranger from opts.
//
// Without WithConfig, New reads its Config from environment variables.
// Followups run once the Config is resolved,
// after which every component no option set is constructed from the Config.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if !r.hasCfg {
		cfg, err := NewConfig()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
		}

		r.cfg = cfg
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
		}
	}

	if err := r.setup(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}

	return r, nil
}

// setup constructs, in dependency order, every component no RangerOption set.
func (r *Ranger) setup() error {
	var err error
	if r.ctx == nil {
		r.ctx = context.Background()
	}

	if r.rootURL, err = r.cfg.RootURL(); err != nil {
		return err
	}

	if r.logger == nil {
		r.logger = defaultLogger(r.cfg)
	}
	r.logger.Debug(fmt.Sprintf("using env %s", r.cfg.Env), nil)

	if r.parser == nil {
		if r.parser, err = defaultParser(r.cfg.Env, r.cfg.TemplateDir); err != nil {
			return err
		}
	}

	if r.responder == nil {
		r.responder = defaultResponder(r.logger, r.rootURL, r.parser)
	}

	if r.factory == nil {
		r.factory = defaultFactory(r.cfg.Env, r.rootURL, r.logger, r.responder)
	}

	if r.store == nil {
		if r.store, err = docstore.Open(r.ctx, r.cfg.Database.Driver, r.cfg.Database.URL); err != nil {
			return err
		}
		r.logger.Debug(fmt.Sprintf("using %s docstore", r.cfg.Database.Driver), nil)
	}

	r.Router = defaultRouter(r.cfg, r.logger, r.responder, r.mws)

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, r.cfg)
	}
	r.srv.Handler = r.Router

	return nil
}

func (r *Ranger) EmitConfig() Config             { return r.cfg }
func (r *Ranger) EmitFactory() *resource.Factory { return r.factory }
func (r *Ranger) EmitLogger() logger.Logger      { return r.logger }
func (r *Ranger) EmitResponder() *resp.Responder { return r.responder }
func (r *Ranger) EmitStore() docstore.Store      { return r.store }

// Guide serves until one of these signals arrives or Shutdown is called:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ctx, cancel := context.WithCancel(r.ctx)
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.logger.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			cancel()
		case <-ctx.Done():
		}
	}()

	go func() {
		r.logger.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("listening on %s: %w", r.srv.Addr, err)
			r.logger.Error(err.Error(), nil)
			cancel()
		}
	}()

	<-ctx.Done()
	return r.Shutdown()
}

// Shutdown shuts down the web server and closes the docstore.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r.logger.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if err != nil {
		err = fmt.Errorf("could not shutdown: %w", err)
	}

	if cerr := r.store.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("could not close docstore: %w", cerr))
	}

	if err != nil {
		return err
	}

	r.logger.Info("web server shutdown successfully", nil)
	return nil
}
