package ranger

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/middleware"
	"github.com/xy-planning-network/rest/http/resp"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/internal/docstore"
	"github.com/xy-planning-network/rest/logger"
)

// RangerOption sets a piece of a Ranger.
// Options touching Config fields return an OptFollowup instead,
// which New runs after the Config is read, so the option wins over the environment.
type RangerOption func(rng *Ranger) (OptFollowup, error)

// OptFollowup finishes a RangerOption once the Config is resolved.
type OptFollowup func() error

// WithConfig uses cfg instead of reading one from environment variables.
func WithConfig(cfg Config) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.cfg = cfg
		rng.hasCfg = true

		return nil, nil
	}
}

// WithContext sets the base context.Context of every request the web server handles.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx

		return nil, nil
	}
}

// WithEnv constructs a followup option that, when called,
// overrides the Environment the Config sets.
func WithEnv(env rest.Environment) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if err := env.Valid(); err != nil {
			return nil, err
		}

		return func() error {
			rng.cfg.Env = env
			return nil
		}, nil
	}
}

// WithLogger exposes the provided logger.Logger to the app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.logger = l

		return nil, nil
	}
}

// WithMiddlewares appends middlewares to those the Router calls on every request.
func WithMiddlewares(mws ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.mws = append(rng.mws, mws...)

		return nil, nil
	}
}

// WithParser renders HTML with p instead of the default template.Parser.
func WithParser(p template.Parser) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.parser = p

		return nil, nil
	}
}

// WithResponder exposes the *resp.Responder to the app.
func WithResponder(d *resp.Responder) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.responder = d

		return nil, nil
	}
}

// WithServer exposes the *http.Server to the app.
// The Ranger sets its Handler.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.srv = s

		return nil, nil
	}
}

// WithStore serves manifest resources from store instead of the one DATABASE_* configures.
//
// WithStore assumes a connection has already been established.
func WithStore(store docstore.Store) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.store = store

		return nil, nil
	}
}

// WithTemplateDir constructs a followup option that, when called,
// overrides the directory TEMPLATE_DIR sets.
func WithTemplateDir(dir string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.cfg.TemplateDir = dir
			return nil
		}, nil
	}
}
