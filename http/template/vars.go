package template

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/xy-planning-network/rest"
)

// Vars are the values a view renders with.
type Vars map[string]any

// A VarsFunc gathers the default Vars for the request.
type VarsFunc func(r *http.Request) (Vars, error)

// DefaultVars returns a VarsFunc setting these keys:
//
//	env:       the environment
//	rootUrl:   rootURL, or an empty string
//	requestId: the request ID, when one was set
//	path:      the request's URL path
//	nonce:     a fresh uuid for inline scripts
func DefaultVars(env rest.Environment, rootURL *url.URL) VarsFunc {
	var root string
	if rootURL != nil {
		root = rootURL.String()
	}

	return func(r *http.Request) (Vars, error) {
		v := Vars{
			"env":     env.String(),
			"rootUrl": root,
			"path":    r.URL.Path,
			"nonce":   uuid.NewString(),
		}

		if id, ok := r.Context().Value(rest.RequestIDKey).(string); ok && id != "" {
			v["requestId"] = id
		}

		return v, nil
	}
}
