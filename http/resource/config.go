package resource

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/req"
	"github.com/xy-planning-network/rest/http/template"
)

// DefaultTemplate is rendered by the HTML family when Config sets no Template.
const DefaultTemplate = "main.html"

// A GetFunc fetches the resource a request addresses.
type GetFunc func(w http.ResponseWriter, r *http.Request) (any, error)

// An UpdateVarsFunc adds what a view needs from the resource to vars.
type UpdateVarsFunc func(ctx context.Context, resource any, vars template.Vars) error

// Config describes how a route serves a resource.
type Config struct {
	// Validate, when set, parses and validates the request before negotiating.
	Validate *req.Schema

	// Get fetches the resource.
	// Without it, the JSON family responds with http.StatusNoContent.
	Get GetFunc

	// JSON handles "application/ld+json" and "application/json". Defaults to rest.Enabled.
	JSON rest.Handling

	// HTML handles "text/html". Defaults to rest.Deferred.
	HTML rest.Handling

	// Template names the view rendered when HTML is rest.Enabled. Defaults to DefaultTemplate.
	Template string

	// TemplateNeedsResource calls Get before rendering Template.
	TemplateNeedsResource bool

	// UpdateVars runs after Get when TemplateNeedsResource is set.
	UpdateVars UpdateVarsFunc
}

// withDefaults fills in the fields left unset.
func (c Config) withDefaults() Config {
	c.JSON = c.JSON.Or(rest.Enabled)
	c.HTML = c.HTML.Or(rest.Deferred)
	if c.Template == "" {
		c.Template = DefaultTemplate
	}

	return c
}

// acceptable lists, in registration order, the media types negotiation considers.
func (c Config) acceptable() []string {
	types := make([]string, 0, 3)
	if c.JSON != rest.Disabled {
		types = append(types, rest.MediaTypeJSONLD, rest.MediaTypeJSON)
	}

	if c.HTML != rest.Disabled {
		types = append(types, rest.MediaTypeHTML)
	}

	return types
}
