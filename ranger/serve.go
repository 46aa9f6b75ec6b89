package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/rest"
	"github.com/xy-planning-network/rest/http/resource"
	"github.com/xy-planning-network/rest/http/router"
	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/internal/docstore"
)

// Serve registers a GET route for every resource in m, in order,
// serving documents from the Ranger's docstore.
func (r *Ranger) Serve(m Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for _, spec := range m.Resources {
		cfg := resource.Config{
			Get:                   r.getter(spec),
			JSON:                  spec.JSON,
			HTML:                  spec.HTML,
			Template:              spec.Template,
			TemplateNeedsResource: spec.TemplateNeedsResource,
			UpdateVars:            updateVars(spec),
		}

		r.Handle(router.Route{
			Path:        spec.Path,
			Method:      http.MethodGet,
			Middlewares: r.factory.MakeHandler(cfg),
		})

		r.logger.Debug(fmt.Sprintf("serving %s from %s", spec.Path, spec.Collection), nil)
	}

	return nil
}

// getter fetches the document the {id} path variable names,
// or lists the collection when spec.Path has none.
func (r *Ranger) getter(spec ResourceSpec) resource.GetFunc {
	if !spec.HasID() {
		return func(_ http.ResponseWriter, req *http.Request) (any, error) {
			return r.store.List(req.Context(), spec.Collection)
		}
	}

	return func(_ http.ResponseWriter, req *http.Request) (any, error) {
		id := router.Vars(req)["id"]
		doc, err := r.store.Get(req.Context(), spec.Collection, id)
		if errors.Is(err, rest.ErrNotExist) {
			return nil, &rest.Error{
				Message:        fmt.Sprintf("%s %s not found", spec.Collection, id),
				Kind:           rest.KindNotFound,
				Public:         true,
				HTTPStatusCode: http.StatusNotFound,
				Err:            err,
			}
		}

		if err != nil {
			return nil, err
		}

		return doc, nil
	}
}

// updateVars exposes the fetched resource to the view as "resource"
// and titles the page after it.
func updateVars(spec ResourceSpec) resource.UpdateVarsFunc {
	return func(_ context.Context, res any, vars template.Vars) error {
		vars["resource"] = res
		vars["title"] = spec.Collection
		if doc, ok := res.(docstore.Document); ok {
			vars["title"] = spec.Collection + " " + doc.ID
		}

		return nil
	}
}
