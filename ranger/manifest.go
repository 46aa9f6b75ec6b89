package ranger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xy-planning-network/rest"
	"gopkg.in/yaml.v3"
)

// A Manifest lists the resources a Ranger serves from its docstore.
//
//	resources:
//	  - path: /documents/{id}
//	    collection: documents
//	    json: true
//	    html: route
type Manifest struct {
	Resources []ResourceSpec `yaml:"resources"`
}

// A ResourceSpec describes one route serving a docstore collection.
//
// A Path with an {id} variable serves one document; any other Path lists the collection.
type ResourceSpec struct {
	Path                  string        `yaml:"path"`
	Collection            string        `yaml:"collection"`
	JSON                  rest.Handling `yaml:"json"`
	HTML                  rest.Handling `yaml:"html"`
	Template              string        `yaml:"template"`
	TemplateNeedsResource bool          `yaml:"templateNeedsResource"`
}

// LoadManifest reads and validates the Manifest at path.
func LoadManifest(path string) (Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: cannot read manifest: %w", rest.ErrBadConfig, err)
	}

	return ParseManifest(bytes.NewReader(b))
}

// ParseManifest decodes and validates a YAML Manifest.
func ParseManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("%w: cannot decode manifest: %w", rest.ErrBadConfig, err)
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}

	return m, nil
}

// Validate reports every ResourceSpec missing a path or collection
// or serving no representation at all.
func (m Manifest) Validate() error {
	var errs []error
	for i, spec := range m.Resources {
		if !strings.HasPrefix(spec.Path, "/") {
			errs = append(errs, fmt.Errorf("resources[%d]: path %q must begin with /", i, spec.Path))
		}

		if strings.TrimSpace(spec.Collection) == "" {
			errs = append(errs, fmt.Errorf("resources[%d]: collection is required", i))
		}

		if spec.JSON == rest.Disabled && spec.HTML == rest.Disabled {
			errs = append(errs, fmt.Errorf("resources[%d]: json and html are both false", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", rest.ErrBadConfig, errors.Join(errs...))
	}

	return nil
}

// HasID reports whether Path addresses a single document.
func (s ResourceSpec) HasID() bool { return strings.Contains(s.Path, "{id}") }
