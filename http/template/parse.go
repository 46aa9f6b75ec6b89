package template

import (
	"fmt"
	html "html/template"
	"io/fs"
	"os"
	"path"
	"sync"
)

// Parser is the interface for parsing HTML templates with the functions provided.
type Parser interface {
	AddFn(name string, fn any) Parser
	Parse(fps ...string) (*html.Template, error)
}

// Parse implements Parser over a stack of fs.FS.
type Parse struct {
	fs fs.FS

	mu  sync.RWMutex
	fns html.FuncMap
}

// NewParser constructs a Parse looking for templates in dirs, earlier ones first.
// If dirs is empty, the current working directory is used.
func NewParser(dirs []fs.FS, opts ...ParserOptFn) *Parse {
	layers := make([]fs.FS, 0, len(dirs))
	for _, d := range dirs {
		if d != nil {
			layers = append(layers, d)
		}
	}

	if len(layers) == 0 {
		layers = append(layers, os.DirFS("."))
	}

	p := &Parse{
		fs:  &mergeFS{cache: make(map[string]fs.FS), layers: layers},
		fns: make(html.FuncMap),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses files found in the *Parse.fs with those functions provided previously.
// The returned template is named after the base of the first file path.
func (p *Parse) Parse(fps ...string) (*html.Template, error) {
	files := make([]string, 0, len(fps))
	for _, fp := range fps {
		if fp != "" {
			files = append(files, fp)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFiles)
	}

	p.mu.RLock()
	fns := make(html.FuncMap, len(p.fns))
	for k, v := range p.fns {
		fns[k] = v
	}
	p.mu.RUnlock()

	tmpl, err := html.New(path.Base(files[0])).Funcs(fns).ParseFS(p.fs, files...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	return tmpl, nil
}
