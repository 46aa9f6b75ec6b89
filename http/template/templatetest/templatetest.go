/*
Package templatetest builds template parsers over in-memory views,
sparing unit tests a testdata/ directory when rendering HTML.
*/
package templatetest

import (
	"io/fs"
	"testing/fstest"

	"github.com/xy-planning-network/rest/http/template"
)

// Files maps view names to their source.
type Files map[string]string

// FS returns a read-only fs.FS holding the views.
func (f Files) FS() fs.FS {
	mfs := make(fstest.MapFS, len(f))
	for name, src := range f {
		mfs[name] = &fstest.MapFile{Data: []byte(src), Mode: 0o444}
	}

	return mfs
}

// NewParser constructs a *template.Parse rendering the views.
func NewParser(views Files, opts ...template.ParserOptFn) *template.Parse {
	return template.NewParser([]fs.FS{views.FS()}, opts...)
}
