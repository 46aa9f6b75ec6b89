package resp

import (
	"net/http"

	"github.com/xy-planning-network/rest/http/template"
	"github.com/xy-planning-network/rest/logger"
)

// newLogContext structures a logger.LogContext from the parts of a response that are set.
// Data is kept only when it is a map, such as the template.Vars a view renders with.
func newLogContext(r *http.Request, err error, data any) *logger.LogContext {
	lc := &logger.LogContext{Request: r, Error: err}
	switch d := data.(type) {
	case template.Vars:
		lc.Data = d
	case map[string]any:
		lc.Data = d
	}

	if lc.Request == nil && lc.Error == nil && lc.Data == nil {
		return nil
	}

	return lc
}
