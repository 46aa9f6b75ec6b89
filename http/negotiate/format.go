package negotiate

import (
	"net/http"
)

// A FormatHandler pairs a media type with the handler producing that representation.
type FormatHandler struct {
	Type    string
	Handler http.HandlerFunc
}

// Formats is an ordered set of FormatHandler; order breaks ties between equally acceptable media types.
type Formats []FormatHandler

// Add appends a FormatHandler, replacing the handler of an already registered media type in place.
func (fs Formats) Add(typ string, h http.HandlerFunc) Formats {
	for i := range fs {
		if fs[i].Type == typ {
			fs[i].Handler = h
			return fs
		}
	}

	return append(fs, FormatHandler{Type: typ, Handler: h})
}

// Types lists the media types in registration order.
func (fs Formats) Types() []string {
	types := make([]string, len(fs))
	for i, f := range fs {
		types[i] = f.Type
	}

	return types
}

// Format responds to the request with the handler registered for the media type the request prefers,
// returning that media type.
//
// When no media type is acceptable, def handles the request and Format returns an empty string.
// If def is nil, Format responds with http.StatusNotAcceptable.
//
// Format adds "Accept" to the Vary response header.
func Format(w http.ResponseWriter, r *http.Request, fs Formats, def http.HandlerFunc) string {
	w.Header().Add("Vary", "Accept")

	chosen := Accepts(r, fs.Types()...)
	for _, f := range fs {
		if f.Type == chosen && f.Handler != nil {
			f.Handler(w, r)
			return chosen
		}
	}

	if def == nil {
		http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
		return ""
	}

	def(w, r)
	return ""
}
