package rest

const (
	MediaTypeHTML   = "text/html"
	MediaTypeJSON   = "application/json"
	MediaTypeJSONLD = "application/ld+json"
)

// JSONLDTypes lists the media types served as JSON-LD, in order of preference.
func JSONLDTypes() []string { return []string{MediaTypeJSONLD, MediaTypeJSON} }

// LinkedDataTypes lists the media types served as linked data, in order of preference.
//
// TODO(dlk): include n-quads once a serializer for it exists.
func LinkedDataTypes() []string { return []string{MediaTypeJSONLD, MediaTypeJSON} }

// HTMLTypes lists the media types served as HTML.
func HTMLTypes() []string { return []string{MediaTypeHTML} }

// AcceptableTypes lists every media type a resource can serve by default:
// HTML first, followed by linked data.
func AcceptableTypes() []string { return append(HTMLTypes(), LinkedDataTypes()...) }
