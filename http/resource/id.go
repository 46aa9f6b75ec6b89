package resource

import (
	"net/http"
	"regexp"
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][-a-zA-Z0-9~_.]*$`)

// ValidID reports whether id is an alphanumeric character
// followed by any number of alphanumeric characters or "-", "~", "_" and ".".
func ValidID(id string) bool { return idPattern.MatchString(id) }

// IDParam is a router.ParamFunc continuing with a valid id.
// Any other id redirects the client to "/" and ends the request.
//
//	r.Param("id", resource.IDParam)
func IDParam(w http.ResponseWriter, r *http.Request, next http.Handler, id string) {
	if !ValidID(id) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	next.ServeHTTP(w, r)
}
