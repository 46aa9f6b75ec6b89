/*
Package resp writes HTTP responses for a whole application through one configured [Responder].

Handlers describe each response with [Fn] options:

	err := rs.Json(w, r, resp.Data(doc), resp.ContentType(mediaType))
	err := rs.Html(w, r, resp.Tmpls("document.html"), resp.Data(vars))
	err := rs.Redirect(w, r, resp.Url("/documents"), resp.Param("missing", id))

A failed request ends with [Responder.ErrorHandler], which turns a *rest.Error into its status and JSON body.
*/
package resp
