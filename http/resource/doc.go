/*
Package resource builds the handlers serving a REST resource in whichever representation a client prefers.

A [Factory] turns a [Config] into the middlewares to attach to a route:

	f := resource.NewFactory(resource.WithResponder(responder))
	r.Handle(router.Route{
		Path:        "/documents/{id}",
		Method:      http.MethodGet,
		Middlewares: f.MakeHandler(resource.Config{Get: getDocument, HTML: rest.Deferred}),
	})

Per request, the media types of each enabled or deferred family are negotiated against the "Accept" header,
in the order "application/ld+json", "application/json" then "text/html".
A JSON family match writes the resource as JSON,
an HTML family match renders a template,
a deferred match hands the request to the next route
and no match fails the request with a public 406 *rest.Error listing the acceptable media types.
*/
package resource
