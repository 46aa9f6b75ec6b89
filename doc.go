/*
Package rest holds the shared vocabulary for building content-negotiated HTTP resources:
structured errors, the [Handling] tri-state controlling a family of media types,
the default media-type tables, context keys and environment helpers.

The web layer lives in the http/ subpackages:
  - http/negotiate picks a representation from the "Accept" header
  - http/resource builds the middleware serving a negotiated resource
  - http/when gates middleware behind predicates over a request
  - http/router ties routes, route fall-through and the central error handler together
*/
package rest
