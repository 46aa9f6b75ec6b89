/*
Package req turns request bodies and query strings into validated structs.

JSON bodies are matched by "json" tags and query params by "schema" tags;
"validate" tags hold the rules, including the package's own "enum" and "mediatype".
Rule failures come back as [ValidationErrors] naming each field by the tag the client used.

[Parser.Validate] does this as a middleware.Adapter, leaving the parsed value for
[QueryFrom] or [BodyFrom] and answering failures with a public *rest.Error.
*/
package req
