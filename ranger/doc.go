/*
Package ranger initializes and manages a rest app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
[*Ranger.Serve] registers the resources a [Manifest] lists,
each served from a docstore collection through a content-negotiating resource handler.

[*Ranger.Guide] begins a rest app's web server.
By default, [*Ranger.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000).

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown]
or send a signal [*Ranger.Guide] listens for.

# Manifest

A [Manifest] is a YAML file:

	resources:
	  - path: /documents/{id}
	    collection: documents
	    json: true
	    html: route
	  - path: /documents/{id}
	    collection: documents
	    json: false
	    html: true
	    template: document.html
	    templateNeedsResource: true

"json" and "html" take "true", "false" or "route";
"route" hands requests preferring that family to the next matching resource.

# Configuration

A developer configures a rest app through environment variables
or by passing a [Config] to [WithConfig].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; also the only origin CORS allows
  - DATABASE_DRIVER: "sqlite" or "postgres"; default: sqlite
  - DATABASE_URL: the connection string for the database; default: :memory:
  - ENVIRONMENT: the environment the application is running in; default: DEVELOPMENT; cf. [rest.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MANIFEST_PATH: the Manifest to serve; default: resources.yaml
  - PORT: the port the application should listen on; default: 3000
  - RATE_LIMIT: requests per second allowed from each IP address; default: unlimited
  - RATE_BURST: requests allowed in a burst over RATE_LIMIT; default: 10
  - SENTRY_DSN: the Sentry project errors are shipped to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - TEMPLATE_DIR: a directory of views, looked up before the views this package embeds
*/
package ranger
