/*
Package logger provides leveled logging to a rest app by defining the required behavior in [Logger]
and providing an implementation of it with [TextLogger].

Log messages emitted by [TextLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [WARN] resource/factory.go:88 'not acceptable' log_context: {"data":{"acceptable":["application/json"]}}

When configured with a Sentry DSN, [New] returns a [SentryLogger]
that also ships errors found at warn level and above to Sentry.
*/
package logger
