/*
The middleware package defines what a middleware is in rest and a set of basic middlewares.

The available middlewares are:
  - CORS
  - InjectIPAddress
  - LogRequest
  - Metrics
  - RateLimit
  - ReportPanic
  - RequestID

A typical stack applied to every request looks like:

	vs := middleware.NewVisitors(5, 20)
	adpts := []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.Metrics(),
		middleware.RateLimit(vs),
	}
*/
package middleware
