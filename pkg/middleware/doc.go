// Package middleware provides observability wrappers for the session event
// pipeline: Prometheus metrics and OpenTelemetry tracing.
//
// Middleware composes around event processing, outermost first:
//
//	cfg := session.Config{
//	    Middleware: []session.Middleware{
//	        middleware.Metrics(middleware.WithNamespace("toastkit")),
//	        middleware.OTel(),
//	    },
//	}
package middleware
