// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// download front-end. Cross-cutting concerns such as request tracing, client
// address resolution, access logging, Prometheus instrumentation, response
// compression, and attachment integrity digests are handled in this package
// before requests are delegated to the service layer.
package http
