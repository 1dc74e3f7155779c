// Package http implements the REST transport of the invoicing service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, metrics and response compression are handled in this package
// before requests are delegated to the service layer. Service errors are
// rendered as {"kind", "message"} with a status derived from their kind.
package http
