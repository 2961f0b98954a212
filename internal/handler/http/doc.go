// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// settings API. Cross-cutting concerns such as authentication, request
// tracing and access logging are handled in this package before requests
// reach the configuration resolver.
package http
