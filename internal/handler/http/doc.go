// Package http implements the HTTP transport layer of the authentication
// service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, and
// response compression are handled in this package before requests are
// delegated to the service layer. Session tokens travel in the "jwt" cookie;
// an Authorization Bearer header is accepted as a fallback.
package http
