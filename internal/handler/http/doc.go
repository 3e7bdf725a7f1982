// Package http implements the HTTP transport of the settings server.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression and panic recovery are handled here
// before requests are delegated to the service layer.
package http
