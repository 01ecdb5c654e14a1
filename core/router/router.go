package router

import (
	"net/http"

	"github.com/dmitrymomot/spaserver/core/handler"
)

// Router dispatches every request path to a single catch-all handler
// selected by HTTP method. Requests with a method that has no handler
// are answered with 405 and an Allow header.
type Router[C handler.Context] interface {
	http.Handler

	// HTTP method handlers
	Get(h handler.HandlerFunc[C])
	Head(h handler.HandlerFunc[C])

	// Method registers h for each of the given methods.
	Method(h handler.HandlerFunc[C], methods ...string)

	// Middleware
	Use(middlewares ...handler.Middleware[C])

	// Methods returns the registered methods in sorted order.
	Methods() []string
}

// New creates a new router with the given options.
// The router supports generic context types for type-safe request handling.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
