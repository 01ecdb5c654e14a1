// Package router adapts generic handler.HandlerFunc values to net/http.
//
// Unlike a path router, a Router has one catch-all handler per HTTP method:
// every request path reaches the same handler, which decides what to serve.
// This fits static file servers where the filesystem, not a route table,
// defines the URL space.
//
//	r := router.New[*router.Context](
//		router.WithMiddleware(middleware.Logging[*router.Context]()),
//		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
//	)
//	r.Get(spa)
//	r.Head(spa)
//	http.ListenAndServe(":8001", r)
//
// Requests using a method without a handler get 405 Method Not Allowed with
// an Allow header listing the registered methods.
//
// # Error Handling
//
// Errors returned from a handler's Response go to the error handler. The
// default handler writes http.Error using the status from any error that
// implements StatusCode() int, or 500. Nothing is written if the response
// has already started.
//
// # Panic Recovery
//
// Panics are recovered and passed to the error handler wrapped in a
// PanicError exposing the panic value and stack trace. A panic after the
// response was written is logged only.
package router
