// Package handler provides the types shared by the router, middleware and
// static file handlers: a request Context, a deferred Response, and generic
// HandlerFunc and Middleware signatures.
//
// A handler does not write to the connection directly. It returns a Response
// that the router renders, so middleware can observe or decorate the output:
//
//	func hello(ctx handler.Context) handler.Response {
//		return func(w http.ResponseWriter, r *http.Request) error {
//			_, err := io.WriteString(w, "hello")
//			return err
//		}
//	}
//
// Errors returned from a Response are passed to the router's ErrorHandler.
// Errors implementing StatusCode() int control the response status.
//
// Middleware wraps a HandlerFunc and returns a new one:
//
//	func timing[C handler.Context](next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//		return func(ctx C) handler.Response {
//			start := time.Now()
//			resp := next(ctx)
//			return func(w http.ResponseWriter, r *http.Request) error {
//				defer log.Println(time.Since(start))
//				return resp(w, r)
//			}
//		}
//	}
package handler
