// Package middleware provides request logging and request ID middleware for
// the generic handler types.
//
//	r := router.New[*router.Context](
//		router.WithMiddleware(
//			middleware.RequestID[*router.Context](),
//			middleware.LoggingWithLogger[*router.Context](log),
//		),
//	)
//
// Install RequestID before Logging and build the logger with
// logger.WithContextExtractors(middleware.RequestIDExtractor) so that every
// record written with a request context carries request_id.
package middleware
