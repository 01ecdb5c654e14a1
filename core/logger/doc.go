// Package logger builds log/slog loggers and provides attribute helpers with
// consistent key names.
//
//	log := logger.New(
//		logger.WithProduction("spaserver"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//
//	log.Info("server started",
//		logger.Component("server"),
//		logger.Addr("0.0.0.0:8001"),
//	)
//
// WithDevelopment selects text output at debug level, WithProduction JSON at
// info level. Both tag records with service and env.
//
// Context extractors run on every *Context call (InfoContext, LogAttrs, ...)
// and append whatever request-scoped attributes they find, such as the
// request ID stored by the middleware package.
//
// Attribute helpers like Error, RequestID and Query return an empty Attr for
// zero values; slog drops empty attributes, so callers need no nil checks.
package logger
