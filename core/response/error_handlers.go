package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/spaserver/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// written is implemented by response writers that track whether
// the header has already been sent.
type written interface {
	Written() bool
}

// convertToHTTPError converts any error to an HTTPError
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError

	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError

	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler that returns plain text errors.
// It checks for HTTPError type first, then statusCode interface, and defaults to 500.
// Nothing is written when the response has already started.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if ww, ok := ctx.ResponseWriter().(written); ok && ww.Written() {
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Message+"\n", httpErr.Status))
}

// Status extracts the HTTP status an error handler would respond with.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return convertToHTTPError(err).Status
}
