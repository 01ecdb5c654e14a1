// Package response provides structured HTTP errors and the plain text error
// handler used by the router.
//
// Handlers report failures by returning an error from their Response. The
// router passes it to ErrorHandler, which picks the status from HTTPError or
// from any error implementing StatusCode() int, and defaults to 500:
//
//	return func(w http.ResponseWriter, r *http.Request) error {
//		return response.ErrNotFound
//	}
//
// Causes can be attached without leaking them into the response body:
//
//	return response.ErrInternalServerError.WithError(err)
//
// errors.Is matches predefined errors by status and code, so wrapped copies
// still compare equal:
//
//	errors.Is(err, response.ErrNotFound)
package response
