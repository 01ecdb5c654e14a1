package response

import (
	"net/http"

	"github.com/dmitrymomot/spaserver/core/handler"
)

// Error returns a handler response that propagates the given error
// to the router's error handler.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
