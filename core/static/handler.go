package static

import (
	"io/fs"
	"net/http"

	"github.com/dmitrymomot/spaserver/core/response"
	"github.com/dmitrymomot/spaserver/core/router"
)

// Handler returns SPA as a plain http.Handler answering GET and HEAD.
// Other methods get 405 Method Not Allowed.
func Handler(fsys fs.FS, opts ...SPAOption) http.Handler {
	spa := SPA[*router.Context](fsys, opts...)

	r := router.New[*router.Context](
		router.WithErrorHandler(response.ErrorHandler[*router.Context]),
	)
	r.Get(spa)
	r.Head(spa)

	return r
}
