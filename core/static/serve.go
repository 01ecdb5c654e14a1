package static

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/dmitrymomot/spaserver/core/response"
)

// ServeFile writes the file name from fsys as the response to r.
//
// The Content-Type comes from types when the extension is known, otherwise
// http.ServeContent detects it. ServeContent also handles HEAD, Range and
// conditional requests and sets Content-Length and Last-Modified.
//
// Nothing is written on failure. A missing file or a directory yields
// response.ErrNotFound, a permission error response.ErrForbidden, and any
// other error response.ErrInternalServerError wrapping the cause.
//
// ServeFile does not redirect requests ending in /index.html and does not
// inspect r.URL.Path; the caller decides which name to serve.
func ServeFile(w http.ResponseWriter, r *http.Request, fsys fs.FS, name string, types ContentTypes) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fileError(name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fileError(name, err)
	}
	if !info.Mode().IsRegular() {
		return response.ErrNotFound
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return fileError(name, err)
		}
		content = bytes.NewReader(data)
	}

	if mediaType := types.Lookup(name); mediaType != "" {
		w.Header().Set("Content-Type", mediaType)
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	return nil
}

func fileError(name string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrInvalid):
		return response.ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return response.ErrForbidden.WithError(err)
	default:
		return response.ErrInternalServerError.WithError(fmt.Errorf("static: serve %s: %w", name, err))
	}
}
