package static

import (
	"maps"
	"mime"
	"path"
	"strings"
)

// defaultContentTypes lists media types that must not depend on the host's
// mime.types files. Extensions are lower case with a leading dot.
var defaultContentTypes = map[string]string{
	".css":         "text/css; charset=utf-8",
	".html":        "text/html; charset=utf-8",
	".ico":         "image/vnd.microsoft.icon",
	".js":          "text/javascript; charset=utf-8",
	".json":        "application/json",
	".map":         "application/json",
	".mjs":         "text/javascript; charset=utf-8",
	".svg":         "image/svg+xml",
	".txt":         "text/plain; charset=utf-8",
	".wasm":        "application/wasm",
	".webmanifest": "application/manifest+json",
	".woff":        "font/woff",
	".woff2":       "font/woff2",
}

// ContentTypes maps file extensions to media types. It is built once by
// NewContentTypes and never modified afterwards, so a single value can be
// shared by concurrent requests.
type ContentTypes struct {
	byExt map[string]string
}

// ContentTypeOption customizes the table built by NewContentTypes.
type ContentTypeOption func(map[string]string)

// WithContentType maps ext to mediaType, overriding any default.
// The leading dot is optional and matching is case-insensitive.
func WithContentType(ext, mediaType string) ContentTypeOption {
	return func(m map[string]string) {
		m[normalizeExt(ext)] = mediaType
	}
}

// NewContentTypes builds a table from the built-in defaults plus opts.
func NewContentTypes(opts ...ContentTypeOption) ContentTypes {
	byExt := maps.Clone(defaultContentTypes)
	for _, opt := range opts {
		opt(byExt)
	}
	return ContentTypes{byExt: byExt}
}

// Lookup returns the media type for name's extension. Unknown extensions fall
// back to mime.TypeByExtension; an empty result lets http.ServeContent sniff
// the body.
func (t ContentTypes) Lookup(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return ""
	}
	if mediaType, ok := t.byExt[ext]; ok {
		return mediaType
	}
	return mime.TypeByExtension(ext)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
