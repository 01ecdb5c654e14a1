package static_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/spaserver/core/static"
)

func TestContentTypesLookup(t *testing.T) {
	t.Parallel()

	types := static.NewContentTypes()

	tests := []struct {
		name string
		want string
	}{
		{"module.wasm", "application/wasm"},
		{"MODULE.WASM", "application/wasm"},
		{"dir/app.js", "text/javascript; charset=utf-8"},
		{"app.mjs", "text/javascript; charset=utf-8"},
		{"index.html", "text/html; charset=utf-8"},
		{"manifest.webmanifest", "application/manifest+json"},
		{"app.js.map", "application/json"},
		{"logo.svg", "image/svg+xml"},
		{"photo.png", "image/png"},
		{"README", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, types.Lookup(tt.name), tt.name)
	}
}

func TestContentTypesOverrides(t *testing.T) {
	t.Parallel()

	types := static.NewContentTypes(
		static.WithContentType("wasm", "application/x-custom"),
		static.WithContentType(".MD", "text/markdown; charset=utf-8"),
	)

	assert.Equal(t, "application/x-custom", types.Lookup("a.wasm"))
	assert.Equal(t, "text/markdown; charset=utf-8", types.Lookup("notes.md"))

	// Overrides never leak into other tables
	assert.Equal(t, "application/wasm", static.NewContentTypes().Lookup("a.wasm"))
}

func TestContentTypesZeroValue(t *testing.T) {
	t.Parallel()

	var types static.ContentTypes
	assert.Equal(t, "image/png", types.Lookup("a.png"))
}
