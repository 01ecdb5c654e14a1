package static

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/dmitrymomot/spaserver/core/handler"
	"github.com/dmitrymomot/spaserver/core/logger"
	"github.com/dmitrymomot/spaserver/core/response"
)

// DefaultIndex is the fallback document served for unknown paths.
const DefaultIndex = "index.html"

// spaConfig holds configuration options for Single Page Application serving.
type spaConfig struct {
	indexFile    string
	excludePaths []string
	stripPrefix  string
	types        *ContentTypes
	logger       *slog.Logger
}

// SPAOption is a functional option type for configuring SPA serving behavior.
type SPAOption func(*spaConfig)

// WithIndex sets the fallback document, relative to the serving root
// (default: "index.html").
func WithIndex(indexFile string) SPAOption {
	return func(c *spaConfig) {
		c.indexFile = strings.TrimLeft(indexFile, "/")
	}
}

// WithExcludePaths sets path prefixes that never fall back to the index
// document. Missing files under them answer 404. Prefixes match whole path
// segments, so "/api" excludes "/api" and "/api/users" but not "/apiary".
func WithExcludePaths(paths ...string) SPAOption {
	return func(c *spaConfig) {
		c.excludePaths = paths
	}
}

// WithStripPrefix removes prefix from the URL path before resolving files.
// Requests outside the prefix answer 404.
func WithStripPrefix(prefix string) SPAOption {
	return func(c *spaConfig) {
		c.stripPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// WithContentTypes replaces the default extension to media type table.
func WithContentTypes(types ContentTypes) SPAOption {
	return func(c *spaConfig) {
		c.types = &types
	}
}

// WithLogger sets the logger for fallback decisions and I/O failures.
func WithLogger(log *slog.Logger) SPAOption {
	return func(c *spaConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// SPA creates a handler for serving Single Page Applications with client-side routing.
//
// Requests for existing regular files in fsys are served as is. Every other
// path, including "/", paths with ".." elements and directories, is answered
// with the index document so the application's router can take over:
//
//	root, _ := static.OpenRoot("./dist")
//	spa := static.SPA[*router.Context](root.FS())
//	// GET /app.js      → ./dist/app.js
//	// GET /dashboard/42 → ./dist/index.html
//	// GET /             → ./dist/index.html
//
// A missing index document is not a startup error: the handler logs a
// warning and unknown paths answer 404 until the file appears.
//
// Panics at startup if fsys is nil or the index name is not a valid fs path.
func SPA[C handler.Context](fsys fs.FS, opts ...SPAOption) handler.HandlerFunc[C] {
	config := &spaConfig{
		indexFile: DefaultIndex,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(config)
	}

	if fsys == nil {
		panic("static.SPA: nil filesystem")
	}
	if !fs.ValidPath(config.indexFile) || config.indexFile == "." {
		panic("static.SPA: invalid index file name: " + config.indexFile)
	}

	types := NewContentTypes()
	if config.types != nil {
		types = *config.types
	}

	files := FSChecker(fsys)
	if !files.IsFile(config.indexFile) {
		config.logger.Warn("fallback document not found, unknown paths will answer 404",
			logger.Component("static"),
			logger.File(config.indexFile),
		)
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			urlPath := r.URL.Path

			if config.stripPrefix != "" {
				rest, ok := strings.CutPrefix(urlPath, config.stripPrefix)
				if !ok || (rest != "" && rest[0] != '/') {
					return response.ErrNotFound
				}
				urlPath = rest
			}

			if isExcluded(urlPath, config.excludePaths) {
				name := strings.TrimLeft(urlPath, "/")
				if name == "" || !fs.ValidPath(name) || !files.IsFile(name) {
					return response.ErrNotFound
				}
				return serve(ctx, w, r, fsys, name, types, config.logger)
			}

			name := ResolvePath(urlPath, files, config.indexFile)
			if name == config.indexFile && strings.TrimLeft(urlPath, "/") != config.indexFile {
				config.logger.DebugContext(ctx, "serving fallback document",
					logger.Component("static"),
					logger.Path(r.URL.Path),
					logger.File(name),
				)
			}

			return serve(ctx, w, r, fsys, name, types, config.logger)
		}
	}
}

func serve[C handler.Context](ctx C, w http.ResponseWriter, r *http.Request, fsys fs.FS, name string, types ContentTypes, log *slog.Logger) error {
	err := ServeFile(w, r, fsys, name, types)
	if err != nil && response.Status(err) >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "failed to serve file",
			logger.Component("static"),
			logger.Path(r.URL.Path),
			logger.File(name),
			logger.Error(err),
		)
	}
	return err
}

// isExcluded matches urlPath against prefixes on segment boundaries.
func isExcluded(urlPath string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return false
	}
	clean := path.Clean("/" + urlPath)
	for _, exclude := range prefixes {
		exclude = path.Clean("/" + exclude)
		if exclude == "/" {
			continue
		}
		if clean == exclude || strings.HasPrefix(clean, exclude+"/") {
			return true
		}
	}
	return false
}
