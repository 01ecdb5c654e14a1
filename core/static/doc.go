// Package static serves a directory of static files with a fallback document
// for Single Page Applications that route on the client.
//
// A request is answered in two steps. ResolvePath maps the URL path to a name
// relative to the serving root and substitutes the fallback document when no
// regular file exists under that name. ServeFile then writes that file with
// the standard static semantics of http.ServeContent: content type, length,
// Last-Modified, Range, conditional requests and HEAD.
//
//	root, err := static.OpenRoot("./dist")
//	if err != nil {
//		return err
//	}
//	defer root.Close()
//
//	http.ListenAndServe(":8001", static.Handler(root.FS()))
//
// With the router and middleware packages:
//
//	spa := static.SPA[*router.Context](root.FS(),
//		static.WithIndex("index.html"),
//		static.WithExcludePaths("/api"),
//	)
//	r := router.New[*router.Context]()
//	r.Get(spa)
//	r.Head(spa)
//
// # Path Resolution
//
//   - GET /app.js serves app.js when it is a regular file
//   - GET /dashboard/42 serves index.html when no such file exists
//   - GET / serves index.html (the empty name is never a file)
//   - GET /assets/ serves index.html (directories are not files)
//   - GET /../secret serves index.html (".." never reaches the filesystem)
//
// When the fallback document is missing as well, the response is 404.
//
// # Security
//
// Names containing ".", ".." or empty elements are rejected by ResolvePath
// before any filesystem access. OpenRoot returns an os.Root, whose FS also
// refuses symbolic links that point outside the root. Directory listings are
// never produced.
//
// # Content Types
//
// ContentTypes is an immutable extension table built at startup. It includes
// application/wasm for .wasm regardless of the host's mime.types and falls
// back to mime.TypeByExtension for other extensions.
package static
