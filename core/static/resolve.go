package static

import (
	"io/fs"
	"strings"
)

// FileChecker reports whether name, relative to a serving root, is an
// existing regular file.
type FileChecker interface {
	IsFile(name string) bool
}

// FileCheckerFunc adapts a function to FileChecker.
type FileCheckerFunc func(name string) bool

// IsFile calls f(name).
func (f FileCheckerFunc) IsFile(name string) bool {
	return f(name)
}

// FSChecker checks names against fsys. Directories, devices and names that
// cannot be stat'ed are not files.
func FSChecker(fsys fs.FS) FileChecker {
	return FileCheckerFunc(func(name string) bool {
		info, err := fs.Stat(fsys, name)
		return err == nil && info.Mode().IsRegular()
	})
}

// ResolvePath decides which file answers a request for requestPath.
//
// Leading slashes are stripped to form a name relative to the serving root.
// The name is returned unchanged when files reports it as a regular file.
// Otherwise fallback is returned: for the root path, for names that are not
// valid fs paths (".." or "." elements, empty elements, trailing slashes),
// and for names that do not exist. Invalid names never reach files.
func ResolvePath(requestPath string, files FileChecker, fallback string) string {
	name := strings.TrimLeft(requestPath, "/")
	if name == "" || !fs.ValidPath(name) {
		return fallback
	}
	if files.IsFile(name) {
		return name
	}
	return fallback
}
