package static

import "errors"

var (
	ErrRootNotExist = errors.New("static: root directory does not exist")
	ErrRootNotDir   = errors.New("static: root path is not a directory")
)
