package static

import (
	"fmt"
	"os"
)

// OpenRoot opens dir as a serving root. Names resolved through root.FS()
// cannot leave dir, neither through ".." nor through symbolic links.
// The caller closes the root when the server stops.
func OpenRoot(dir string) (*os.Root, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotExist, dir)
		}
		return nil, fmt.Errorf("static: error accessing root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, dir)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("static: open root %s: %w", dir, err)
	}
	return root, nil
}
