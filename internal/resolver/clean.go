package resolver

import (
	"path/filepath"
)

// CleanStale removes every working-directory entry except the newest
// usable install directory and returns the kept binary's path. When no
// usable install exists it returns ErrNoCachedBinary and removes nothing.
func (r *Resolver) CleanStale() (string, error) {
	path, ok := latestInstalled(r.workDir, r.product(), r.platform.ExeSuffix())
	if !ok {
		return "", ErrNoCachedBinary
	}

	keep := filepath.Base(filepath.Dir(path))
	r.removeStaleVersions(keep)

	return path, nil
}
