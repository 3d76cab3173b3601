// Package worktree gives the resolver access to the host project's
// environment: the project root and executable lookup on the search path.
//
// A project's own bin directory takes precedence over the process PATH, so
// a vendored language server wins over a system-wide one.
package worktree

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// Worktree is the resolver's view of the host project.
// Following Go best practices: accept interfaces, return structs.
type Worktree interface {
	// Which looks up an executable by name, returning its path and
	// whether it was found.
	Which(name string) (string, bool)

	// Root returns the worktree's root directory.
	Root() string
}

// Local is a Worktree rooted in a local directory.
type Local struct {
	root string
}

// Open creates a Local worktree for the project containing dir. When dir
// is inside a Git repository the repository root becomes the worktree
// root (discovered the way git itself does, walking up to .git); otherwise
// dir is used as-is.
func Open(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve worktree dir: %w", err)
	}

	if info, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("stat worktree dir: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("worktree path is not a directory: %s", abs)
	}

	root := abs
	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err == nil {
		if wt, wtErr := repo.Worktree(); wtErr == nil {
			root = wt.Filesystem.Root()
		}
	} else if !errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Local{root: root}, nil
}

// Root returns the worktree's root directory.
func (w *Local) Root() string {
	return w.root
}

// Which looks for an executable called name, first under the worktree's
// own bin directory, then on the process search path.
func (w *Local) Which(name string) (string, bool) {
	candidate := filepath.Join(w.root, "bin", name)
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate, true
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
