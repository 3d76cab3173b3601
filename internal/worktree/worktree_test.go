package worktree

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	gogit "github.com/go-git/go-git/v5"
)

func TestOpenPlainDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	wt, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Resolve symlinks on both sides; t.TempDir may sit behind one
	wantRoot, _ := filepath.EvalSymlinks(tmpDir)
	gotRoot, _ := filepath.EvalSymlinks(wt.Root())
	if gotRoot != wantRoot {
		t.Errorf("root = %q, want %q", gotRoot, wantRoot)
	}
}

func TestOpenRepositorySubdirectory(t *testing.T) {
	tmpDir := t.TempDir()
	if _, err := gogit.PlainInit(tmpDir, false); err != nil {
		t.Fatalf("init repository: %v", err)
	}

	subDir := filepath.Join(tmpDir, "src", "deep")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("create subdir: %v", err)
	}

	wt, err := Open(subDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	wantRoot, _ := filepath.EvalSymlinks(tmpDir)
	gotRoot, _ := filepath.EvalSymlinks(wt.Root())
	if gotRoot != wantRoot {
		t.Errorf("root = %q, want repository root %q", gotRoot, wantRoot)
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWhichWorktreeBin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exec bits are POSIX-only")
	}

	tmpDir := t.TempDir()
	binDir := filepath.Join(tmpDir, "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("create bin dir: %v", err)
	}
	binPath := filepath.Join(binDir, "someserver")
	if err := os.WriteFile(binPath, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write binary: %v", err)
	}

	wt, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	path, ok := wt.Which("someserver")
	if !ok {
		t.Fatal("Which did not find worktree binary")
	}
	if path != binPath {
		t.Errorf("path = %q, want %q", path, binPath)
	}
}

func TestWhichPATH(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exec bits are POSIX-only")
	}

	tmpDir := t.TempDir()
	pathDir := filepath.Join(tmpDir, "elsewhere")
	if err := os.MkdirAll(pathDir, 0755); err != nil {
		t.Fatalf("create path dir: %v", err)
	}
	binPath := filepath.Join(pathDir, "pathserver")
	if err := os.WriteFile(binPath, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	t.Setenv("PATH", pathDir)

	wt, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	path, ok := wt.Which("pathserver")
	if !ok {
		t.Fatal("Which did not consult PATH")
	}
	if path != binPath {
		t.Errorf("path = %q, want %q", path, binPath)
	}

	if _, ok := wt.Which("definitely-not-installed-anywhere"); ok {
		t.Error("Which found a nonexistent binary")
	}
}
