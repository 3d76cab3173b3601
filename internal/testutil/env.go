// Package testutil provides utilities for testing lsprov in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv creates isolated test directories for each test.
// This ensures lsprov tests never touch:
//   - A developer's real settings file
//   - Previously provisioned server binaries
//   - Binaries found on the developer's PATH
//
// Cleanup is handled by t.TempDir(), so callers don't need to clean up.
// It returns the isolated working directory.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	workDir := filepath.Join(tmpDir, "servers")
	configDir := filepath.Join(tmpDir, "config")

	t.Setenv("LSPROV_CONFIG", filepath.Join(configDir, "settings.lua"))
	t.Setenv("LSPROV_WORK_DIR", workDir)

	// An empty PATH keeps a system-wide server install from winning
	// the override stage during tests.
	t.Setenv("PATH", filepath.Join(tmpDir, "empty-path"))

	for _, dir := range []string{workDir, configDir, filepath.Join(tmpDir, "empty-path")} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return workDir
}
