package resolver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseVersionDir(t *testing.T) {
	tests := []struct {
		name    string
		dirName string
		want    Version
		wantOK  bool
	}{
		{"simple", "neocmakelsp-v1.2.3", Version{1, 2, 3}, true},
		{"zeros", "neocmakelsp-v0.0.0", Version{0, 0, 0}, true},
		{"multi_digit", "neocmakelsp-v10.22.304", Version{10, 22, 304}, true},
		{"wrong_prefix", "othertool-v1.2.3", Version{}, false},
		{"no_prefix", "1.2.3", Version{}, false},
		{"missing_component", "neocmakelsp-v1.2", Version{}, false},
		{"extra_component", "neocmakelsp-v1.2.3.4", Version{}, false},
		{"non_numeric", "neocmakelsp-v1.2.x", Version{}, false},
		{"trailing_junk", "neocmakelsp-v1.2.3-rc1", Version{}, false},
		{"empty_component", "neocmakelsp-v1..3", Version{}, false},
		{"negative_component", "neocmakelsp-v1.-2.3", Version{}, false},
		{"plus_sign", "neocmakelsp-v+1.2.3", Version{}, false},
		{"no_version", "neocmakelsp-v", Version{}, false},
		{"bare_product", "neocmakelsp", Version{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseVersionDir(tt.dirName, "neocmakelsp")
			if ok != tt.wantOK {
				t.Fatalf("parseVersionDir(%q) ok = %v, want %v", tt.dirName, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("parseVersionDir(%q) = %+v, want %+v", tt.dirName, got, tt.want)
			}
		})
	}
}

func TestParseVersionDirRoundTrip(t *testing.T) {
	versions := []Version{{0, 0, 1}, {1, 2, 3}, {12, 0, 99}}
	for _, v := range versions {
		dir := installDirName("srv", v.String())
		got, ok := parseVersionDir(dir, "srv")
		if !ok {
			t.Errorf("round trip failed to parse %q", dir)
			continue
		}
		if got != v {
			t.Errorf("round trip %q = %+v, want %+v", dir, got, v)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		want int
	}{
		{Version{1, 2, 3}, Version{1, 2, 3}, 0},
		{Version{1, 2, 3}, Version{1, 2, 4}, -1},
		{Version{1, 3, 0}, Version{1, 2, 10}, 1},
		{Version{2, 0, 0}, Version{1, 99, 99}, 1},
		{Version{1, 2, 10}, Version{1, 2, 9}, 1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

// installVersion creates workDir/<product>-v<version>/<product><suffix>.
func installVersion(t *testing.T, workDir, product, version, exeSuffix string) string {
	t.Helper()

	dir := filepath.Join(workDir, installDirName(product, version))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("create version dir: %v", err)
	}
	path := filepath.Join(dir, product+exeSuffix)
	if err := os.WriteFile(path, []byte("binary"), 0755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	return path
}

func TestLatestInstalled(t *testing.T) {
	workDir := t.TempDir()

	installVersion(t, workDir, "srv", "1.2.9", "")
	installVersion(t, workDir, "srv", "1.2.10", "")
	want := installVersion(t, workDir, "srv", "1.3.0", "")

	got, ok := latestInstalled(workDir, "srv", "")
	if !ok {
		t.Fatal("latestInstalled found nothing")
	}
	if got != want {
		t.Errorf("latestInstalled = %q, want %q (1.3.0 beats 1.2.10)", got, want)
	}
}

func TestLatestInstalledSkipsInvalid(t *testing.T) {
	workDir := t.TempDir()

	// Valid install
	want := installVersion(t, workDir, "srv", "0.9.1", "")

	// Higher version but the binary file is missing
	if err := os.MkdirAll(filepath.Join(workDir, "srv-v2.0.0"), 0755); err != nil {
		t.Fatalf("create dir: %v", err)
	}

	// Malformed names with binaries inside
	for _, name := range []string{"srv-v3.0", "srv-v3.0.0.0", "srv-vx.y.z", "other-v9.9.9", "notes.txt"} {
		dir := filepath.Join(workDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("create dir: %v", err)
		}
		os.WriteFile(filepath.Join(dir, "srv"), []byte("binary"), 0755)
	}

	got, ok := latestInstalled(workDir, "srv", "")
	if !ok {
		t.Fatal("latestInstalled found nothing")
	}
	if got != want {
		t.Errorf("latestInstalled = %q, want %q", got, want)
	}
}

func TestLatestInstalledEmpty(t *testing.T) {
	if _, ok := latestInstalled(t.TempDir(), "srv", ""); ok {
		t.Error("latestInstalled found something in an empty dir")
	}

	if _, ok := latestInstalled(filepath.Join(t.TempDir(), "missing"), "srv", ""); ok {
		t.Error("latestInstalled found something in a missing dir")
	}
}

func TestLatestInstalledExeSuffix(t *testing.T) {
	workDir := t.TempDir()

	// Binary stored without suffix is invisible when a suffix is expected
	installVersion(t, workDir, "srv", "1.0.0", "")
	want := installVersion(t, workDir, "srv", "0.5.0", ".exe")

	got, ok := latestInstalled(workDir, "srv", ".exe")
	if !ok {
		t.Fatal("latestInstalled found nothing")
	}
	if got != want {
		t.Errorf("latestInstalled = %q, want %q", got, want)
	}
}
