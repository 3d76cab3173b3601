package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Version is an ordered (major, minor, patch) triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version in "1.2.3" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions lexicographically by triple.
// It returns -1, 0, or 1.
func (v Version) Compare(o Version) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, o.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// parseVersionDir parses an install directory name of the form
// "<product>-v<major>.<minor>.<patch>". Anything that deviates from the
// scheme — wrong prefix, missing or extra components, non-numeric
// components — is rejected, not reported; callers treat such entries as
// noise left in the working directory.
func parseVersionDir(dirName, product string) (Version, bool) {
	rest, ok := strings.CutPrefix(dirName, product+"-v")
	if !ok {
		return Version{}, false
	}

	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Version{}, false
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, ok := parseComponent(part)
		if !ok {
			return Version{}, false
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, true
}

// parseComponent parses one non-negative, digits-only version component.
func parseComponent(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// installDirName returns the install directory name for a release version
// ("1.2.3", no leading "v").
func installDirName(product, version string) string {
	return fmt.Sprintf("%s-v%s", product, version)
}

// latestInstalled scans workDir for versioned install directories and
// returns the binary path of the greatest version whose binary file
// exists. Entries that fail to parse or lack the binary are skipped.
func latestInstalled(workDir, product, exeSuffix string) (string, bool) {
	entries, err := os.ReadDir(workDir)
	if err != nil {
		return "", false
	}

	var (
		best     Version
		bestPath string
		found    bool
	)

	for _, entry := range entries {
		version, ok := parseVersionDir(entry.Name(), product)
		if !ok {
			continue
		}

		candidate := filepath.Join(workDir, entry.Name(), product+exeSuffix)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if !found || version.Compare(best) > 0 {
			best = version
			bestPath = candidate
			found = true
		}
	}

	return bestPath, found
}
