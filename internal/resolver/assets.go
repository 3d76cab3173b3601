package resolver

import (
	"fmt"

	"github.com/TamsinVexley/lsprov/internal/binary"
	"github.com/TamsinVexley/lsprov/internal/platform"
)

// platformKey identifies one supported OS/architecture pair.
type platformKey struct {
	os   string
	arch string
}

// anyArch marks an asset shared by all architectures of an OS.
const anyArch = "*"

// assetTargets maps supported platforms to the release asset's target
// suffix. The full asset name is "<product>-<suffix>". macOS ships one
// universal binary; everything else is per-architecture. Pairs absent
// from this table have no published build.
var assetTargets = map[platformKey]string{
	{os: "darwin", arch: anyArch}:  "universal-apple-darwin.tar.gz",
	{os: "windows", arch: "arm64"}: "aarch64-pc-windows-msvc.zip",
	{os: "windows", arch: "amd64"}: "x86_64-pc-windows-msvc.zip",
	{os: "linux", arch: "arm64"}:   "aarch64-unknown-linux-gnu.tar.gz",
	{os: "linux", arch: "amd64"}:   "x86_64-unknown-linux-gnu.tar.gz",
}

// assetName returns the expected release asset name for a platform, or
// ErrUnsupportedPlatform when no build is published for the pair.
func assetName(product string, info *platform.Info) (string, error) {
	key := platformKey{os: info.OS, arch: info.Arch}
	if info.OS == "darwin" {
		key.arch = anyArch
	}

	suffix, ok := assetTargets[key]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, info.OS, info.Arch)
	}

	return fmt.Sprintf("%s-%s", product, suffix), nil
}

// archiveKindFor returns the archive format used by an OS's release
// assets: zip on Windows, gzipped tar elsewhere.
func archiveKindFor(osName string) binary.ArchiveKind {
	if osName == "windows" {
		return binary.ArchiveZip
	}
	return binary.ArchiveGzipTar
}
