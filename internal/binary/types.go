package binary

// ArchiveKind identifies the archive format of a release asset.
type ArchiveKind int

const (
	// ArchiveGzipTar is a gzip-compressed tarball (.tar.gz), used by
	// macOS and Linux release assets.
	ArchiveGzipTar ArchiveKind = iota
	// ArchiveZip is a zip archive, used by Windows release assets.
	ArchiveZip
)

// String returns the conventional file extension for the archive kind.
func (k ArchiveKind) String() string {
	switch k {
	case ArchiveGzipTar:
		return "tar.gz"
	case ArchiveZip:
		return "zip"
	default:
		return "unknown"
	}
}
