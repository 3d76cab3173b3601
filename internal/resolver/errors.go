package resolver

import "errors"

// Resolution errors.
var (
	// ErrUnsupportedPlatform means no release asset exists for the
	// host's OS/architecture pair.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrAssetNotFound means the release exists but lacks the expected
	// artifact.
	ErrAssetNotFound = errors.New("release asset not found")

	// ErrNoCachedBinary means the release source was unreachable and no
	// usable version exists on disk.
	ErrNoCachedBinary = errors.New("no cached binary found")
)
