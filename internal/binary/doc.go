// Package binary downloads and installs language-server release archives.
//
// The package provides the filesystem half of binary provisioning:
//   - Downloader: single-attempt HTTP download to a staging file
//   - Extractor: tar.gz and zip extraction with path-traversal checks
//   - Verifier: optional OpenPGP verification of downloaded archives
//   - Manager: fetch-and-extract orchestration for one archive
//
// Downloads are deliberately made exactly once per call. The resolver's
// recovery strategy is falling back to a version already on disk, not
// retrying the network.
//
// # Usage
//
//	mgr := binary.NewManager(binary.ManagerConfig{})
//	err := mgr.FetchAndExtract(ctx, url, versionDir, binary.ArchiveGzipTar)
//	if err != nil {
//	    return err
//	}
//	err = binary.SetExecutable(filepath.Join(versionDir, "neocmakelsp"))
package binary
