package resolver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TamsinVexley/lsprov/internal/binary"
	"github.com/TamsinVexley/lsprov/internal/config"
	"github.com/TamsinVexley/lsprov/internal/github"
	"github.com/TamsinVexley/lsprov/internal/logging"
	"github.com/TamsinVexley/lsprov/internal/platform"
	"github.com/TamsinVexley/lsprov/internal/worktree"
)

// ReleaseSource provides latest-release lookups.
type ReleaseSource interface {
	LatestRelease(ctx context.Context, repo string, opts github.Options) (*github.Release, error)
}

// Fetcher downloads and unpacks one release archive.
type Fetcher interface {
	FetchAndExtract(ctx context.Context, url, destDir string, kind binary.ArchiveKind) error
}

// Config holds configuration for the resolver.
type Config struct {
	// Settings describes the server to provision (required).
	Settings *config.Settings

	// Platform is the host platform (required).
	Platform *platform.Info

	// Source is the release source. Defaults to the GitHub API.
	Source ReleaseSource

	// Fetcher downloads release archives. Defaults to a binary.Manager
	// honoring Settings.Server.Keyring.
	Fetcher Fetcher

	// Status receives installation status reports. Defaults to a no-op.
	Status StatusSink

	// Logger receives structured diagnostics. Defaults to a no-op.
	Logger logging.Logger
}

// Resolver resolves a language-server binary path. One resolver serves
// one server product and caches its resolved path for the life of the
// process. Not safe for concurrent use.
type Resolver struct {
	settings *config.Settings
	platform *platform.Info
	workDir  string
	source   ReleaseSource
	fetcher  Fetcher
	status   StatusSink
	log      logging.Logger

	// cachedPath is the last successfully resolved binary, re-validated
	// with a stat on every use.
	cachedPath string
}

// New creates a resolver.
func New(cfg Config) (*Resolver, error) {
	if cfg.Settings == nil {
		return nil, fmt.Errorf("Settings is required")
	}
	if cfg.Platform == nil {
		return nil, fmt.Errorf("Platform is required")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	workDir := cfg.Settings.Options.WorkDir
	if workDir == "" {
		workDir = "."
	}

	r := &Resolver{
		settings: cfg.Settings,
		platform: cfg.Platform,
		workDir:  workDir,
		source:   cfg.Source,
		fetcher:  cfg.Fetcher,
		status:   cfg.Status,
		log:      cfg.Logger,
	}

	if r.source == nil {
		r.source = github.NewClient()
	}
	if r.fetcher == nil {
		r.fetcher = binary.NewManager(binary.ManagerConfig{
			KeyringPath: cfg.Settings.Server.Keyring,
		})
	}
	if r.status == nil {
		r.status = NopSink{}
	}
	if r.log == nil {
		r.log = logging.Nop()
	}

	return r, nil
}

// product returns the server's binary and asset base name.
func (r *Resolver) product() string {
	return r.settings.Server.Name
}

// Resolve returns the path to a usable server binary, downloading one if
// necessary. See the package documentation for the stage order.
func (r *Resolver) Resolve(ctx context.Context, serverID string, wt worktree.Worktree) (string, error) {
	// A user-managed installation always takes precedence; no version
	// comparison against it, no network.
	if path, ok := wt.Which(r.product()); ok {
		r.log.Debug("using binary from search path", "server", serverID, "path", path)
		return path, nil
	}

	if r.cachedPath != "" {
		if info, err := os.Stat(r.cachedPath); err == nil && info.Mode().IsRegular() {
			return r.cachedPath, nil
		}
	}

	exeSuffix := r.platform.ExeSuffix()

	r.status.Report(serverID, StatusCheckingForUpdate)

	release, err := r.source.LatestRelease(ctx, r.settings.Server.Repository, github.Options{
		RequireAssets: true,
		PreRelease:    r.settings.Server.PreRelease,
	})
	if err != nil {
		r.log.Warn("release lookup failed, looking for cached binary",
			"server", serverID, "repository", r.settings.Server.Repository, "error", err)
		if path, ok := latestInstalled(r.workDir, r.product(), exeSuffix); ok {
			r.log.Info("using cached binary", "server", serverID, "path", path)
			return path, nil
		}
		return "", fmt.Errorf("release lookup failed and %w: %v", ErrNoCachedBinary, err)
	}

	name, err := assetName(r.product(), r.platform)
	if err != nil {
		return "", err
	}

	var asset *github.Asset
	for i := range release.Assets {
		if release.Assets[i].Name == name {
			asset = &release.Assets[i]
			break
		}
	}
	if asset == nil {
		return "", fmt.Errorf("%w: no asset named %q in release %s", ErrAssetNotFound, name, release.TagName)
	}

	versionDir := installDirName(r.product(), release.Version())
	binaryPath := filepath.Join(r.workDir, versionDir, r.product()+exeSuffix)

	if info, err := os.Stat(binaryPath); err != nil || !info.Mode().IsRegular() {
		r.status.Report(serverID, StatusDownloading)

		destDir := filepath.Join(r.workDir, versionDir)
		kind := archiveKindFor(r.platform.OS)
		if err := r.fetcher.FetchAndExtract(ctx, asset.BrowserDownloadURL, destDir, kind); err != nil {
			return "", fmt.Errorf("failed to download %s: %w", name, err)
		}

		if err := binary.SetExecutable(binaryPath); err != nil {
			return "", err
		}

		r.removeStaleVersions(versionDir)
	}

	r.cachedPath = binaryPath
	return binaryPath, nil
}

// Command returns the command the host should run to start the server.
func (r *Resolver) Command(ctx context.Context, serverID string, wt worktree.Worktree) (*Command, error) {
	path, err := r.Resolve(ctx, serverID, wt)
	if err != nil {
		return nil, err
	}

	return &Command{
		Path: path,
		Args: []string{"stdio"},
		Env:  map[string]string{},
	}, nil
}

// Command describes how to launch the resolved server.
type Command struct {
	Path string
	Args []string
	Env  map[string]string
}

// removeStaleVersions deletes every working-directory entry other than
// keep. Cleanup is advisory: failures are logged and never surfaced, so
// a stubborn stale directory cannot turn a successful install into an
// error.
func (r *Resolver) removeStaleVersions(keep string) {
	entries, err := os.ReadDir(r.workDir)
	if err != nil {
		r.log.Warn("stale version cleanup skipped", "error", err)
		return
	}

	for _, entry := range entries {
		if entry.Name() == keep {
			continue
		}
		path := filepath.Join(r.workDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			r.log.Debug("stale version cleanup failed", "path", path, "error", err)
		}
	}
}
