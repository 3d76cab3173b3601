package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TamsinVexley/lsprov/internal/config"
	"github.com/TamsinVexley/lsprov/internal/logging"
	"github.com/TamsinVexley/lsprov/internal/platform"
	"github.com/TamsinVexley/lsprov/internal/resolver"
	"github.com/TamsinVexley/lsprov/internal/worktree"
)

// cliOptions holds the flags shared by all subcommands.
type cliOptions struct {
	configPath string
	dir        string
	serverID   string
	verbose    bool
}

// newFlagSet builds the shared flag set for a subcommand.
func newFlagSet(name string, opts *cliOptions) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", defaultConfigPath(), "path to the settings file")
	fs.StringVar(&opts.dir, "dir", ".", "worktree directory")
	fs.StringVar(&opts.serverID, "id", "lsprov-cli", "installation id reported to the status sink")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	return fs
}

// defaultConfigPath returns $LSPROV_CONFIG or the settings file under the
// user's config directory.
func defaultConfigPath() string {
	if env := os.Getenv("LSPROV_CONFIG"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.lua"
	}
	return filepath.Join(home, ".config", "lsprov", "settings.lua")
}

// buildResolver wires detection, settings, and logging into a resolver
// plus the worktree for opts.dir.
func buildResolver(ctx context.Context, opts *cliOptions) (*resolver.Resolver, worktree.Worktree, logging.Logger, error) {
	log, err := logging.NewCLI(opts.verbose)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("set up logging: %w", err)
	}

	detector := platform.NewDetector()

	settings, err := config.NewParser(detector).ParseFile(ctx, opts.configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load settings: %w", err)
	}

	if envDir := os.Getenv("LSPROV_WORK_DIR"); envDir != "" {
		settings.Options.WorkDir = envDir
	}

	info, err := detector.Detect(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	r, err := resolver.New(resolver.Config{
		Settings: settings,
		Platform: info,
		Status:   resolver.LogSink{Log: log},
		Logger:   log,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	wt, err := worktree.Open(opts.dir)
	if err != nil {
		return nil, nil, nil, err
	}

	return r, wt, log, nil
}
