package main

import (
	"context"
	"fmt"
)

// runResolve resolves the server binary and prints its path.
func runResolve(args []string) error {
	var opts cliOptions
	fs := newFlagSet("resolve", &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	r, wt, log, err := buildResolver(ctx, &opts)
	if err != nil {
		return err
	}

	path, err := r.Resolve(ctx, opts.serverID, wt)
	if err != nil {
		return err
	}

	log.Debug("resolved server binary", "path", path)
	fmt.Println(path)
	return nil
}
