package main

import (
	"context"
	"fmt"
)

// runClean removes stale installed versions, keeping only the newest.
func runClean(args []string) error {
	var opts cliOptions
	fs := newFlagSet("clean", &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	r, _, log, err := buildResolver(ctx, &opts)
	if err != nil {
		return err
	}

	kept, err := r.CleanStale()
	if err != nil {
		return err
	}

	log.Debug("removed stale versions", "kept", kept)
	fmt.Println(kept)
	return nil
}
