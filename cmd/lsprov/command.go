package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// serverCommand is the JSON shape handed to the host application.
type serverCommand struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// runCommand resolves the server binary and prints the launch command as
// JSON on stdout.
func runCommand(args []string) error {
	var opts cliOptions
	fs := newFlagSet("command", &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	r, wt, _, err := buildResolver(ctx, &opts)
	if err != nil {
		return err
	}

	cmd, err := r.Command(ctx, opts.serverID, wt)
	if err != nil {
		return err
	}

	out := serverCommand{
		Command: cmd.Path,
		Args:    cmd.Args,
		Env:     cmd.Env,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode command: %w", err)
	}
	return nil
}
