package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("lsprov %s\n", Version)
			return
		case "resolve":
			if err := runResolve(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "command":
			if err := runCommand(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "clean":
			if err := runClean(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("lsprov - language-server binary provisioner")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lsprov resolve [options]   Resolve (and install if needed) the server binary")
	fmt.Println("  lsprov command [options]   Print the server launch command as JSON")
	fmt.Println("  lsprov clean [options]     Remove all but the newest installed version")
	fmt.Println("  lsprov version             Print the lsprov version")
	fmt.Println()
	fmt.Println("Options (resolve, command, clean):")
	fmt.Println("  -config PATH   Settings file (default: $LSPROV_CONFIG or ~/.config/lsprov/settings.lua)")
	fmt.Println("  -dir PATH      Worktree directory (default: current directory)")
	fmt.Println("  -id ID         Installation id reported to the status sink")
	fmt.Println("  -verbose       Enable debug logging")
}
