package config

import (
	"fmt"
	"strings"
)

// Default settings target the neocmakelsp language server.
const (
	DefaultServerName = "neocmakelsp"
	DefaultRepository = "Decodetalkers/neocmakelsp"
)

// Settings is the complete lsprov configuration.
type Settings struct {
	// Server describes the language server to provision.
	Server ServerSettings

	// Options contains general lsprov options.
	Options Options
}

// ServerSettings describes a language server release source.
type ServerSettings struct {
	// Name is the server's binary and release-asset base name.
	Name string

	// Repository is the GitHub repository in "owner/repo" form.
	Repository string

	// PreRelease allows resolving prerelease versions.
	PreRelease bool

	// Keyring is an optional path to an OpenPGP public key used to
	// verify downloaded archives. Verification is skipped when empty.
	Keyring string
}

// Options contains general lsprov options.
type Options struct {
	// WorkDir is the directory holding versioned install directories.
	// Defaults to the process working directory when empty.
	WorkDir string
}

// ValidationError describes an invalid settings field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid setting %s: %s", e.Field, e.Message)
}

// Default returns settings for the default language server.
func Default() *Settings {
	return &Settings{
		Server: ServerSettings{
			Name:       DefaultServerName,
			Repository: DefaultRepository,
		},
	}
}

// Validate performs basic validation on Settings.
func (s *Settings) Validate() error {
	if s.Server.Name == "" {
		return &ValidationError{Field: "server.name", Message: "must not be empty"}
	}
	if strings.ContainsAny(s.Server.Name, `/\`) {
		return &ValidationError{Field: "server.name", Message: "must not contain path separators"}
	}

	parts := strings.Split(s.Server.Repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return &ValidationError{Field: "server.repository", Message: `must be in "owner/repo" form`}
	}

	return nil
}
