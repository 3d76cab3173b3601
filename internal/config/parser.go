package config

import (
	"context"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/TamsinVexley/lsprov/internal/platform"
)

// Parser parses Lua settings with platform detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a settings parser with the given platform detector.
// A nil detector skips platform-table injection.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseError represents a settings parsing error with a friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// ParseFile parses a Lua settings file. A missing file is not an error;
// defaults are returned.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	return p.ParseString(ctx, string(data))
}

// ParseString parses Lua settings from a string. This is useful for
// testing and in-memory settings generation.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Settings, error) {
	L := newSandboxedVM()
	defer L.Close()

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		L.SetGlobal("home", lua.LString(home))
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	settings, err := extractSettings(L)
	if err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// extractSettings pulls the settings globals out of an executed Lua state.
// Missing globals and fields keep their defaults.
func extractSettings(L *lua.LState) (*Settings, error) {
	settings := Default()

	if server := L.GetGlobal("server"); server != lua.LNil {
		tbl, ok := server.(*lua.LTable)
		if !ok {
			return nil, &ParseError{Message: "invalid settings", Detail: "server must be a table"}
		}
		setString(tbl, "name", &settings.Server.Name)
		setString(tbl, "repository", &settings.Server.Repository)
		setString(tbl, "keyring", &settings.Server.Keyring)
		setBool(tbl, "prerelease", &settings.Server.PreRelease)
	}

	if options := L.GetGlobal("options"); options != lua.LNil {
		tbl, ok := options.(*lua.LTable)
		if !ok {
			return nil, &ParseError{Message: "invalid settings", Detail: "options must be a table"}
		}
		setString(tbl, "work_dir", &settings.Options.WorkDir)
	}

	return settings, nil
}

func setString(tbl *lua.LTable, field string, dst *string) {
	if v, ok := tbl.RawGetString(field).(lua.LString); ok {
		*dst = string(v)
	}
}

func setBool(tbl *lua.LTable, field string, dst *bool) {
	if v, ok := tbl.RawGetString(field).(lua.LBool); ok {
		*dst = bool(v)
	}
}
