// Package config provides Lua settings parsing for lsprov.
//
// Settings are declarative Lua files executed in a sandboxed VM with a
// read-only platform table injected, so a settings file can vary per
// platform without lsprov growing platform-specific options:
//
//	server = {
//	    name = "neocmakelsp",
//	    repository = "Decodetalkers/neocmakelsp",
//	    prerelease = false,
//	}
//
//	options = {
//	    work_dir = home .. "/.local/share/lsprov",
//	}
//
// All fields are optional; the defaults target the neocmakelsp language
// server. The sandbox removes os, io, and code-loading functions, so a
// settings file cannot perform side effects.
package config
