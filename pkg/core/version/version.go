// ============================================================================
// rubic - Ruby front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the front end and its tools
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all rubic components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Lexer      = "0.1.0"
	Parser     = "0.1.0"
	REPL       = "0.1.0"
	Playground = "0.1.0"
	CrossCheck = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/rubic/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "repl":
		return REPL
	case "playground":
		return Playground
	case "crosscheck":
		return CrossCheck
	default:
		return Platform
	}
}

// Info is the build description reported by `rubic version` and the
// playground's version endpoint
type Info struct {
	Version    string            `json:"version" yaml:"version"`
	Commit     string            `json:"commit" yaml:"commit"`
	BuildDate  string            `json:"build_date" yaml:"build_date"`
	GoVersion  string            `json:"go_version" yaml:"go_version"`
	Components map[string]string `json:"components" yaml:"components"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:   Platform,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Components: map[string]string{
			"lexer":      Lexer,
			"parser":     Parser,
			"repl":       REPL,
			"playground": Playground,
			"crosscheck": CrossCheck,
		},
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("rubic %s (commit %s, built %s, %s)", i.Version, i.Commit, i.BuildDate, i.GoVersion)
}
