package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Lexer", Lexer},
		{"Parser", Parser},
		{"REPL", REPL},
		{"Playground", Playground},
		{"CrossCheck", CrossCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.version == "" {
				t.Errorf("%s version is empty", tt.name)
			}
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"lexer", "lexer", Lexer},
		{"parser", "parser", Parser},
		{"repl", "repl", REPL},
		{"playground", "playground", Playground},
		{"crosscheck", "crosscheck", CrossCheck},
		{"unknown component", "unknown", Platform},
		{"empty component", "", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComponentVersion(tt.component)
			if result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Platform {
		t.Errorf("Version = %q, want %q", info.Version, Platform)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	for name, v := range info.Components {
		if v != ComponentVersion(name) {
			t.Errorf("component %s = %q, want %q", name, v, ComponentVersion(name))
		}
	}
	if !strings.HasPrefix(info.String(), "rubic "+Platform+" (commit ") {
		t.Errorf("String() = %q", info.String())
	}
}
