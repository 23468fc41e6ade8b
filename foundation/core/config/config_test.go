package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

type sample struct {
	Name   string   `toml:"name" yaml:"name"`
	Port   int      `toml:"port" yaml:"port"`
	Strict bool     `toml:"strict" yaml:"strict"`
	Tags   []string `toml:"tags" yaml:"tags"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"rubic.toml", FormatTOML},
		{"rubic.yaml", FormatYAML},
		{"RUBIC.YML", FormatYAML},
		{"rubic.conf", FormatTOML},
		{"rubic", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "c.toml",
			content: `name = "rubic"
port = 8087
strict = true
tags = ["a", "b"]
`,
		},
		{
			name: "yaml",
			file: "c.yaml",
			content: `name: rubic
port: 8087
strict: true
tags: [a, b]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			var got sample
			require.NoError(t, DecodeFile(path, &got))
			assert.Equal(t, sample{Name: "rubic", Port: 8087, Strict: true, Tags: []string{"a", "b"}}, got)
		})
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	dir := t.TempDir()

	var got sample
	err := DecodeFile(filepath.Join(dir, "missing.toml"), &got)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	bad := writeFile(t, dir, "bad.toml", "name = ")
	err = DecodeFile(bad, &got)
	require.Error(t, err)
	assert.Equal(t, mdwerror.CodeConfigError, mdwerror.GetCode(err))
}

func TestEncode_RoundTrip(t *testing.T) {
	in := sample{Name: "rubic", Port: 1, Strict: true, Tags: []string{"x"}}

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Encode(in, format)
			require.NoError(t, err)

			var out sample
			require.NoError(t, Decode(data, format, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, second, "rubic.yaml", "name: second\n")

	opts := DiscoveryOptions{
		Paths:     []string{first, second},
		Filenames: []string{"rubic"},
	}

	path, err := FindConfigFile(opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "rubic.yaml"), path)

	writeFile(t, first, "rubic.toml", "name = \"first\"\n")
	path, err = FindConfigFile(opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "rubic.toml"), path)

	_, err = FindConfigFile(DiscoveryOptions{Paths: []string{t.TempDir()}, Filenames: []string{"none"}})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))
}

func TestListPossibleConfigFiles(t *testing.T) {
	files := ListPossibleConfigFiles(DiscoveryOptions{Paths: []string{"a"}, Filenames: []string{"rubic"}})
	assert.Equal(t, []string{
		filepath.Join("a", "rubic.toml"),
		filepath.Join("a", "rubic.yaml"),
		filepath.Join("a", "rubic.yml"),
	}, files)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "RUBIC_TEST_DOTENV=from-file\nRUBIC_TEST_PRESET=from-file\n")
	t.Setenv("RUBIC_TEST_PRESET", "from-env")
	t.Setenv("RUBIC_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("RUBIC_TEST_DOTENV"))

	loaded, err := LoadDotEnv(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, []string{path}, loaded)
	assert.Equal(t, "from-file", os.Getenv("RUBIC_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("RUBIC_TEST_PRESET"))
}

func TestEnv(t *testing.T) {
	env := Env{Prefix: "rubic"}
	t.Setenv("RUBIC_LOG_LEVEL", "debug")
	t.Setenv("RUBIC_SILENT_SKIP", "true")
	t.Setenv("RUBIC_SERVER_PORT", "9000")
	t.Setenv("RUBIC_BROKEN_PORT", "ninety")
	t.Setenv("RUBIC_BLANK", "  ")

	assert.Equal(t, "RUBIC_SERVER_PORT", env.Key("server.port"))

	level, ok := env.String("log_level")
	assert.True(t, ok)
	assert.Equal(t, "debug", level)

	skip, ok := env.Bool("silent_skip")
	assert.True(t, ok)
	assert.True(t, skip)

	port, ok := env.Int("server_port")
	assert.True(t, ok)
	assert.Equal(t, 9000, port)

	_, ok = env.Int("broken_port")
	assert.False(t, ok)

	_, ok = env.String("blank")
	assert.False(t, ok)

	_, ok = env.String("unset_variable")
	assert.False(t, ok)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("RUBIC_TEST_DIR", "/srv/rubic")

	assert.Equal(t, filepath.Join(home, ".rubic", "history.db"), ExpandPath("~/.rubic/history.db"))
	assert.Equal(t, "/srv/rubic/history.db", ExpandPath("${RUBIC_TEST_DIR}/history.db"))
	assert.Equal(t, "relative.db", ExpandPath("relative.db"))
}

func TestValidationResult(t *testing.T) {
	var r ValidationResult
	assert.True(t, r.Valid())
	assert.NoError(t, r.Err())

	r.Require("repl.prompt", " ")
	r.OneOf("general.log_format", "xml", "console", "text", "json")
	r.Range("server.port", 70000, 1, 65535)
	r.OneOf("general.log_level", "INFO", "info")

	assert.False(t, r.Valid())
	require.Len(t, r.Errors, 3)
	err := r.Err()
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
	assert.Contains(t, err.Error(), "server.port: must be between 1 and 65535, got 70000")
}
