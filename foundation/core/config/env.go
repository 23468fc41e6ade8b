// File: env.go
// Title: Environment Variable Support
// Description: Loads .env files, expands ${VAR} and ~ in configured values
//              and reads typed overrides from prefixed environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Environment overrides in the map-based config
// - 2026-10-18 v0.2.0: .env loading via godotenv, typed prefix lookups

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

// LoadDotEnv loads each existing file into the process environment.
// Missing files are skipped; variables already set are not overwritten.
// It returns the files that were loaded.
func LoadDotEnv(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var loaded []string
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return loaded, mdwerror.Wrap(err, "failed to load env file").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.LoadDotEnv").
				WithDetail("path", file)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}

// ExpandPath expands ${VAR} references and a leading ~ in path
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Env reads environment variables sharing a prefix, e.g. RUBIC_LOG_LEVEL
type Env struct {
	Prefix string
}

// Key returns the full variable name for key: log_level -> RUBIC_LOG_LEVEL
func (e Env) Key(key string) string {
	name := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	if e.Prefix == "" {
		return name
	}
	return strings.ToUpper(e.Prefix) + "_" + name
}

// String returns the variable's value if it is set and not blank
func (e Env) String(key string) (string, bool) {
	value, ok := os.LookupEnv(e.Key(key))
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Bool returns the variable parsed with strconv.ParseBool
func (e Env) Bool(key string) (bool, bool) {
	value, ok := e.String(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, false
	}
	return b, true
}

// Int returns the variable parsed as a base 10 integer
func (e Env) Int(key string) (int, bool) {
	value, ok := e.String(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}
