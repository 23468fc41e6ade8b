// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first existing
//              configuration file with a known base name and extension.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: Discovery returns the path, decoding is left to the caller

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

// DiscoveryOptions defines where to look for configuration files
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions returns options for a config named name in the
// working directory and in ~/.<name>
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+name))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	var paths []string
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that exists and is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searched", strings.Join(candidates, ", "))
}
