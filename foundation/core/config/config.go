// File: config.go
// Title: Configuration Decoding
// Description: Decodes TOML and YAML configuration into typed structs. The
//              format follows the file extension; TOML is the default.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Struct decoding replaces the map-based accessor API

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the format from the file extension
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Decode parses content in the given format into v
func Decode(content []byte, format Format, v interface{}) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), v); err != nil {
			return mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Decode")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, v); err != nil {
			return mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Decode")
		}
	default:
		return mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Decode")
	}
	return nil
}

// DecodeFile reads filePath and decodes it into v
func DecodeFile(filePath string, v interface{}) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.DecodeFile").
			WithDetail("path", filePath)
	}

	if err := Decode(content, DetectFormat(filePath), v); err != nil {
		return mdwerror.Wrap(err, "failed to decode config file").
			WithDetail("path", filePath)
	}
	return nil
}

// Encode renders v in the given format
func Encode(v interface{}, format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, mdwerror.Wrap(err, "YAML encode error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Encode")
		}
		if err := enc.Close(); err != nil {
			return nil, mdwerror.Wrap(err, "YAML encode error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Encode")
		}
	default:
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, mdwerror.Wrap(err, "TOML encode error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Encode")
		}
	}

	return buf.Bytes(), nil
}
