// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config decodes TOML and YAML configuration into typed
//              structs, discovers configuration files, loads .env files and
//              reads prefixed environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Typed decoding, godotenv support

/*
Package config provides the generic configuration layer used by rubic.

The typed application configuration lives in pkg/core/config and is built on
top of this package:

	var cfg MyConfig
	if err := config.DecodeFile("rubic.toml", &cfg); err != nil {
		return err
	}

	if _, err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	env := config.Env{Prefix: "RUBIC"}
	if level, ok := env.String("log_level"); ok {
		cfg.LogLevel = level
	}

File discovery:

	path, err := config.FindConfigFile(config.DefaultDiscoveryOptions("rubic"))

Errors carry mdwerror codes: CodeNotFound for missing files, CodeConfigError
for unreadable or malformed files and CodeInvalidConfig for failed validation.
*/
package config
