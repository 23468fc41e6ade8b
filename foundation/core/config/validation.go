// File: validation.go
// Title: Configuration Validation
// Description: Collects validation problems for a decoded configuration and
//              turns them into a single coded error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Rule-based validation of the map-based config
// - 2026-10-18 v0.2.0: Result collector used by typed config structs

package config

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Errors []string `json:"errors,omitempty"`
}

// Valid reports whether no problem was recorded
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Addf records a problem for the given key
func (r *ValidationResult) Addf(key, format string, args ...interface{}) {
	r.Errors = append(r.Errors, key+": "+fmt.Sprintf(format, args...))
}

// Require records a problem when value is blank
func (r *ValidationResult) Require(key, value string) {
	if strings.TrimSpace(value) == "" {
		r.Addf(key, "is required")
	}
}

// OneOf records a problem when value is not one of allowed
func (r *ValidationResult) OneOf(key, value string, allowed ...string) {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return
		}
	}
	r.Addf(key, "must be one of %s, got %q", strings.Join(allowed, ", "), value)
}

// Range records a problem when value lies outside [min, max]
func (r *ValidationResult) Range(key string, value, min, max int) {
	if value < min || value > max {
		r.Addf(key, "must be between %d and %d, got %d", min, max, value)
	}
}

// Err returns nil when valid, otherwise a CodeInvalidConfig error listing every problem
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", len(r.Errors))
}
