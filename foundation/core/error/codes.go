// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across rubic. Codes classify
//              failures for CLI exit handling, HTTP status mapping in the
//              playground server and structured logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Reduced to the codes the language front end and its tools raise

package error

import "net/http"

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Source handling
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"
	CodeSyntax        Code = "SYNTAX"

	// Storage
	CodeStorage Code = "STORAGE"

	// Services
	CodeUnavailable Code = "UNAVAILABLE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeInputTooLarge, CodeSyntax, CodeStorage, CodeUnavailable,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInputTooLarge, CodeSyntax:
		return "source"
	case CodeStorage:
		return "storage"
	case CodeUnavailable, CodeTimeout:
		return "service"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// HTTPStatus returns the HTTP status code the playground answers with
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput, CodeSyntax:
		return http.StatusBadRequest
	case CodeInputTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax:
		return 1
	case CodeInvalidInput, CodeInputTooLarge, CodeNotFound:
		return 2
	case CodeConfigError, CodeInvalidConfig:
		return 3
	default:
		return 4
	}
}
