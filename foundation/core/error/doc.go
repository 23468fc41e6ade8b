// Package error provides structured errors for rubic.
//
// Package: error
// Title: rubic Error Handling
// Description: Errors with a code, a severity, an operation name and free-form
//
//	details. The code decides the CLI exit status and the HTTP
//	status of the playground server. Parse diagnostics are not
//	errors; they are folded into a CodeSyntax error only when a
//	caller asks for it.
//
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Code set for the language front end
//
// Usage:
//
//	import mdwerror "github.com/msto63/rubic/foundation/core/error"
//
//	err := mdwerror.New("source exceeds maximum length").
//		WithCode(mdwerror.CodeInputTooLarge).
//		WithDetail("length", len(src)).
//		WithOperation("rubic.Parse")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInputTooLarge) {
//		// reject the request
//	}
package error
