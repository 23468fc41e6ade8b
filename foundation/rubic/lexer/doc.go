// File: doc.go
// Title: rubic Lexer Package Documentation
// Description: Lexical analyzer for the rubic language front end.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer implementation

// Package lexer converts rubic source text into tokens. Newlines are
// significant, spaces and tabs are not, and every stream ends with exactly
// one EOF token. Characters the language does not know become ILLEGAL tokens
// for the parser to report.
//
// INT tokens carry the digits verbatim and may exceed 64 bits. The parser
// converts them to int64 and reports the ones that do not fit.
package lexer
