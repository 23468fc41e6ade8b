// File: doc.go
// Title: rubic Parser Package Documentation
// Description: Recursive descent parser turning rubic tokens into an AST.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

/*
Package parser builds a rubic ast.Program from the token stream of a lexer.

The parser holds two tokens at a time, current and peek, and dispatches on
current:

  - IDENT followed by ASSIGN starts an assignment
  - IDENT followed by a separator is a bare identifier
  - INT is an integer value; the rest of its statement is consumed
  - RETURN starts a return, with or without a value

INT literals are converted to int64 rather than left as a stub 0. A literal
that does not fit records an integer-range diagnostic and keeps its node
with the value 0.

A NEWLINE ends a statement exactly like SEMICOLON does.

Anything else is skipped. Malformed input is reported through Diagnostic
values instead of errors: a failing production records what it expected and
parsing resumes at the next token, so ParseProgram always returns a program.

Example:

	p := parser.New(lexer.New("x = 5\nreturn x"), parser.Options{})
	program, diags := p.ParseProgram()
*/
package parser
