// File: token.go
// Title: rubic Token Model
// Description: Token types and the Token value produced by the lexer. A token
//              carries its type, the exact source text it was scanned from and
//              its position in the source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token model

package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the category of a scanned token
type Type int

const (
	// Special tokens
	ILLEGAL Type = iota // any byte the lexer does not recognise
	EOF                 // end of input, emitted exactly once

	// Literals
	IDENT // foo, empty?, save!
	INT   // 42

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /
	LT       // <
	GT       // >
	EQ       // ==
	NOTEQ    // !=

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	NEWLINE   // \n, \r or \r\n

	// Groupings
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Keywords
	DEF
	END
	DO
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

// EOFLiteral is the literal carried by the EOF token
const EOFLiteral = "\x00"

var typeNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOTEQ:     "NOTEQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	NEWLINE:   "NEWLINE",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	DEF:       "DEF",
	END:       "END",
	DO:        "DO",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the upper-case name of the token type
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "UNKNOWN(" + strconv.Itoa(int(t)) + ")"
}

// MarshalText encodes the type by name for JSON and YAML output
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name produced by MarshalText
func (t *Type) UnmarshalText(text []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(text)))
	for i, n := range typeNames {
		if n == name {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token type %q", string(text))
}

// IsKeyword reports whether the type is one of the reserved words
func (t Type) IsKeyword() bool {
	return t >= DEF && t <= RETURN
}

// IsOperator reports whether the type is an operator
func (t Type) IsOperator() bool {
	return t >= ASSIGN && t <= NOTEQ
}

// IsSeparator reports whether the type ends a statement
func (t Type) IsSeparator() bool {
	return t == SEMICOLON || t == NEWLINE || t == EOF
}

// Category groups token types for display
func (t Type) Category() string {
	switch {
	case t == ILLEGAL || t == EOF:
		return "special"
	case t == IDENT || t == INT:
		return "literal"
	case t.IsOperator():
		return "operator"
	case t >= COMMA && t <= NEWLINE:
		return "delimiter"
	case t >= LPAREN && t <= RBRACE:
		return "grouping"
	case t.IsKeyword():
		return "keyword"
	default:
		return "unknown"
	}
}

// Types returns every token type in declaration order
func Types() []Type {
	types := make([]Type, len(typeNames))
	for i := range typeNames {
		types[i] = Type(i)
	}
	return types
}

// Token is a lexical token with its source position
type Token struct {
	Type    Type   `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`     // 1-based
	Column  int    `json:"column" yaml:"column"` // 1-based, in bytes
	Offset  int    `json:"offset" yaml:"offset"` // 0-based byte offset
}

// New creates a token without position information
func New(typ Type, literal string) Token {
	return Token{Type: typ, Literal: literal}
}

// Is reports whether the token has one of the given types
func (t Token) Is(types ...Type) bool {
	for _, typ := range types {
		if t.Type == typ {
			return true
		}
	}
	return false
}

// Display returns the literal in a form suitable for messages: EOF for the
// end of input and escaped control characters.
func (t Token) Display() string {
	if t.Type == EOF {
		return "EOF"
	}
	quoted := strconv.Quote(t.Literal)
	return quoted[1 : len(quoted)-1]
}

// Position returns "line:column"
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// String returns TYPE(literal), or EOF
func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Display())
}
