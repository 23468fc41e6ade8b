// File: lexer.go
// Title: rubic Lexical Analyzer
// Description: Converts rubic source text into a finite stream of tokens.
//              Newlines are significant and produce NEWLINE tokens; spaces
//              and tabs are skipped. The stream ends with exactly one EOF
//              token. Unknown characters become ILLEGAL tokens, the lexer
//              itself never fails.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial lexer implementation

package lexer

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/msto63/rubic/foundation/rubic/token"
)

// Lexer performs lexical analysis of rubic source
type Lexer struct {
	input    string // Source text
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination, 0 at end of input
	line     int    // Line of the current char (1-based)
	column   int    // Column of the current char (1-based)
	done     bool   // EOF has been emitted
}

// singleChar maps characters that always form a token on their own
var singleChar = map[byte]token.Type{
	'+':  token.PLUS,
	'-':  token.MINUS,
	'*':  token.ASTERISK,
	'/':  token.SLASH,
	'<':  token.LT,
	'>':  token.GT,
	',':  token.COMMA,
	';':  token.SEMICOLON,
	'(':  token.LPAREN,
	')':  token.RPAREN,
	'{':  token.LBRACE,
	'}':  token.RBRACE,
	'\n': token.NEWLINE,
}

// New creates a lexer for the given source
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
	l.readPos = 1
	if len(input) > 0 {
		l.ch = input[0]
	}
	return l
}

// Source returns the text being scanned
func (l *Lexer) Source() string {
	return l.input
}

// Done reports whether the EOF token has been returned
func (l *Lexer) Done() bool {
	return l.done
}

// Next returns the next token. After the EOF token has been returned it
// reports false on every call.
func (l *Lexer) Next() (token.Token, bool) {
	if l.done {
		return token.Token{}, false
	}

	l.skipWhitespace()

	line, column, pos := l.line, l.column, l.position

	if l.position >= len(l.input) {
		l.done = true
		return token.Token{
			Type:    token.EOF,
			Literal: token.EOFLiteral,
			Line:    line,
			Column:  column,
			Offset:  len(l.input),
		}, true
	}

	var typ token.Type
	var literal string

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			typ, literal = token.EQ, l.read(2)
		} else {
			typ, literal = token.ASSIGN, l.read(1)
		}
	case '!':
		if l.peekChar() == '=' {
			typ, literal = token.NOTEQ, l.read(2)
		} else {
			typ, literal = token.BANG, l.read(1)
		}
	case '\r':
		if l.peekChar() == '\n' {
			typ, literal = token.NEWLINE, l.read(2)
		} else {
			typ, literal = token.NEWLINE, l.read(1)
		}
	default:
		if single, ok := singleChar[l.ch]; ok {
			typ, literal = single, l.read(1)
		} else if isIdentStart(l.ch) {
			literal = l.readIdentifier()
			typ = token.Lookup(literal)
		} else if isDigit(l.ch) {
			typ, literal = token.INT, l.readNumber()
		} else if l.ch >= utf8.RuneSelf {
			_, size := utf8.DecodeRuneInString(l.input[l.position:])
			typ, literal = token.ILLEGAL, l.read(size)
		} else {
			typ, literal = token.ILLEGAL, l.read(1)
		}
	}

	return token.Token{Type: typ, Literal: literal, Line: line, Column: column, Offset: pos}, true
}

// All returns an iterator over the remaining tokens, EOF included
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize drains the lexer and returns every remaining token
func (l *Lexer) Tokenize() []token.Token {
	return slices.Collect(l.All())
}

// Tokenize is a convenience function that scans src completely
func Tokenize(src string) []token.Token {
	return New(src).Tokenize()
}

// readChar advances to the next character and keeps line and column in step
func (l *Lexer) readChar() {
	if l.position >= len(l.input) {
		return
	}

	// A lone \r counts as a line break, \r\n breaks the line at the \n
	if l.ch == '\n' || (l.ch == '\r' && l.peekChar() != '\n') {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// read consumes n characters and returns them
func (l *Lexer) read(n int) string {
	start := l.position
	for i := 0; i < n; i++ {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readIdentifier reads letters, underscores, '!' and '?'
func (l *Lexer) readIdentifier() string {
	start := l.position
	for l.position < len(l.input) && isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a run of decimal digits
func (l *Lexer) readNumber() string {
	start := l.position
	for l.position < len(l.input) && isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips spaces and tabs; newlines are tokens
func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) && (l.ch == ' ' || l.ch == '\t') {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isIdentStart covers '?' as well; '!' never reaches it because the
// operator branch takes it first.
func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '?'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '!' || ch == '?'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
