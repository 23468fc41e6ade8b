// File: lexer_test.go
// Title: rubic Lexer Unit Tests
// Description: Unit tests for the rubic lexical analyzer covering operators,
//              keywords, identifiers, integers, newline handling, position
//              tracking and illegal input.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/rubic/foundation/rubic/token"
)

// kinds strips positions so expectations stay readable
func kinds(toks []token.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		out[i] = token.New(tok.Type, tok.Literal)
	}
	return out
}

func eof() token.Token {
	return token.New(token.EOF, token.EOFLiteral)
}

func TestLexer_SingleCharacters(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"=", token.ASSIGN},
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"!", token.BANG},
		{"/", token.SLASH},
		{"*", token.ASTERISK},
		{"<", token.LT},
		{">", token.GT},
		{";", token.SEMICOLON},
		{",", token.COMMA},
		{"(", token.LPAREN},
		{")", token.RPAREN},
		{"{", token.LBRACE},
		{"}", token.RBRACE},
		{"\n", token.NEWLINE},
		{"\r", token.NEWLINE},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String()+"_"+tt.input, func(t *testing.T) {
			toks := Tokenize(tt.input)
			require.Len(t, toks, 2)
			assert.Equal(t, token.New(tt.expected, tt.input), kinds(toks)[0])
			assert.Equal(t, eof(), kinds(toks)[1])
		})
	}
}

func TestLexer_TwoCharacterOperators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:     "equal",
			input:    "==",
			expected: []token.Token{token.New(token.EQ, "=="), eof()},
		},
		{
			name:     "not equal",
			input:    "!=",
			expected: []token.Token{token.New(token.NOTEQ, "!="), eof()},
		},
		{
			name:  "triple equals",
			input: "===",
			expected: []token.Token{
				token.New(token.EQ, "=="),
				token.New(token.ASSIGN, "="),
				eof(),
			},
		},
		{
			name:  "bang bang",
			input: "!!",
			expected: []token.Token{
				token.New(token.BANG, "!"),
				token.New(token.BANG, "!"),
				eof(),
			},
		},
		{
			name:  "comparison",
			input: "a == b != c",
			expected: []token.Token{
				token.New(token.IDENT, "a"),
				token.New(token.EQ, "=="),
				token.New(token.IDENT, "b"),
				token.New(token.NOTEQ, "!="),
				token.New(token.IDENT, "c"),
				eof(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(Tokenize(tt.input)))
		})
	}
}

func TestLexer_Identifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"def", token.DEF},
		{"end", token.END},
		{"do", token.DO},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"if", token.IF},
		{"else", token.ELSE},
		{"return", token.RETURN},
		{"foobar", token.IDENT},
		{"Foo", token.IDENT},
		{"_private", token.IDENT},
		{"empty?", token.IDENT},
		{"save!", token.IDENT},
		{"a_b!?", token.IDENT},
		{"?x", token.IDENT},
		{"returns", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := Tokenize(tt.input)
			require.Len(t, toks, 2)
			assert.Equal(t, token.New(tt.expected, tt.input), kinds(toks)[0])
			assert.Equal(t, token.EOF, toks[1].Type)
		})
	}
}

func TestLexer_Integers(t *testing.T) {
	for _, input := range []string{"0", "5", "838383", "993322", "00012", "99999999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			toks := Tokenize(input)
			require.Len(t, toks, 2)
			assert.Equal(t, token.New(token.INT, input), kinds(toks)[0])
		})
	}
}

func TestLexer_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "digits end an identifier",
			input: "foo1",
			expected: []token.Token{
				token.New(token.IDENT, "foo"),
				token.New(token.INT, "1"),
				eof(),
			},
		},
		{
			name:  "letters end an integer",
			input: "5abc",
			expected: []token.Token{
				token.New(token.INT, "5"),
				token.New(token.IDENT, "abc"),
				eof(),
			},
		},
		{
			name:  "bang belongs to the identifier",
			input: "x!=y",
			expected: []token.Token{
				token.New(token.IDENT, "x!"),
				token.New(token.ASSIGN, "="),
				token.New(token.IDENT, "y"),
				eof(),
			},
		},
		{
			name:  "leading bang is an operator",
			input: "!ok",
			expected: []token.Token{
				token.New(token.BANG, "!"),
				token.New(token.IDENT, "ok"),
				eof(),
			},
		},
		{
			name:  "crlf is one newline",
			input: "a\r\nb",
			expected: []token.Token{
				token.New(token.IDENT, "a"),
				token.New(token.NEWLINE, "\r\n"),
				token.New(token.IDENT, "b"),
				eof(),
			},
		},
		{
			name:  "lfcr is two newlines",
			input: "\n\r",
			expected: []token.Token{
				token.New(token.NEWLINE, "\n"),
				token.New(token.NEWLINE, "\r"),
				eof(),
			},
		},
		{
			name:  "spaces and tabs are skipped",
			input: " \t x \t",
			expected: []token.Token{
				token.New(token.IDENT, "x"),
				eof(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(Tokenize(tt.input)))
		})
	}
}

func TestLexer_Illegal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "ascii symbols",
			input: "@#",
			expected: []token.Token{
				token.New(token.ILLEGAL, "@"),
				token.New(token.ILLEGAL, "#"),
				eof(),
			},
		},
		{
			name:  "multibyte rune",
			input: "x=é",
			expected: []token.Token{
				token.New(token.IDENT, "x"),
				token.New(token.ASSIGN, "="),
				token.New(token.ILLEGAL, "é"),
				eof(),
			},
		},
		{
			name:     "nul byte in source",
			input:    "\x00",
			expected: []token.Token{token.New(token.ILLEGAL, "\x00"), eof()},
		},
		{
			name:     "invalid utf-8",
			input:    "\xff",
			expected: []token.Token{token.New(token.ILLEGAL, "\xff"), eof()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(Tokenize(tt.input)))
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	expected := []token.Token{
		{Type: token.IDENT, Literal: "x", Line: 1, Column: 1, Offset: 0},
		{Type: token.ASSIGN, Literal: "=", Line: 1, Column: 3, Offset: 2},
		{Type: token.INT, Literal: "5", Line: 1, Column: 5, Offset: 4},
		{Type: token.SEMICOLON, Literal: ";", Line: 1, Column: 6, Offset: 5},
		{Type: token.NEWLINE, Literal: "\n", Line: 1, Column: 7, Offset: 6},
		{Type: token.IDENT, Literal: "y", Line: 2, Column: 1, Offset: 7},
		{Type: token.EOF, Literal: token.EOFLiteral, Line: 2, Column: 2, Offset: 8},
	}

	assert.Equal(t, expected, Tokenize("x = 5;\ny"))
}

func TestLexer_PositionsAcrossLineEndings(t *testing.T) {
	toks := Tokenize("a\r\nb\rc")
	require.Len(t, toks, 6)

	assert.Equal(t, "1:1", toks[0].Position())
	assert.Equal(t, "1:2", toks[1].Position())
	assert.Equal(t, "2:1", toks[2].Position())
	assert.Equal(t, "2:2", toks[3].Position())
	assert.Equal(t, "3:1", toks[4].Position())
	assert.Equal(t, 5, toks[4].Offset)
	assert.Equal(t, "3:2", toks[5].Position())
}

func TestLexer_EmptyInput(t *testing.T) {
	l := New("")

	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, token.Token{Type: token.EOF, Literal: token.EOFLiteral, Line: 1, Column: 1}, tok)
	assert.True(t, l.Done())

	_, ok = l.Next()
	assert.False(t, ok)
	_, ok = l.Next()
	assert.False(t, ok)
}

func TestLexer_AllStopsEarly(t *testing.T) {
	l := New("a b c d")

	var seen []string
	for tok := range l.All() {
		seen = append(seen, tok.Literal)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)

	rest := l.Tokenize()
	assert.Equal(t, []token.Token{
		token.New(token.IDENT, "c"),
		token.New(token.IDENT, "d"),
		eof(),
	}, kinds(rest))
	assert.Empty(t, l.Tokenize())
}

func TestLexer_Program(t *testing.T) {
	input := "x = 5;y = 10\nfoobar = 838383;"
	expected := []token.Token{
		token.New(token.IDENT, "x"),
		token.New(token.ASSIGN, "="),
		token.New(token.INT, "5"),
		token.New(token.SEMICOLON, ";"),
		token.New(token.IDENT, "y"),
		token.New(token.ASSIGN, "="),
		token.New(token.INT, "10"),
		token.New(token.NEWLINE, "\n"),
		token.New(token.IDENT, "foobar"),
		token.New(token.ASSIGN, "="),
		token.New(token.INT, "838383"),
		token.New(token.SEMICOLON, ";"),
		eof(),
	}

	assert.Equal(t, expected, kinds(Tokenize(input)))
	assert.Equal(t, input, New(input).Source())
}

func TestLexer_RubyMethod(t *testing.T) {
	input := "def add(a, b)\n  return a + b\nend\n"
	var types []token.Type
	for tok := range New(input).All() {
		types = append(types, tok.Type)
	}

	assert.Equal(t, []token.Type{
		token.DEF, token.IDENT, token.LPAREN, token.IDENT, token.COMMA, token.IDENT, token.RPAREN, token.NEWLINE,
		token.RETURN, token.IDENT, token.PLUS, token.IDENT, token.NEWLINE,
		token.END, token.NEWLINE,
		token.EOF,
	}, types)
}

func TestLexer_LargeInput(t *testing.T) {
	input := strings.Repeat("value = 1;\n", 10000)
	toks := Tokenize(input)
	assert.Len(t, toks, 10000*5+1)
	assert.Equal(t, 10001, toks[len(toks)-1].Line)
}

func FuzzLexer(f *testing.F) {
	for _, seed := range []string{
		"",
		"x = 5;y = 10\nfoobar = 838383;",
		"return 5;\nreturn 10\nreturn 993322",
		"foo =",
		"a == b != c\r\n",
		"é@#\x00\xff",
		"def empty?(x) save! end",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		toks := Tokenize(input)
		require.NotEmpty(t, toks)
		require.LessOrEqual(t, len(toks), len(input)+1)

		last := toks[len(toks)-1]
		require.Equal(t, token.EOF, last.Type)
		require.Equal(t, len(input), last.Offset)

		prev := -1
		for _, tok := range toks[:len(toks)-1] {
			require.NotEqual(t, token.EOF, tok.Type)
			require.NotEmpty(t, tok.Literal)
			require.Greater(t, tok.Offset, prev)
			require.Equal(t, input[tok.Offset:tok.Offset+len(tok.Literal)], tok.Literal)
			prev = tok.Offset
		}
	})
}
