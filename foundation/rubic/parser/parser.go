// File: parser.go
// Title: rubic Parser Implementation
// Description: Recursive descent parser for rubic. Reads tokens through a
//              two-token lookahead ring, dispatches on the current token and
//              builds a Program of expressions. Malformed input never stops
//              the parse: the failing production records a diagnostic and
//              parsing resumes at the next token.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic/ast"
	"github.com/msto63/rubic/foundation/rubic/lexer"
	"github.com/msto63/rubic/foundation/rubic/token"
)

// Parser implements recursive descent parsing for rubic
type Parser struct {
	lexer   *lexer.Lexer
	ring    [2]token.Token // current and peek, indexed by head
	head    int
	hasPeek bool
	diags   []Diagnostic
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger

	// SilentSkip drops tokens that start no expression without recording
	// a diagnostic
	SilentSkip bool
}

// startTypes are the tokens an expression can begin with
var startTypes = []token.Type{token.IDENT, token.INT, token.RETURN}

// identFollowers are the tokens allowed after an identifier
var identFollowers = []token.Type{token.ASSIGN, token.SEMICOLON, token.NEWLINE, token.EOF}

// New creates a parser reading from l and fills the lookahead ring
func New(l *lexer.Lexer, opts Options) *Parser {
	if l == nil {
		l = lexer.New("")
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	p := &Parser{
		lexer:   l,
		logger:  opts.Logger.WithField("component", "rubic-parser"),
		options: opts,
	}

	first, ok := l.Next()
	if !ok {
		first = token.Token{Type: token.EOF, Literal: token.EOFLiteral, Line: 1, Column: 1, Offset: len(l.Source())}
	}
	p.ring[0] = first
	p.ring[1], p.hasPeek = l.Next()

	return p
}

// Current returns the token under examination; EOF at worst
func (p *Parser) Current() token.Token {
	return p.ring[p.head]
}

// Peek returns the lookahead token. It reports false once the lexer is
// exhausted.
func (p *Parser) Peek() (token.Token, bool) {
	if !p.hasPeek {
		return token.Token{}, false
	}
	return p.ring[p.head^1], true
}

// Advance shifts the lookahead into current and pulls the next token from
// the lexer. It returns the new current token, or false when there was no
// lookahead left; current is then unchanged.
func (p *Parser) Advance() (token.Token, bool) {
	if !p.hasPeek {
		return token.Token{}, false
	}
	p.head ^= 1
	p.ring[p.head^1], p.hasPeek = p.lexer.Next()
	return p.ring[p.head], true
}

// Diagnostics returns the diagnostics recorded so far
func (p *Parser) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(p.diags))
	copy(out, p.diags)
	return out
}

// ParseProgram parses the whole token stream. It returns the program and
// the message of every diagnostic in order.
func (p *Parser) ParseProgram() (*ast.Program, []string) {
	program := ast.NewProgram()

	for {
		if expr := p.parseExpression(); expr != nil {
			program.Append(expr)
		}

		peek, ok := p.Peek()
		if !ok || peek.Type == token.EOF {
			break
		}
		p.Advance()
	}

	p.logger.Debug("Program parsed", mdwlog.Fields{
		"expressions": program.Len(),
		"diagnostics": len(p.diags),
	})

	return program, Messages(p.diags)
}

// parseExpression dispatches on the current token
func (p *Parser) parseExpression() ast.Expression {
	current := p.Current()

	switch current.Type {
	case token.IDENT:
		peek, ok := p.Peek()
		switch {
		case ok && peek.Type == token.ASSIGN:
			return p.parseAssignExpression()
		case !ok || peek.Is(token.SEMICOLON, token.NEWLINE, token.EOF):
			// NEWLINE terminates like ';', an exhausted lexer like EOF
			return ast.NewIdentifier(current)
		default:
			p.unexpected(peek, identFollowers, suggestionHint(current))
			return nil
		}
	case token.INT:
		return p.parseValueExpression()
	case token.RETURN:
		return p.parseReturnExpression()
	default:
		p.skip(current)
		return nil
	}
}

// parseAssignExpression parses IDENT = expression
func (p *Parser) parseAssignExpression() ast.Expression {
	if p.Current().Type != token.IDENT {
		return nil
	}
	name := ast.NewIdentifier(p.Current())

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	assign := p.Current()

	if !p.expectPeek(startTypes...) {
		return nil
	}

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	return &ast.AssignExpression{Token: assign, Name: name, Value: value}
}

// parseValueExpression parses an integer literal and moves to the end of
// the statement
func (p *Parser) parseValueExpression() ast.Expression {
	tok := p.Current()

	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.record(Diagnostic{
			Code:    CodeIntegerRange,
			Message: fmt.Sprintf("integer literal `%s` is out of range", tok.Literal),
			Token:   tok,
		})
		value = 0
	}

	for !p.Current().Is(token.SEMICOLON, token.NEWLINE, token.EOF) {
		if _, ok := p.Advance(); !ok {
			break
		}
	}

	return &ast.ValueExpression{Token: tok, Value: value}
}

// parseReturnExpression parses `return` with an optional value
func (p *Parser) parseReturnExpression() ast.Expression {
	tok := p.Current()

	peek, ok := p.Peek()
	if !ok || peek.Is(token.SEMICOLON, token.NEWLINE, token.EOF) {
		return &ast.ReturnExpression{Token: tok}
	}

	if !p.expectPeek(startTypes...) {
		return nil
	}

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	return &ast.ReturnExpression{Token: tok, ReturnValue: value}
}

// expectPeek advances if the lookahead has one of the given types and
// records a diagnostic otherwise
func (p *Parser) expectPeek(types ...token.Type) bool {
	peek, ok := p.Peek()
	if ok && peek.Is(types...) {
		p.Advance()
		return true
	}
	if !ok {
		peek = p.Current()
		peek.Type = token.EOF
		peek.Literal = token.EOFLiteral
	}
	p.unexpected(peek, types, "")
	return false
}

func (p *Parser) unexpected(got token.Token, expected []token.Type, hint string) {
	p.record(Diagnostic{
		Code:    CodeUnexpectedToken,
		Message: expectedMessage(expected, got.Type.String()),
		Token:   got,
		Hint:    hint,
	})
}

// skip reports a token that starts no expression; separators pass silently
func (p *Parser) skip(tok token.Token) {
	if p.options.SilentSkip || tok.Type.IsSeparator() {
		return
	}

	if tok.Type == token.ILLEGAL {
		p.record(Diagnostic{
			Code:    CodeIllegalCharacter,
			Message: fmt.Sprintf("illegal character `%s`", tok.Display()),
			Token:   tok,
		})
		return
	}

	p.record(Diagnostic{
		Code:    CodeNoExpression,
		Message: fmt.Sprintf("no expression starts with `%s` (%s)", tok.Display(), tok.Type),
		Token:   tok,
	})
}

func (p *Parser) record(d Diagnostic) {
	p.diags = append(p.diags, d)
	p.logger.Trace("Diagnostic recorded", mdwlog.Fields{
		"code":     string(d.Code),
		"message":  d.Message,
		"position": d.Token.Position(),
	})
}

// Parse is a convenience function that parses src with default options
func Parse(src string) (*ast.Program, []string) {
	return New(lexer.New(src), Options{}).ParseProgram()
}
