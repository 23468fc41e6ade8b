// File: rubic.go
// Title: rubic Engine
// Description: Entry point to the rubic language front end. The Engine
//              enforces input limits, runs the lexer and parser and reports
//              timing through the structured logger. It keeps no per-call
//              state and may be shared between goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial engine

package rubic

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic/ast"
	"github.com/msto63/rubic/foundation/rubic/lexer"
	"github.com/msto63/rubic/foundation/rubic/parser"
	"github.com/msto63/rubic/foundation/rubic/token"
)

// DefaultMaxSourceLength is the source size limit used when none is set
const DefaultMaxSourceLength = 1 << 20

// Options configures an Engine
type Options struct {
	Logger          *mdwlog.Logger
	MaxSourceLength int  // in bytes; 0 means DefaultMaxSourceLength
	SilentSkip      bool // see parser.Options
}

// Engine lexes and parses rubic source
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Result is the outcome of a parse
type Result struct {
	Program     *ast.Program        `json:"-" yaml:"-"`
	Diagnostics []parser.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
	Messages    []string            `json:"messages" yaml:"messages"`
	Duration    time.Duration       `json:"duration" yaml:"duration"`
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxSourceLength <= 0 {
		opts.MaxSourceLength = DefaultMaxSourceLength
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "rubic-engine"),
		options: opts,
	}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

// Tokenize scans src completely
func (e *Engine) Tokenize(src string) ([]token.Token, error) {
	if err := e.checkSource(src, "tokenize"); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("tokenize")
	toks := lexer.Tokenize(src)
	timer.WithField("tokens", len(toks)).Stop()

	return toks, nil
}

// Parse lexes and parses src. Diagnostics are part of the result, an error
// is only returned when src is rejected before parsing.
func (e *Engine) Parse(src string) (*Result, error) {
	if err := e.checkSource(src, "parse"); err != nil {
		return nil, err
	}

	e.logger.Debug("Parsing source", mdwlog.Fields{"bytes": len(src)})
	timer := e.logger.StartTimer("parse")

	p := parser.New(lexer.New(src), parser.Options{
		Logger:     e.logger,
		SilentSkip: e.options.SilentSkip,
	})
	program, messages := p.ParseProgram()

	duration := timer.
		WithField("expressions", program.Len()).
		WithField("diagnostics", len(messages)).
		Stop()

	return &Result{
		Program:     program,
		Diagnostics: p.Diagnostics(),
		Messages:    messages,
		Duration:    duration,
	}, nil
}

func (e *Engine) checkSource(src, operation string) error {
	if len(src) <= e.options.MaxSourceLength {
		return nil
	}

	err := mdwerror.Newf("source is %d bytes, limit is %d", len(src), e.options.MaxSourceLength).
		WithCode(mdwerror.CodeInputTooLarge).
		WithOperation(operation).
		WithDetail("length", len(src)).
		WithDetail("limit", e.options.MaxSourceLength)
	e.logger.LogError(err)
	return err
}

// OK reports whether the parse produced no diagnostics
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Err folds the diagnostics into one syntax error, or returns nil
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}

	lines := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		lines[i] = d.String()
	}

	return mdwerror.Newf("%d syntax error(s): %s", len(lines), strings.Join(lines, "; ")).
		WithCode(mdwerror.CodeSyntax).
		WithOperation("parse").
		WithDetail("count", len(lines)).
		WithDetail("first", r.Diagnostics[0].Message)
}
