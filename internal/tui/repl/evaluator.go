// ============================================================================
// rubic - Ruby front end
// ============================================================================
//
// Package:     repl
// Description: Line evaluator shared by the plain and the full-screen REPL
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/foundation/rubic/ast"
	"github.com/msto63/rubic/foundation/rubic/token"
	"github.com/msto63/rubic/internal/history"
	"github.com/msto63/rubic/internal/tui"
	"github.com/msto63/rubic/pkg/core/config"
)

const (
	// Banner is printed when a session starts
	Banner = "Welcome to rubic, a Ruby front end"

	// Farewell is printed when a session ends
	Farewell = "Goodbye!"
)

// Output is the result of evaluating one line
type Output struct {
	Source string
	Tokens []token.Token
	Result *rubic.Result // nil when the line ended the session or was rejected
	Err    error
	Exit   bool
}

// Evaluator lexes and parses REPL lines and records them in the history
type Evaluator struct {
	engine  *rubic.Engine
	cfg     config.REPLConfig
	store   *history.Store
	session string
	logger  *mdwlog.Logger
}

// NewEvaluator creates an evaluator. store may be nil to disable history.
func NewEvaluator(engine *rubic.Engine, cfg config.REPLConfig, store *history.Store, logger *mdwlog.Logger) *Evaluator {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	ev := &Evaluator{
		engine: engine,
		cfg:    cfg,
		store:  store,
		logger: logger.WithField("component", "repl"),
	}
	if store != nil {
		ev.session = store.NewSession()
		ev.logger = ev.logger.WithField("session", ev.session)
	}
	return ev
}

// Config returns the REPL settings
func (e *Evaluator) Config() config.REPLConfig {
	return e.cfg
}

// Session returns the history session id, empty without a store
func (e *Evaluator) Session() string {
	return e.session
}

// Eval evaluates one line. A line containing the exit word as an identifier
// ends the session; its tokens are still reported but it is not parsed.
func (e *Evaluator) Eval(ctx context.Context, line string) Output {
	out := Output{Source: line}

	toks, err := e.engine.Tokenize(line)
	if err != nil {
		out.Err = err
		return out
	}
	out.Tokens = toks

	if e.isExit(toks) {
		out.Exit = true
		return out
	}

	result, err := e.engine.Parse(line)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = result

	e.record(ctx, line, result)
	return out
}

func (e *Evaluator) isExit(toks []token.Token) bool {
	for _, tok := range toks {
		if tok.Type == token.IDENT && tok.Literal == e.cfg.ExitWord {
			return true
		}
	}
	return false
}

func (e *Evaluator) record(ctx context.Context, line string, result *rubic.Result) {
	if e.store == nil || strings.TrimSpace(line) == "" {
		return
	}

	_, err := e.store.Append(ctx, history.Entry{
		SessionID:   e.session,
		Source:      line,
		Expressions: result.Program.Len(),
		Diagnostics: len(result.Diagnostics),
	})
	if err != nil {
		e.logger.Warn("Failed to record history", mdwlog.Fields{"error": err.Error()})
	}
}

// History returns up to the configured limit of past lines, oldest first
func (e *Evaluator) History(ctx context.Context) []string {
	if e.store == nil {
		return nil
	}

	entries, err := e.store.Recent(ctx, e.cfg.HistoryLimit)
	if err != nil {
		e.logger.Warn("Failed to load history", mdwlog.Fields{"error": err.Error()})
		return nil
	}

	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[len(entries)-1-i] = entry.Source
	}
	return lines
}

// TokenLine renders a token as TYPE:literal
func TokenLine(tok token.Token) string {
	if tok.Type == token.EOF {
		return "EOF:"
	}
	return tok.Type.String() + ":" + tok.Display()
}

// Format renders an output as the REPL prints it. With styled set the
// lines are coloured with lipgloss.
func (e *Evaluator) Format(out Output, styled bool) string {
	paint := func(style lipgloss.Style, s string) string {
		if styled {
			return style.Render(s)
		}
		return s
	}

	var b strings.Builder

	if out.Err != nil {
		b.WriteString(paint(tui.ErrorMessageStyle, "error: "+out.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	if e.cfg.Tokens() || out.Exit {
		for _, tok := range out.Tokens {
			b.WriteString(paint(tui.TokenStyle(tok.Type), TokenLine(tok)))
			b.WriteString("\n")
		}
	}

	if out.Result == nil {
		return b.String()
	}

	if tree := ast.Tree(out.Result.Program, e.cfg.AST()); tree != "" {
		b.WriteString(paint(tui.TreeStyle, strings.TrimRight(tree, "\n")))
		b.WriteString("\n")
	}

	if n := len(out.Result.Diagnostics); n > 0 {
		b.WriteString(paint(tui.ErrorMessageStyle, pluralErrors(n)))
		b.WriteString("\n")
		for _, d := range out.Result.Diagnostics {
			b.WriteString(paint(tui.ErrorMessageStyle, "- "+d.Message))
			if d.Hint != "" {
				b.WriteString(" ")
				b.WriteString(paint(tui.HintStyle, "("+d.Hint+")"))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func pluralErrors(n int) string {
	if n == 1 {
		return "parser has 1 error"
	}
	return "parser has " + strconv.Itoa(n) + " errors"
}
