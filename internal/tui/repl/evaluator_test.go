package repl

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic"
	"github.com/msto63/rubic/foundation/rubic/token"
	"github.com/msto63/rubic/internal/history"
	"github.com/msto63/rubic/pkg/core/config"
)

func testREPLConfig() config.REPLConfig {
	return config.Default().REPL
}

func newTestEvaluator(t *testing.T, cfg config.REPLConfig, withStore bool) *Evaluator {
	t.Helper()

	var store *history.Store
	if withStore {
		var err error
		store, err = history.Open(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
	}

	engine := rubic.New(rubic.Options{Logger: mdwlog.Discard(), MaxSourceLength: 64})
	return NewEvaluator(engine, cfg, store, mdwlog.Discard())
}

func TestTokenLine(t *testing.T) {
	tests := []struct {
		tok      token.Token
		expected string
	}{
		{token.New(token.IDENT, "x"), "IDENT:x"},
		{token.New(token.ASSIGN, "="), "ASSIGN:="},
		{token.New(token.NEWLINE, "\n"), `NEWLINE:\n`},
		{token.New(token.EOF, token.EOFLiteral), "EOF:"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenLine(tt.tok))
		})
	}
}

func TestEvaluator_Eval(t *testing.T) {
	ev := newTestEvaluator(t, testREPLConfig(), false)

	out := ev.Eval(context.Background(), "x = 5")
	require.NoError(t, out.Err)
	assert.False(t, out.Exit)
	require.NotNil(t, out.Result)
	assert.Equal(t, "x = 5", out.Result.Program.String())

	assert.Equal(t, "IDENT:x\nASSIGN:=\nINT:5\nEOF:\nAssign x\n  Value 5\n", ev.Format(out, false))
	assert.Empty(t, ev.Session())
}

func TestEvaluator_Diagnostics(t *testing.T) {
	cfg := testREPLConfig()
	off := false
	cfg.ShowTokens = &off
	ev := newTestEvaluator(t, cfg, false)

	out := ev.Eval(context.Background(), "retrun 5")
	got := ev.Format(out, false)

	assert.Equal(t, "Value 5\n"+
		"parser has 1 error\n"+
		"- expected next token to be `ASSIGN`, `SEMICOLON`, `NEWLINE` or `EOF`, got `INT` instead (did you mean `return`?)\n", got)

	out = ev.Eval(context.Background(), "foo =\n@")
	assert.Contains(t, ev.Format(out, false), "parser has 2 errors\n")
}

func TestEvaluator_ASTPositions(t *testing.T) {
	cfg := testREPLConfig()
	on, off := true, false
	cfg.ShowAST = &on
	cfg.ShowTokens = &off
	ev := newTestEvaluator(t, cfg, false)

	out := ev.Eval(context.Background(), "return x")
	assert.Equal(t, "Return @1:1\n  Identifier x @1:8\n", ev.Format(out, false))
}

func TestEvaluator_Exit(t *testing.T) {
	cfg := testREPLConfig()
	off := false
	cfg.ShowTokens = &off
	ev := newTestEvaluator(t, cfg, true)

	out := ev.Eval(context.Background(), "x = 1 exit")
	assert.True(t, out.Exit)
	assert.Nil(t, out.Result)
	// tokens are printed for the exit line even when disabled
	assert.True(t, strings.HasPrefix(ev.Format(out, false), "IDENT:x\n"))

	n, err := ev.store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	cfg.ExitWord = "quit"
	ev = newTestEvaluator(t, cfg, false)
	assert.False(t, ev.Eval(context.Background(), "exit").Exit)
	assert.True(t, ev.Eval(context.Background(), "quit").Exit)
}

func TestEvaluator_SourceTooLarge(t *testing.T) {
	ev := newTestEvaluator(t, testREPLConfig(), false)

	out := ev.Eval(context.Background(), strings.Repeat("x", 65))
	require.Error(t, out.Err)
	assert.True(t, mdwerror.HasCode(out.Err, mdwerror.CodeInputTooLarge))
	assert.True(t, strings.HasPrefix(ev.Format(out, false), "error: source is 65 bytes"))
}

func TestEvaluator_History(t *testing.T) {
	cfg := testREPLConfig()
	cfg.HistoryLimit = 2
	ev := newTestEvaluator(t, cfg, true)
	require.NotEmpty(t, ev.Session())

	for _, line := range []string{"a = 1", "", "b = 2", "foo bar"} {
		ev.Eval(context.Background(), line)
	}

	assert.Equal(t, []string{"b = 2", "foo bar"}, ev.History(context.Background()))

	entries, err := ev.store.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Diagnostics)
	assert.Equal(t, 1, entries[0].Expressions)
	assert.Equal(t, ev.Session(), entries[0].SessionID)
}

func TestEvaluator_NoStore(t *testing.T) {
	ev := newTestEvaluator(t, testREPLConfig(), false)
	ev.Eval(context.Background(), "x = 1")
	assert.Nil(t, ev.History(context.Background()))
}
