package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlain(t *testing.T) {
	ev := newTestEvaluator(t, testREPLConfig(), false)

	var out bytes.Buffer
	err := RunPlain(context.Background(), ev, strings.NewReader("x = 5\nexit\nnever = 1\n"), &out)
	require.NoError(t, err)

	expected := "Welcome to rubic, a Ruby front end\n" +
		">> IDENT:x\nASSIGN:=\nINT:5\nEOF:\nAssign x\n  Value 5\n" +
		">> IDENT:exit\nEOF:\n" +
		"Goodbye!\n"
	assert.Equal(t, expected, out.String())
}

func TestRunPlain_EndOfInput(t *testing.T) {
	ev := newTestEvaluator(t, testREPLConfig(), false)

	var out bytes.Buffer
	require.NoError(t, RunPlain(context.Background(), ev, strings.NewReader("y"), &out))

	assert.True(t, strings.HasSuffix(out.String(), ">> \nGoodbye!\n"), out.String())
	assert.Contains(t, out.String(), "Identifier y\n")
}

func TestRunPlain_Cancelled(t *testing.T) {
	ev := newTestEvaluator(t, testREPLConfig(), false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, RunPlain(ctx, ev, strings.NewReader("x = 1\n"), &out))
	assert.Equal(t, "Welcome to rubic, a Ruby front end\nGoodbye!\n", out.String())
}
