package rubic

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
	mdwlog "github.com/msto63/rubic/foundation/core/log"
	"github.com/msto63/rubic/foundation/rubic/ast"
	"github.com/msto63/rubic/foundation/rubic/parser"
	"github.com/msto63/rubic/foundation/rubic/token"
)

func quietEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.Discard()
	}
	return New(opts)
}

func TestNew_Defaults(t *testing.T) {
	e := New(Options{})
	assert.Equal(t, DefaultMaxSourceLength, e.Options().MaxSourceLength)
	assert.NotNil(t, e.Options().Logger)
}

func TestEngine_Tokenize(t *testing.T) {
	e := quietEngine(Options{})

	toks, err := e.Tokenize("x = 5")
	require.NoError(t, err)

	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.Type{token.IDENT, token.ASSIGN, token.INT, token.EOF}, types)
}

func TestEngine_Parse(t *testing.T) {
	e := quietEngine(Options{})

	result, err := e.Parse("x = 5;y = 10\nfoobar = 838383;")
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.NoError(t, result.Err())
	assert.Equal(t, []ast.Kind{ast.KindAssign, ast.KindAssign, ast.KindAssign}, result.Program.Kinds())
	assert.Empty(t, result.Messages)
}

func TestEngine_ParseWithDiagnostics(t *testing.T) {
	e := quietEngine(Options{})

	result, err := e.Parse("foo =\n@")
	require.NoError(t, err)
	assert.False(t, result.OK())
	require.Len(t, result.Diagnostics, 2)
	assert.Equal(t, parser.Messages(result.Diagnostics), result.Messages)

	syntaxErr := result.Err()
	require.Error(t, syntaxErr)
	assert.True(t, mdwerror.HasCode(syntaxErr, mdwerror.CodeSyntax))
	assert.Contains(t, syntaxErr.Error(), "2 syntax error(s)")
	assert.Contains(t, syntaxErr.Error(), "1:6: expected next token to be")

	var mdwErr *mdwerror.Error
	require.True(t, errors.As(syntaxErr, &mdwErr))
	assert.Equal(t, 2, mdwErr.Details()["count"])
	assert.Equal(t, mdwerror.SeverityLow, mdwErr.Severity())
}

func TestEngine_SilentSkip(t *testing.T) {
	e := quietEngine(Options{SilentSkip: true})

	result, err := e.Parse("@ x")
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, "x", result.Program.String())
}

func TestEngine_SourceTooLarge(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText, Output: &buf})
	e := New(Options{Logger: logger, MaxSourceLength: 8})

	_, err := e.Parse(strings.Repeat("x", 9))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInputTooLarge))
	assert.Equal(t, 2, mdwerror.GetCode(err).ExitCode())

	_, err = e.Tokenize(strings.Repeat("x", 9))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInputTooLarge))

	_, err = e.Parse(strings.Repeat("x", 8))
	assert.NoError(t, err)

	assert.Contains(t, buf.String(), "parse completed")
	assert.Contains(t, buf.String(), "error_code=INPUT_TOO_LARGE")
}

func TestEngine_Concurrent(t *testing.T) {
	e := quietEngine(Options{})
	sources := []string{"x = 1", "return 2", "foo =", "a\nb\nc"}

	var wg sync.WaitGroup
	results := make([]string, 40)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := e.Parse(sources[i%len(sources)])
			if err == nil {
				results[i] = result.Program.String()
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		want, err := e.Parse(sources[i%len(sources)])
		require.NoError(t, err)
		assert.Equal(t, want.Program.String(), got)
	}
}
