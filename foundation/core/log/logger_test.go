package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/rubic/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"})
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			if tt.wantErr {
				assert.EqualError(t, err, "invalid level: "+tt.input)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("logfmt")
	assert.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, FormatConsole, f)
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatJSON)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.True(t, logger.IsLevelEnabled(LevelError))
	assert.False(t, logger.IsLevelEnabled(LevelInfo))
}

func TestLogger_JSONFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithField("component", "parser").Debug("Parsed", Fields{"expressions": 3})

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Parsed", lines[0]["message"])
	assert.Equal(t, "test", lines[0]["logger"])
	assert.Equal(t, "parser", lines[0]["component"])
	assert.Equal(t, float64(3), lines[0]["expressions"])
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatJSON)
	child := parent.WithFields(Fields{"session": "abc"})

	parent.Info("parent")
	child.Info("child")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "session")
	assert.Equal(t, "abc", lines[1]["session"])
}

func TestLogger_TextFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.Info("Server started", Fields{"port": 8087, "host": "127.0.0.1", "note": "two words"})

	out := buf.String()
	assert.Contains(t, out, "[INF] {test} Server started")
	assert.Contains(t, out, `host=127.0.0.1 note="two words" port=8087`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConsoleFormatter_WithoutColors(t *testing.T) {
	f := &ConsoleFormatter{DisableColors: true, TimestampFormat: "15:04"}
	entry := NewEntry(LevelWarn, "careful").WithFields(Fields{"k": "v"})
	entry.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "03:04 [WRN] careful k=v\n", string(out))
}

func TestConsoleFormatter_ContainsMessage(t *testing.T) {
	f := NewConsoleFormatter()
	out, err := f.Format(NewEntry(LevelInfo, "hello").WithFields(Fields{"answer": 42}))
	require.NoError(t, err)
	assert.Contains(t, string(out), "hello")
	assert.Contains(t, string(out), "answer=42")
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity logs at info", mdwerror.New("bad source").WithCode(mdwerror.CodeSyntax), "info"},
		{"medium severity logs at warn", mdwerror.New("slow").WithCode(mdwerror.CodeTimeout), "warn"},
		{"high severity logs at error", mdwerror.New("db gone").WithCode(mdwerror.CodeStorage), "error"},
		{"plain error logs at error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.level, lines[0]["level"])
			assert.Equal(t, tt.err.Error(), lines[0]["error"])
		})
	}

	t.Run("details become fields", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelTrace, FormatJSON)
		logger.LogError(mdwerror.New("too big").
			WithCode(mdwerror.CodeInputTooLarge).
			WithOperation("rubic.Parse").
			WithDetail("length", 10))

		lines := decodeLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "INPUT_TOO_LARGE", lines[0]["error_code"])
		assert.Equal(t, "rubic.Parse", lines[0]["error_operation"])
		assert.Equal(t, float64(10), lines[0]["error_length"])
	})

	t.Run("nil is ignored", func(t *testing.T) {
		logger, buf := newBufferLogger(LevelTrace, FormatJSON)
		logger.LogError(nil)
		assert.Zero(t, buf.Len())
	})
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatJSON)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithField("worker", n).Info("tick")
		}(i)
	}
	wg.Wait()

	assert.Len(t, decodeLines(t, buf), 20)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing happens")
	assert.False(t, logger.IsLevelEnabled(LevelFatal))
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("tokens", 12)
	first := timer.Stop()
	second := timer.Stop()

	assert.Equal(t, first, second)
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "parse completed", lines[0]["message"])
	assert.Equal(t, "parse", lines[0]["operation"])
	assert.Equal(t, float64(12), lines[0]["tokens"])
	assert.Contains(t, lines[0], "duration_ms")
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("history.append").StopWithError(errors.New("locked"))

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "history.append failed", lines[0]["message"])
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, false, lines[0]["success"])
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	logger, buf := newBufferLogger(LevelInfo, FormatJSON)
	SetDefault(logger)
	SetDefault(nil)

	Info("via default")
	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "via default", lines[0]["message"])
}
