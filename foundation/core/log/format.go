// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log records: JSON for the playground
//              server, text for files and pipes, console with coloured level
//              badges for interactive use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-18 v0.2.0: Console format renders with lipgloss, text format merged with logfmt

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs key=value text lines
	FormatText

	// FormatConsole outputs coloured lines for terminals
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "logfmt":
		return FormatText, nil
	case "console", "":
		return FormatConsole, nil
	default:
		return FormatConsole, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339Nano}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if m, ok := entry.Error.(json.Marshaler); ok {
			if raw, err := m.MarshalJSON(); err == nil {
				data["error_details"] = json.RawMessage(raw)
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = durationMillis(entry.Duration)
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as key=value text
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05.000"}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s]", entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	writeFields(&b, entry)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter formats log entries with coloured level badges
type ConsoleFormatter struct {
	DisableColors   bool
	TimestampFormat string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TimestampFormat: "15:04:05"}
}

var (
	consoleFaint   = lipgloss.NewStyle().Faint(true)
	consoleMessage = lipgloss.NewStyle().Bold(true)
)

// Format formats a log entry for console output
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	if f.DisableColors {
		text := &TextFormatter{TimestampFormat: f.TimestampFormat}
		return text.Format(entry)
	}

	var b strings.Builder
	b.WriteString(consoleFaint.Render(entry.Timestamp.Format(f.TimestampFormat)))
	b.WriteByte(' ')
	b.WriteString(entry.Level.Style().Render(entry.Level.ShortString()))
	if entry.Logger != "" {
		b.WriteByte(' ')
		b.WriteString(consoleFaint.Render(entry.Logger + ":"))
	}
	b.WriteByte(' ')
	b.WriteString(consoleMessage.Render(entry.Message))

	var fields strings.Builder
	writeFields(&fields, entry)
	b.WriteString(consoleFaint.Render(fields.String()))
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// writeFields appends sorted key=value pairs, the error and the duration
func writeFields(b *strings.Builder, entry *Entry) {
	for _, k := range entry.Fields.Keys() {
		v := entry.Fields[k]
		switch val := v.(type) {
		case string:
			if strings.ContainsAny(val, " \t\n\"=") {
				fmt.Fprintf(b, " %s=%q", k, val)
			} else {
				fmt.Fprintf(b, " %s=%s", k, val)
			}
		case error:
			fmt.Fprintf(b, " %s=%q", k, val.Error())
		default:
			fmt.Fprintf(b, " %s=%v", k, val)
		}
	}

	if entry.Error != nil {
		fmt.Fprintf(b, " error=%q", entry.Error.Error())
	}

	if entry.Duration > 0 {
		fmt.Fprintf(b, " duration=%s", entry.Duration)
	}
}

func durationMillis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}
