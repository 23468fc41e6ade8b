// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output. The CLI maps its verbose
//              flag and the config's log_level onto these.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Dropped the audit level, added lipgloss level styles

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace logs every token the parser consumes
	LevelTrace Level = iota

	// LevelDebug logs parse runs, timings and configuration decisions
	LevelDebug

	// LevelInfo is the default level
	LevelInfo

	// LevelWarn indicates a degraded but working state
	LevelWarn

	// LevelError reports failed operations
	LevelError

	// LevelFatal is logged right before the process exits
	LevelFatal
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns a three letter representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

var levelColors = map[Level]lipgloss.Color{
	LevelTrace: lipgloss.Color("245"),
	LevelDebug: lipgloss.Color("39"),
	LevelInfo:  lipgloss.Color("42"),
	LevelWarn:  lipgloss.Color("214"),
	LevelError: lipgloss.Color("196"),
	LevelFatal: lipgloss.Color("201"),
}

// Style returns the console style for the level badge
func (l Level) Style() lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if c, ok := levelColors[l]; ok {
		style = style.Foreground(c)
	}
	return style
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all available log levels
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}
