// Package tui holds the terminal styles shared by the REPL and the CLI's
// table output.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/rubic/foundation/rubic/token"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorCyan      = lipgloss.Color("#06B6D4")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Output styles
	EchoStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	TreeStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	HintStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Input style
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				PaddingRight(2)

	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// Token category colours
var categoryStyles = map[string]lipgloss.Style{
	"special":   lipgloss.NewStyle().Foreground(colorError),
	"literal":   lipgloss.NewStyle().Foreground(colorSecondary),
	"operator":  lipgloss.NewStyle().Foreground(colorAccent),
	"delimiter": lipgloss.NewStyle().Foreground(colorMuted),
	"grouping":  lipgloss.NewStyle().Foreground(colorMuted),
	"keyword":   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
}

// TokenStyle returns the style used for tokens of the given type
func TokenStyle(t token.Type) lipgloss.Style {
	if style, ok := categoryStyles[t.Category()]; ok {
		return style
	}
	return lipgloss.NewStyle().Foreground(colorCyan)
}

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
