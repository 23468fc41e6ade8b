// ============================================================================
// rubic - Ruby front end
// ============================================================================
//
// Package:     repl
// Description: Full-screen Bubbletea REPL with scrollback and history
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/rubic/internal/tui"
)

const (
	headerHeight = 2 // title + subtitle
	footerHeight = 5 // input box + status bar + help
)

// Model is the Bubbletea model of the REPL
type Model struct {
	ctx context.Context
	ev  *Evaluator

	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Scrollback
	content strings.Builder
	lines   int

	// Input history
	history      []string // oldest first
	historyIndex int      // len(history) means a fresh line
	draft        string   // current input while navigating
}

// evalResultMsg carries the output of one evaluated line
type evalResultMsg struct {
	out Output
}

// historyLoadedMsg carries lines read from the history store
type historyLoadedMsg struct {
	lines []string
}

// New creates the REPL model
func New(ctx context.Context, ev *Evaluator) *Model {
	ti := textinput.New()
	ti.Prompt = ev.Config().Prompt
	ti.Placeholder = "x = 5"
	ti.CharLimit = 4000
	ti.Focus()

	m := &Model{
		ctx:   ctx,
		ev:    ev,
		input: ti,
	}
	m.appendLine(tui.SubtitleStyle.Render(Banner))
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadHistory)
}

func (m *Model) loadHistory() tea.Msg {
	return historyLoadedMsg{lines: m.ev.History(m.ctx)}
}

func (m *Model) evaluate(line string) tea.Cmd {
	return func() tea.Msg {
		return evalResultMsg{out: m.ev.Eval(m.ctx, line)}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := max(1, msg.Height-headerHeight-footerHeight)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = max(10, msg.Width-len(m.input.Prompt)-6)
		m.refresh()

	case historyLoadedMsg:
		m.history = append(msg.lines, m.history...)
		m.historyIndex = len(m.history)

	case evalResultMsg:
		m.appendLine(m.ev.Format(msg.out, true))
		if msg.out.Exit {
			m.appendLine(tui.SubtitleStyle.Render(Farewell))
			m.quitting = true
			return m, tea.Quit
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.appendLine(tui.SubtitleStyle.Render(Farewell))
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.Reset()
		m.appendLine(tui.EchoStyle.Render(m.ev.Config().Prompt + line))
		if strings.TrimSpace(line) != "" {
			m.history = append(m.history, line)
		}
		m.historyIndex = len(m.history)
		m.draft = ""
		return m, m.evaluate(line)

	case tea.KeyUp:
		if m.historyIndex > 0 {
			if m.historyIndex == len(m.history) {
				m.draft = m.input.Value()
			}
			m.historyIndex--
			m.input.SetValue(m.history[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex < len(m.history) {
			m.historyIndex++
			if m.historyIndex == len(m.history) {
				m.input.SetValue(m.draft)
			} else {
				m.input.SetValue(m.history[m.historyIndex])
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyCtrlL:
		m.content.Reset()
		m.lines = 0
		m.refresh()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting rubic..."
	}

	var b strings.Builder

	b.WriteString(tui.RenderTitle("rubic"))
	b.WriteString("\n")
	b.WriteString(tui.SubtitleStyle.Render("lexer and parser for a Ruby subset"))
	b.WriteString("\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	b.WriteString(tui.FocusedInputStyle.Width(max(0, m.width-2)).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(tui.RenderHelp("Enter: evaluate • ↑/↓: history • Ctrl+L: clear • Ctrl+C: quit"))

	return b.String()
}

func (m *Model) renderStatusBar() string {
	left := "session " + shortID(m.ev.Session())
	right := "history " + strconv.Itoa(len(m.history))
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)

	return tui.StatusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) appendLine(s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	if m.lines > 0 {
		m.content.WriteString("\n")
	}
	m.content.WriteString(s)
	m.lines++
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content.String())
	m.viewport.GotoBottom()
}

// Scrollback returns the text shown in the output area
func (m *Model) Scrollback() string {
	return m.content.String()
}

func shortID(id string) string {
	if id == "" {
		return "off"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the full-screen REPL
func Run(ctx context.Context, ev *Evaluator) error {
	p := tea.NewProgram(New(ctx, ev), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
