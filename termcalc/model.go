package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fjl/decicalc/internal/config"
	"github.com/fjl/decicalc/internal/evaluator"
	"github.com/fjl/decicalc/internal/logging"
	"github.com/fjl/decicalc/internal/presenter"
)

// screen receives display updates from the presenter.
type screen struct {
	display   string
	secondary string
	advisory  string
}

func (s *screen) UpdateDisplay(value string)          { s.display = value }
func (s *screen) UpdateSecondaryDisplay(value string) { s.secondary = value }

// copiedMsg reports the result of copying the display to the clipboard.
type copiedMsg struct{ err error }

// model is the Bubble Tea model of the calculator.
type model struct {
	calc        *presenter.Presenter
	screen      *screen
	keys        keyMap
	help        help.Model
	width       int
	showHistory bool
	status      string
}

func newModel(cfg config.Config) (model, error) {
	s := new(screen)
	p, err := presenter.New(s,
		presenter.WithLocale(cfg.Tag()),
		presenter.WithLogger(logging.L),
		presenter.WithAdvisor(func(_ evaluator.Kind, msg string) { s.advisory = msg }),
	)
	if err != nil {
		return model{}, err
	}
	return model{
		calc:        p,
		screen:      s,
		keys:        newKeyMap(),
		help:        help.New(),
		width:       cfg.TUI.Width,
		showHistory: cfg.TUI.ShowHistory,
	}, nil
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			return m, copyCmd(m.calc.Display())
		}
		if tok, ok := m.keys.token(msg.String()); ok {
			m.screen.advisory = ""
			m.status = ""
			m.calc.Press(tok)
		}

	case copiedMsg:
		if msg.err != nil {
			logging.Warnf("copy failed: %v", msg.err)
			m.status = "copy failed"
		} else {
			m.status = "copied"
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// copyCmd writes text to the system clipboard.
func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// View implements tea.Model.
func (m model) View() string {
	inner := m.width - frameStyle.GetHorizontalFrameSize()
	var lines []string
	if m.showHistory {
		lines = append(lines, historyStyle.Width(inner).Render(orSpace(m.screen.secondary)))
	}
	display := m.screen.display
	if op := m.calc.PendingOperator(); op != "" {
		// Highlight the operator waiting for its right operand.
		display = strings.TrimSuffix(display, op) + operatorStyle.Render(op)
	}
	lines = append(lines, displayStyle.Width(inner).Render(display))

	status := advisoryStyle.Render(m.screen.advisory)
	if m.screen.advisory == "" {
		status = historyStyle.Render(m.status)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		frameStyle.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Right, lines...)),
		status,
		m.help.View(m.keys),
	)
	return docStyle.Render(body)
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}
