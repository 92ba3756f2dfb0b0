package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fjl/decicalc/internal/config"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	m, err := newModel(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// typeKeys sends each rune of input as a key press.
func typeKeys(m model, input string) model {
	for _, r := range input {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(model)
	}
	return m
}

func pressKey(m model, t tea.KeyType) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: t})
	return next.(model), cmd
}

func TestModelCalculates(t *testing.T) {
	m := newTestModel(t)
	m = typeKeys(m, "12*3")
	if m.screen.display != "12 × 3" {
		t.Fatalf("wrong display %q", m.screen.display)
	}
	m, _ = pressKey(m, tea.KeyEnter)
	if m.screen.display != "36" || m.screen.secondary != "12 × 3 = " {
		t.Fatalf("wrong displays %q / %q", m.screen.display, m.screen.secondary)
	}
	view := m.View()
	if !strings.Contains(view, "36") || !strings.Contains(view, "12 × 3 =") {
		t.Fatalf("view misses result:\n%s", view)
	}
}

func TestModelKeyAliases(t *testing.T) {
	m := newTestModel(t)
	m = typeKeys(m, "81sn")
	// n has no effect outside of operand entry.
	if m.screen.display != "9" {
		t.Fatalf("wrong display %q", m.screen.display)
	}
	m = typeKeys(m, "4n/2=")
	if m.screen.display != "-2" {
		t.Fatalf("wrong display %q", m.screen.display)
	}
	m, _ = pressKey(m, tea.KeyEsc)
	if m.screen.display != "0" || m.screen.secondary != "" {
		t.Fatalf("not cleared: %q / %q", m.screen.display, m.screen.secondary)
	}
}

func TestModelAdvisory(t *testing.T) {
	m := newTestModel(t)
	m = typeKeys(m, "8/0=")
	if m.screen.display != "Error" {
		t.Fatalf("wrong display %q", m.screen.display)
	}
	if m.screen.advisory != "Cannot divide by zero" {
		t.Fatalf("wrong advisory %q", m.screen.advisory)
	}
	if !strings.Contains(m.View(), "Cannot divide by zero") {
		t.Fatal("advisory not rendered")
	}
	// The next key clears the advisory.
	m = typeKeys(m, "1")
	if m.screen.advisory != "" || m.screen.display != "1" {
		t.Fatalf("advisory %q display %q", m.screen.advisory, m.screen.display)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("no command for quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key did not quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = typeKeys(m, "?")
	if !m.help.ShowAll {
		t.Fatal("full help not shown")
	}
	if !strings.Contains(m.View(), "square root") {
		t.Fatal("full help misses bindings")
	}
}
