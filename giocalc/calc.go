package main

import (
	"sync"

	"gioui.org/io/key"

	"github.com/fjl/decicalc/internal/evaluator"
)

// calcState holds what the UI shows. The presenter writes it while handling
// input, the layout code reads it when drawing a frame.
type calcState struct {
	mu        sync.Mutex
	display   string
	secondary string
	advisory  string
}

// UpdateDisplay implements presenter.View.
func (s *calcState) UpdateDisplay(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = value
}

// UpdateSecondaryDisplay implements presenter.View.
func (s *calcState) UpdateSecondaryDisplay(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secondary = value
}

// advise records an advisory message. It is shown until the next key press.
func (s *calcState) advise(_ evaluator.Kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advisory = message
}

func (s *calcState) clearAdvisory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advisory = ""
}

// text returns the main display, the history line and the advisory.
func (s *calcState) text() (display, secondary, advisory string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display, s.secondary, s.advisory
}

// keyToken translates a key event into a calculator token. It returns false for
// keys the calculator doesn't use.
func keyToken(e key.Event) (string, bool) {
	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		return e.Name, true
	case "+":
		return "+", true
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			return "±", true
		}
		return "-", true
	case "*":
		return "×", true
	case "/":
		return "÷", true
	case "%":
		return "%", true
	case "R":
		return "√", true
	case "=", key.NameEnter, key.NameReturn:
		return "=", true
	case key.NameEscape, key.NameDeleteBackward, key.NameDeleteForward:
		return "C", true
	default:
		return "", false
	}
}
