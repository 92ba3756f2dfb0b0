package main

import (
	"image"
	"testing"

	"gioui.org/io/key"

	"github.com/fjl/decicalc/internal/config"
)

func TestCalcInput(t *testing.T) {
	ui := newTestUI(t)
	// input integer
	press(ui, "1", "2", "3")
	check(t, ui, "123")
	// decimal point
	press(ui, ".")
	check(t, ui, "123")
	press(ui, "6", "7")
	check(t, ui, "123.67")
	// grouping
	press(ui, "C", "1", "2", "3", "4")
	check(t, ui, "1,234")
}

func TestCalcBadInput(t *testing.T) {
	ui := newTestUI(t)
	press(ui, "1", "2", "3", ".", "2")
	check(t, ui, "123.2")
	press(ui, ".")
	check(t, ui, "123.2")
	if _, _, adv := ui.state.text(); adv == "" {
		t.Fatal("no advisory for second decimal point")
	}
	// the advisory goes away with the next key
	press(ui, "5")
	if _, _, adv := ui.state.text(); adv != "" {
		t.Fatalf("advisory not cleared: %q", adv)
	}
}

func TestCalcOperators(t *testing.T) {
	ui := newTestUI(t)
	press(ui, "1", "3", "4", ".", "2", "÷", "2", "=")
	check(t, ui, "67.1")
	if _, secondary, _ := ui.state.text(); secondary != "134.2 ÷ 2 = " {
		t.Fatalf("wrong history %q", secondary)
	}
	press(ui, "−", "7")
	if op := ui.calc.PendingOperator(); op != "" {
		t.Fatalf("operator pending after operand: %q", op)
	}
	press(ui, "=")
	check(t, ui, "60.1")
}

func TestCalcOpTwice(t *testing.T) {
	ui := newTestUI(t)
	press(ui, "1", "3", "3", "4", "÷", "÷")
	check(t, ui, "1334 ÷")
	press(ui, "=")
	check(t, ui, "1")
}

func TestCalcPaste(t *testing.T) {
	ui := newTestUI(t)
	ui.calc.Paste("12 × 12 =")
	check(t, ui, "144")
}

func TestKeyToken(t *testing.T) {
	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.Event{Name: "7"}, "7"},
		{key.Event{Name: "."}, "."},
		{key.Event{Name: "*"}, "×"},
		{key.Event{Name: "/"}, "÷"},
		{key.Event{Name: "-"}, "-"},
		{key.Event{Name: "-", Modifiers: key.ModAlt}, "±"},
		{key.Event{Name: "R"}, "√"},
		{key.Event{Name: key.NameReturn}, "="},
		{key.Event{Name: key.NameEscape}, "C"},
	}
	for _, test := range tests {
		got, ok := keyToken(test.ev)
		if !ok || got != test.want {
			t.Errorf("keyToken(%q, %v) = %q, %v; want %q", test.ev.Name, test.ev.Modifiers, got, ok, test.want)
		}
	}
	if _, ok := keyToken(key.Event{Name: "Q"}); ok {
		t.Error("unexpected token for Q")
	}
}

func TestButtonKinds(t *testing.T) {
	ui := newTestUI(t)
	ops := 0
	for row := range ui.buttons {
		for _, b := range ui.buttons[row] {
			if b.isOperator() {
				ops++
				if b.color != opColor {
					t.Errorf("operator %q has wrong color", b.token)
				}
			}
		}
	}
	if ops != 4 {
		t.Fatalf("found %d operator buttons", ops)
	}
	if normalizeOp("−") != "-" {
		t.Fatal("minus glyph not normalized")
	}
}

func TestGridCellSize(t *testing.T) {
	g := grid{rows: 5, cols: 4, spacing: 10}
	w, h := g.cellSize(image.Pt(430, 540))
	if w != 100 || h != 100 {
		t.Fatalf("wrong cell size %vx%v", w, h)
	}
}

func newTestUI(t *testing.T) *calcUI {
	t.Helper()
	ui, err := newUI(nil, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return ui
}

func press(ui *calcUI, tokens ...string) {
	for _, tok := range tokens {
		ui.press(tok)
	}
}

func check(t *testing.T, ui *calcUI, text string) {
	t.Helper()
	if display, _, _ := ui.state.text(); display != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q", display, text)
	}
}
