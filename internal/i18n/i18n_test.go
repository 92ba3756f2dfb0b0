package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogTranslates(t *testing.T) {
	en, err := New("en")
	if err != nil {
		t.Fatal(err)
	}
	if got := en.T("divide_by_zero"); got != "Cannot divide by zero" {
		t.Fatalf("wrong English text: %q", got)
	}
	de, err := New("de-AT")
	if err != nil {
		t.Fatal(err)
	}
	if got := de.T("divide_by_zero"); got != "Division durch Null ist nicht möglich" {
		t.Fatalf("wrong German text: %q", got)
	}
}

func TestCatalogFallback(t *testing.T) {
	c, err := New("fr")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.T("no_operand"); got != "No operand available" {
		t.Fatalf("no English fallback: %q", got)
	}
	if got := c.T("no.such.message"); got != "no.such.message" {
		t.Fatalf("unknown ID not returned verbatim: %q", got)
	}
}

func TestLanguages(t *testing.T) {
	have := make(map[language.Tag]bool)
	for _, tag := range Languages() {
		have[tag] = true
	}
	if !have[language.English] || !have[language.German] {
		t.Fatalf("missing embedded languages: %v", Languages())
	}
}
