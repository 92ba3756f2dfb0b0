package evaluator

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormatRender(t *testing.T) {
	f := newFormatter(language.English)
	tests := []struct{ in, want string }{
		{"0", "0"},
		{"-0", "0"},
		{"0.00", "0"},
		{"7", "7"},
		{"-1234", "-1,234"},
		{"1000000", "1,000,000"},
		{"0.0000000001", "0.0000000001"},
		{"123456789012", "123,456,789,012"},
		{"1234567890123", "1.2E12"},
		{"1250000000000", "1.2E12"},
		{"1350000000000", "1.4E12"},
		{"9960000000000", "1.0E13"},
		{"0.00000000001", "1.0E-11"},
		{"0.000000000000", "0.0E0"},
		{"-9876543210987", "-9.9E12"},
		{"3 +", "3 +"},
		{"3 + 4", "3 + 4"},
		{"Error", "Error"},
		{".", "."},
	}
	for _, test := range tests {
		if got := f.render(test.in); got != test.want {
			t.Errorf("render(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

// Numbers at the width limit with long fractions must keep every digit.
func TestFormatLongFractions(t *testing.T) {
	en := newFormatter(language.English)
	de := newFormatter(language.German)
	tests := []struct{ in, en, de string }{
		{"0.1234567891", "0.1234567891", "0,1234567891"},
		{"12345.123456", "12,345.123456", "12.345,123456"},
		{"123456789.99", "123,456,789.99", "123.456.789,99"},
		{"9999.9999999", "9,999.9999999", "9.999,9999999"},
		{"-0.123456789", "-0.123456789", "-0,123456789"},
		{"0.9999999999", "0.9999999999", "0,9999999999"},
		// one character more switches to scientific notation
		{"0.12345678912", "1.2E-1", "1.2E-1"},
	}
	for _, test := range tests {
		if got := en.render(test.in); got != test.en {
			t.Errorf("render(%q) = %q, want %q", test.in, got, test.en)
		}
		if got := de.render(test.in); got != test.de {
			t.Errorf("render(%q) in German = %q, want %q", test.in, got, test.de)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	f := newFormatter(language.English)
	for _, in := range []string{"1", "12", "1234", "1234567.89", "-42.5", "1234567890123", "0.001"} {
		once := f.render(in)
		if twice := f.render(once); twice != once {
			t.Errorf("render not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	valid := map[string]string{
		"5":     "5",
		"5.":    "5",
		".5":    "0.5",
		"-.5":   "-0.5",
		"-5.25": "-5.25",
		"007":   "7",
	}
	for in, want := range valid {
		d, err := parseDecimal(in)
		if err != nil {
			t.Errorf("parseDecimal(%q): %v", in, err)
			continue
		}
		if got := plainString(d); got != want {
			t.Errorf("parseDecimal(%q) = %s, want %s", in, got, want)
		}
	}
	for _, in := range []string{"", ".", "-", "-.", "1.2.3", "1e5", "NaN", "Inf", "+5", "1,000", "5 + 3"} {
		if _, err := parseDecimal(in); err == nil {
			t.Errorf("parseDecimal(%q) succeeded", in)
		}
	}
}

func TestCanonicalString(t *testing.T) {
	tests := map[string]string{
		"2.500":  "2.5",
		"100":    "100",
		"0.000":  "0",
		"-0":     "0",
		"-3.10":  "-3.1",
		"0.0001": "0.0001",
	}
	for in, want := range tests {
		d, err := parseDecimal(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := canonicalString(d); got != want {
			t.Errorf("canonicalString(%q) = %q, want %q", in, got, want)
		}
	}
}
