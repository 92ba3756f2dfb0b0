package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	c, err := Load(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if c != Default() {
		t.Fatalf("wrong defaults: %+v", c)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "locale: de\ntui:\n  show_history: false\n  width: 40\n"
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(nil, file)
	if err != nil {
		t.Fatal(err)
	}
	if c.Locale != "de" || c.TUI.ShowHistory || c.TUI.Width != 40 {
		t.Fatalf("file not applied: %+v", c)
	}
	if c.LogLevel != "warn" {
		t.Fatalf("default lost: %+v", c)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("CALC_LOCALE", "de")
	t.Setenv("CALC_TUI_WIDTH", "50")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("locale", "en", "")
	flags.String("log-level", "warn", "")
	if err := flags.Parse([]string{"--log-level", "debug"}); err != nil {
		t.Fatal(err)
	}

	c, err := Load(flags, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Locale != "de" {
		t.Errorf("env locale not applied: %q", c.Locale)
	}
	if c.TUI.Width != 50 {
		t.Errorf("env width not applied: %d", c.TUI.Width)
	}
	if c.LogLevel != "debug" {
		t.Errorf("flag not applied: %q", c.LogLevel)
	}
}

func TestLoadInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(file, []byte("tui:\n  width: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(nil, file); err == nil {
		t.Fatal("expected error for narrow width")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "calc.yaml")
	want := Default()
	want.Locale = "de"
	want.TUI.Width = 44
	if err := Write(want, path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("round trip mismatch\n  got: %+v\n want: %+v", got, want)
	}
}
