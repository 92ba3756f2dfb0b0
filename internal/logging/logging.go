// Package logging holds the process-wide logger shared by the calculator
// front ends.
package logging

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr at warn level until
// SetLevel is called.
var L = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "calc",
})

// SetLevel sets the level of L from its name ("debug", "info", "warn",
// "error").
func SetLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	L.SetLevel(level)
	return nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
