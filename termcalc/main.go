// Command termcalc is a terminal calculator.
//
// Without arguments it starts an interactive calculator. The eval subcommand
// processes a token sequence and prints the result, which is handy for
// scripts and for checking the evaluator from the shell:
//
//	termcalc eval '5+3=='
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fjl/decicalc/internal/config"
	"github.com/fjl/decicalc/internal/evaluator"
	"github.com/fjl/decicalc/internal/logging"
	"github.com/fjl/decicalc/internal/presenter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}

// newRootCmd creates the command tree. Tests create fresh instances.
func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     config.Config
	)
	cmd := &cobra.Command{
		Use:   "termcalc",
		Short: "A decimal calculator for the terminal",
		Long: `termcalc is a pocket calculator with exact decimal arithmetic
(ten significant digits, rounded half-up).

Running without a subcommand starts the interactive calculator.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}
			return logging.SetLevel(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
	}
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is calc.yaml in the user config directory)")
	cmd.PersistentFlags().String("locale", "en", `number and message locale (e.g. "en", "de")`)
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newEvalCmd(&cfg))
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// runTUI runs the interactive calculator until the user quits.
func runTUI(cfg config.Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	logging.Infof("starting calculator, locale %s", cfg.Tag())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running calculator: %w", err)
	}
	return nil
}

func newEvalCmd(cfg *config.Config) *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "eval TOKENS...",
		Short: "Evaluate a token sequence and print the display",
		Long: `eval feeds every character of its arguments to the calculator, as if the
keys had been pressed, and prints the final display and the history.

Tokens: 0-9 . + - − × ÷ √ % = C ±`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.OutOrStdout(), *cfg, strings.Join(args, ""), trace)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the display after every token")
	return cmd
}

// evalView collects the presenter's output for eval.
type evalView struct {
	out       io.Writer
	trace     bool
	display   string
	secondary string
	advisory  string
}

func (v *evalView) UpdateDisplay(value string) {
	v.display = value
	if v.trace {
		fmt.Fprintf(v.out, "  %s\n", value)
	}
}

func (v *evalView) UpdateSecondaryDisplay(value string) { v.secondary = value }

func runEval(out io.Writer, cfg config.Config, input string, trace bool) error {
	view := &evalView{out: out}
	p, err := presenter.New(view,
		presenter.WithLocale(cfg.Tag()),
		presenter.WithLogger(logging.L),
		presenter.WithAdvisor(func(kind evaluator.Kind, msg string) {
			if kind == evaluator.DuplicateDecimalPoint {
				logging.Warnf("%s", msg)
				return
			}
			view.advisory = msg
		}),
	)
	if err != nil {
		return err
	}
	view.trace = trace
	for _, tok := range evaluator.Tokenize(input) {
		if trace {
			fmt.Fprintf(out, "%s\n", tok)
		}
		p.Press(tok)
	}

	if view.secondary != "" {
		fmt.Fprintln(out, view.secondary)
	}
	fmt.Fprintln(out, view.display)
	if p.Display() == "Error" {
		return fmt.Errorf("%s", view.advisory)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var (
		path  string
		force bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Write(config.Default(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", "", "destination (default is the user config directory)")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
