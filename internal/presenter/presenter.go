// Package presenter connects a calculator front end to the evaluator.
//
// The front end implements View and forwards every key press to
// Presenter.Press. The presenter runs the token through the evaluator,
// updates the main and secondary displays, and reports advisories as
// localized messages.
package presenter

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fjl/decicalc/internal/evaluator"
	"github.com/fjl/decicalc/internal/i18n"
	"golang.org/x/text/language"
)

// View is implemented by front ends.
type View interface {
	// UpdateDisplay shows the main display value.
	UpdateDisplay(value string)
	// UpdateSecondaryDisplay shows the expression history.
	UpdateSecondaryDisplay(value string)
}

// Presenter serializes input from a front end into one evaluator. It is safe
// for concurrent use.
type Presenter struct {
	mu       sync.Mutex
	eval     *evaluator.Evaluator
	view     View
	messages *i18n.Catalog
	advise   func(kind evaluator.Kind, message string)
	log      *log.Logger
}

type config struct {
	locale language.Tag
	log    *log.Logger
	advise func(evaluator.Kind, string)
}

// Option configures a Presenter.
type Option func(*config)

// WithLocale sets the locale of number grouping and advisory messages.
func WithLocale(tag language.Tag) Option {
	return func(c *config) { c.locale = tag }
}

// WithLogger sets the logger for display updates and advisories.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithAdvisor sets the function receiving advisories. The message is
// translated into the presenter's locale.
func WithAdvisor(fn func(kind evaluator.Kind, message string)) Option {
	return func(c *config) { c.advise = fn }
}

// New creates a presenter for view and shows the initial display.
func New(view View, opts ...Option) (*Presenter, error) {
	cfg := config{locale: language.English, log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}
	messages, err := i18n.New(cfg.locale.String())
	if err != nil {
		return nil, err
	}
	if _, _, conf := language.NewMatcher(i18n.Languages()).Match(cfg.locale); conf == language.No {
		cfg.log.Warn("no translation for locale, advisories are shown in English", "locale", cfg.locale)
	}
	p := &Presenter{
		eval: evaluator.New(
			evaluator.WithLocale(cfg.locale),
			evaluator.WithLogger(cfg.log),
		),
		view:     view,
		messages: messages,
		advise:   cfg.advise,
		log:      cfg.log,
	}
	view.UpdateDisplay(p.eval.Display())
	return p, nil
}

// Press handles one input token. After "=" the secondary display shows the
// history of the calculation, after "C" it is cleared.
func (p *Presenter) Press(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.press(token)
}

// PressAll handles a sequence of tokens as one unit. No other input is
// processed in between.
func (p *Presenter) PressAll(tokens []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, tok := range tokens {
		p.press(tok)
	}
}

// Paste feeds text into the calculator one character at a time.
func (p *Presenter) Paste(text string) {
	p.PressAll(evaluator.Tokenize(text))
}

func (p *Presenter) press(token string) {
	display, err := p.eval.Process(token)
	switch token {
	case "=":
		p.view.UpdateSecondaryDisplay(p.eval.FullExpression())
	case "C":
		p.view.UpdateSecondaryDisplay("")
	}
	p.log.Debug("display updated", "token", token, "display", display, "state", p.eval.State())
	p.view.UpdateDisplay(display)

	var adv *evaluator.Error
	if errors.As(err, &adv) {
		msg := p.messages.T(adv.Kind.Key())
		p.log.Info("advisory", "kind", adv.Kind.Key(), "message", msg)
		if p.advise != nil {
			p.advise(adv.Kind, msg)
		}
	}
}

// Display returns the current display value.
func (p *Presenter) Display() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eval.Display()
}

// Expression returns the history of the last calculation.
func (p *Presenter) Expression() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eval.FullExpression()
}

// PendingOperator returns the operator waiting for its right operand, or ""
// when the calculator is not waiting for one.
func (p *Presenter) PendingOperator() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.eval.State() != evaluator.StateOperator {
		return ""
	}
	return p.eval.Operator()
}
