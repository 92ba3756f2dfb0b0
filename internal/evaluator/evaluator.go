package evaluator

import (
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/language"
)

// errorText is shown while the evaluator is in StateError.
const errorText = "Error"

// Evaluator is the calculator state machine. The zero value is not usable;
// create one with New.
type Evaluator struct {
	state      State
	left       string
	right      string
	operator   string
	expression string
	display    string

	format  *formatter
	log     *log.Logger
	advisor func(*Error)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLocale sets the locale used for digit grouping. The default is English.
func WithLocale(tag language.Tag) Option {
	return func(e *Evaluator) { e.format = newFormatter(tag) }
}

// WithLogger sets the logger receiving debug output about rejected input.
func WithLogger(l *log.Logger) Option {
	return func(e *Evaluator) { e.log = l }
}

// WithAdvisor registers a callback that is invoked with every advisory, in
// addition to the advisory being returned from Process.
func WithAdvisor(fn func(*Error)) Option {
	return func(e *Evaluator) { e.advisor = fn }
}

// New creates an evaluator in StateIdle showing "0".
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		state:   StateIdle,
		display: "0",
		format:  newFormatter(language.English),
		log:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ProcessInput handles a single token and returns the new display.
// Unrecognized tokens leave the evaluator unchanged.
func (e *Evaluator) ProcessInput(token string) string {
	display, _ := e.Process(token)
	return display
}

// Process is like ProcessInput but also returns the advisory raised by the
// token, if any. The returned error is always an *Error.
func (e *Evaluator) Process(token string) (string, error) {
	var (
		adv     *Error
		resumed bool // the token recovered from its own advisory
	)
	switch {
	case isUnaryOperator(token):
		adv = e.unary(token)
	case isDigitOrDecimal(token):
		adv = e.digit(token)
	case isBinaryOperator(token):
		adv = e.binary(token)
		resumed = adv != nil
	case token == "=":
		adv = e.equals()
	case token == "C":
		e.clear()
	case token == "±":
		e.toggleSign()
	default:
		e.log.Debug("ignoring token", "token", token)
	}
	if adv == nil {
		return e.display, nil
	}

	if adv.Kind.forcesError() && !resumed {
		e.state = StateError
		e.display = errorText
	}
	e.log.Debug("advisory", "kind", adv.Kind.Key(), "token", token, "err", adv.Err)
	if e.advisor != nil {
		e.advisor(adv)
	}
	return e.display, adv
}

// FullExpression returns the history of the last completed calculation,
// e.g. "3 + 4 = ".
func (e *Evaluator) FullExpression() string { return e.expression }

// Display returns the current display text.
func (e *Evaluator) Display() string { return e.display }

// State returns the current input state.
func (e *Evaluator) State() State { return e.state }

// Operator returns the pending binary operator, or "" if there is none.
func (e *Evaluator) Operator() string { return e.operator }

// digit appends a digit or decimal point to the active operand.
func (e *Evaluator) digit(d string) *Error {
	active := e.left
	if e.state == StateRightOperand {
		active = e.right
	}
	if d == "." && strings.Contains(active, ".") {
		return newError(DuplicateDecimalPoint, nil)
	}

	switch e.state {
	case StateError, StateIdle, StateDisplay:
		// A digit after a result starts a new calculation.
		e.expression = ""
		e.left = d
		e.state = StateLeftOperand
	case StateLeftOperand:
		e.left += d
	case StateOperator:
		e.right = d
		e.state = StateRightOperand
	case StateRightOperand:
		e.right += d
	}
	e.refresh()
	return nil
}

// binary records a binary operator. Entering an operator while a right operand
// is pending computes the pending operation first. If that calculation fails
// its advisory is returned, but the new operator is recorded anyway and the
// left operand is kept, so "8 ÷ 0 +" continues as "8 +".
func (e *Evaluator) binary(op string) *Error {
	if op == "−" {
		op = "-"
	}
	var adv *Error
	switch e.state {
	case StateLeftOperand, StateDisplay, StateOperator:
	case StateRightOperand:
		adv = e.calculate()
	default:
		return nil
	}
	e.operator = op
	e.state = StateOperator
	e.refresh()
	return adv
}

// unary applies √ or % to the left operand.
func (e *Evaluator) unary(op string) *Error {
	if e.left == "" {
		return newError(NoOperand, nil)
	}
	x, err := parseDecimal(e.left)
	if err != nil {
		return newError(UnaryOperationError, err)
	}

	var (
		z   *apd.Decimal
		adv *Error
	)
	if op == "√" {
		z, adv = squareRoot(x)
	} else {
		z, adv = percent(x)
	}
	if adv != nil {
		return adv
	}
	e.left = canonicalString(z)
	e.state = StateDisplay
	e.refresh()
	return nil
}

// equals completes the pending calculation. Without a right operand the left
// operand is used for both sides, so "5 + =" computes 5 + 5.
func (e *Evaluator) equals() *Error {
	if e.left == "" || e.operator == "" {
		return newError(IncompleteExpression, nil)
	}
	if e.right == "" {
		e.right = e.left
	}
	return e.calculate()
}

// calculate evaluates left operator right. Repeating "=" from StateDisplay
// applies the stored operator and right operand to the current result.
func (e *Evaluator) calculate() *Error {
	repeat := e.state == StateDisplay
	if repeat && (e.operator == "" || e.right == "") {
		return nil
	}

	x, err := parseDecimal(e.left)
	if err != nil {
		return newError(CalculationError, err)
	}
	y, err := parseDecimal(e.right)
	if err != nil {
		return newError(CalculationError, err)
	}
	if !repeat {
		// Pin the right operand for repeated "=".
		e.right = plainString(y)
	}

	op, ok := parseOp(e.operator)
	if !ok {
		return newError(UnsupportedOperator, nil)
	}
	z, adv := op.apply(x, y)
	if adv != nil {
		return adv
	}

	e.expression = e.format.render(plainString(x)) + " " + e.operator + " " + plainString(y) + " = "
	e.left = canonicalString(z)
	e.state = StateDisplay
	e.refresh()
	return nil
}

// toggleSign flips the sign of the operand being entered.
func (e *Evaluator) toggleSign() {
	var active *string
	switch e.state {
	case StateLeftOperand:
		active = &e.left
	case StateRightOperand:
		active = &e.right
	default:
		return
	}
	if *active == "" {
		return
	}
	if strings.HasPrefix(*active, "-") {
		*active = (*active)[1:]
	} else {
		*active = "-" + *active
	}
	e.refresh()
}

// clear resets the evaluator to its initial state.
func (e *Evaluator) clear() {
	e.state = StateIdle
	e.left = ""
	e.right = ""
	e.operator = ""
	e.expression = ""
	e.display = "0"
}

// refresh recomputes the display from the state and operand buffers.
func (e *Evaluator) refresh() {
	text := e.left
	switch e.state {
	case StateOperator:
		text = e.left + " " + e.operator
	case StateRightOperand:
		text = e.left + " " + e.operator + " " + e.right
	}
	e.display = e.format.render(text)
}

func isDigitOrDecimal(token string) bool {
	return len(token) == 1 && (token[0] == '.' || token[0] >= '0' && token[0] <= '9')
}

func isBinaryOperator(token string) bool {
	switch token {
	case "+", "-", "×", "÷", "−":
		return true
	}
	return false
}

func isUnaryOperator(token string) bool {
	return token == "√" || token == "%"
}

// Tokenize splits text into input tokens, one per character. White space is
// dropped. The result can be fed to ProcessInput one token at a time.
func Tokenize(text string) []string {
	var tokens []string
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}
