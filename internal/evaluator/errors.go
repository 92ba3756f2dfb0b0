package evaluator

// Kind classifies the advisories raised while processing input.
type Kind int

const (
	DuplicateDecimalPoint Kind = iota + 1
	NoOperand
	NegativeSqrt
	UnaryOperationError
	IncompleteExpression
	DivideByZero
	UnsupportedOperator
	CalculationError
)

var kindKeys = map[Kind]string{
	DuplicateDecimalPoint: "duplicate_decimal_point",
	NoOperand:             "no_operand",
	NegativeSqrt:          "negative_sqrt",
	UnaryOperationError:   "unary_operation_error",
	IncompleteExpression:  "incomplete_expression",
	DivideByZero:          "divide_by_zero",
	UnsupportedOperator:   "unsupported_operator",
	CalculationError:      "calculation_error",
}

var kindNames = map[Kind]string{
	DuplicateDecimalPoint: "only one decimal point is allowed",
	NoOperand:             "no operand available",
	NegativeSqrt:          "cannot take square root of a negative number",
	UnaryOperationError:   "unary operation error",
	IncompleteExpression:  "incomplete expression",
	DivideByZero:          "cannot divide by zero",
	UnsupportedOperator:   "unsupported operator",
	CalculationError:      "calculation error",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown advisory"
}

// Key returns a stable identifier for the kind, suitable as a message ID.
func (k Kind) Key() string {
	if s, ok := kindKeys[k]; ok {
		return s
	}
	return "unknown"
}

// forcesError reports whether the advisory puts the evaluator into StateError.
// A duplicate decimal point only rejects the keystroke.
func (k Kind) forcesError() bool {
	return k != DuplicateDecimalPoint
}

// Error is an advisory raised by an input token. It never terminates the
// evaluator; the caller decides how to surface it.
type Error struct {
	Kind Kind
	Err  error // underlying cause, may be nil
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is works with the
// sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrDuplicateDecimalPoint = &Error{Kind: DuplicateDecimalPoint}
	ErrNoOperand             = &Error{Kind: NoOperand}
	ErrNegativeSqrt          = &Error{Kind: NegativeSqrt}
	ErrUnaryOperation        = &Error{Kind: UnaryOperationError}
	ErrIncompleteExpression  = &Error{Kind: IncompleteExpression}
	ErrDivideByZero          = &Error{Kind: DivideByZero}
	ErrUnsupportedOperator   = &Error{Kind: UnsupportedOperator}
	ErrCalculation           = &Error{Kind: CalculationError}
)
