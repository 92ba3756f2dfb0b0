package evaluator

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// precision is the number of significant digits kept by every result.
const precision = 10

const (
	opAdd calcOp = iota
	opSub
	opMul
	opDiv
)

type calcOp int

// parseOp maps an operator symbol to its operation.
func parseOp(symbol string) (calcOp, bool) {
	switch symbol {
	case "+":
		return opAdd, true
	case "-":
		return opSub, true
	case "×":
		return opMul, true
	case "÷":
		return opDiv, true
	default:
		return 0, false
	}
}

func (op calcOp) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "×"
	case opDiv:
		return "÷"
	default:
		panic("unknown op")
	}
}

// apply computes x op y in the calculator's decimal context.
func (op calcOp) apply(x, y *apd.Decimal) (*apd.Decimal, *Error) {
	var (
		ctx = decimalContext()
		z   = new(apd.Decimal)
		err error
	)
	switch op {
	case opAdd:
		_, err = ctx.Add(z, x, y)
	case opSub:
		_, err = ctx.Sub(z, x, y)
	case opMul:
		_, err = ctx.Mul(z, x, y)
	case opDiv:
		if y.Sign() == 0 {
			return nil, newError(DivideByZero, nil)
		}
		_, err = ctx.Quo(z, x, y)
	default:
		panic("unknown op")
	}
	if err != nil {
		return nil, newError(CalculationError, err)
	}
	return z, nil
}

// decimalContext returns the context used for all arithmetic: ten
// significant digits, rounding half-up.
func decimalContext() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}

// squareRoot computes √x. The root is taken in floating point and then
// rounded into the decimal context.
func squareRoot(x *apd.Decimal) (*apd.Decimal, *Error) {
	if x.Sign() < 0 {
		return nil, newError(NegativeSqrt, nil)
	}
	f, err := x.Float64()
	if err != nil {
		return nil, newError(UnaryOperationError, err)
	}
	root := math.Sqrt(f)
	if math.IsInf(root, 0) || math.IsNaN(root) {
		return nil, newError(UnaryOperationError, fmt.Errorf("square root of %s out of range", x))
	}
	z := new(apd.Decimal)
	if _, err := z.SetFloat64(root); err != nil {
		return nil, newError(UnaryOperationError, err)
	}
	if _, err := decimalContext().Round(z, z); err != nil {
		return nil, newError(UnaryOperationError, err)
	}
	return z, nil
}

var hundred = apd.New(100, 0)

// percent divides x by 100.
func percent(x *apd.Decimal) (*apd.Decimal, *Error) {
	z := new(apd.Decimal)
	if _, err := decimalContext().Quo(z, x, hundred); err != nil {
		return nil, newError(UnaryOperationError, err)
	}
	return z, nil
}

// parseDecimal reads an operand buffer. Accepted are an optional leading '-',
// decimal digits and at most one '.', with at least one digit overall; a bare
// leading or trailing point is allowed ("5.", ".5").
func parseDecimal(s string) (*apd.Decimal, error) {
	if !isLiteral(s) {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	body = strings.TrimSuffix(body, ".")
	if strings.HasPrefix(body, ".") {
		body = "0" + body
	}
	if neg {
		body = "-" + body
	}
	d, _, err := apd.NewFromString(body)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

func isLiteral(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// plainString renders d without exponent, keeping its scale. Zero never
// carries a sign.
func plainString(d *apd.Decimal) string {
	if d.Sign() == 0 && d.Negative {
		var z apd.Decimal
		z.Set(d)
		z.Negative = false
		return z.Text('f')
	}
	return d.Text('f')
}

// canonicalString renders d without exponent and with trailing zeros
// stripped.
func canonicalString(d *apd.Decimal) string {
	if d.Sign() == 0 {
		return "0"
	}
	var z apd.Decimal
	z.Reduce(d)
	return z.Text('f')
}
