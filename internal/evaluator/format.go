package evaluator

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxDisplayDigits is the widest number shown in positional notation.
const maxDisplayDigits = 12

// formatter renders numbers for the display.
type formatter struct {
	printer *message.Printer
}

func newFormatter(tag language.Tag) *formatter {
	return &formatter{printer: message.NewPrinter(tag)}
}

// render formats s if it is a number and returns it verbatim otherwise.
// In-progress expressions such as "3 +" are shown as typed.
func (f *formatter) render(s string) string {
	d, err := parseDecimal(s)
	if err != nil {
		return s
	}
	return f.format(s, d)
}

// format switches to scientific notation when either the number of significant
// digits or the literal's length exceeds maxDisplayDigits. The two checks
// differ for literals carrying a sign or a point, and both apply.
func (f *formatter) format(literal string, d *apd.Decimal) string {
	if d.NumDigits() > maxDisplayDigits || len(literal) > maxDisplayDigits {
		return scientific(d)
	}
	return f.grouped(d)
}

// grouped renders d with the locale's grouping and decimal separators. All
// fraction digits are kept.
func (f *formatter) grouped(d *apd.Decimal) string {
	if d.Sign() == 0 {
		return f.printer.Sprint(number.Decimal(0))
	}
	frac := 0
	if d.Exponent < 0 {
		frac = int(-d.Exponent)
	}
	// At most twelve significant digits reach this point, which float64
	// represents exactly enough for the rounding below to restore them.
	v, err := d.Float64()
	if err != nil {
		return plainString(d)
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(frac)))
}

// scientific renders d in the "0.0E0" pattern: one integer digit, one fraction
// digit, rounded half-even.
func scientific(d *apd.Decimal) string {
	if d.Sign() == 0 {
		return "0.0E0"
	}
	ctx := apd.BaseContext.WithPrecision(2)
	ctx.Rounding = apd.RoundHalfEven
	var r apd.Decimal
	if _, err := ctx.Round(&r, d); err != nil {
		return plainString(d)
	}

	// Coefficient digits of r, without sign or exponent.
	var coeff apd.Decimal
	coeff.Set(&r)
	coeff.Negative = false
	coeff.Exponent = 0
	digits := coeff.Text('f')
	exp := int(r.Exponent) + len(digits) - 1
	if len(digits) < 2 {
		digits += "0"
	}

	var sb strings.Builder
	if r.Negative {
		sb.WriteByte('-')
	}
	sb.WriteByte(digits[0])
	sb.WriteByte('.')
	sb.WriteByte(digits[1])
	sb.WriteByte('E')
	sb.WriteString(strconv.Itoa(exp))
	return sb.String()
}
