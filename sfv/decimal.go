package sfv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxDecimalMantissa is the largest mantissa magnitude permitted at the
// narrowest exponent (-3), per RFC 9651 §3.3.2: 999,999,999,999,999.
const maxDecimalMantissa = 999_999_999_999_999

// maxIntegerMagnitude is the largest magnitude permitted for an Integer or
// Date bare item, per RFC 9651 §3.3.1.
const maxIntegerMagnitude = 999_999_999_999_999

// Decimal is PseudoDecimal from spec.md §3/§4.2: a fixed-point value
// represented as mantissa * 10^exponent, with exponent restricted to
// {0, -1, -2, -3}. It is deliberately not a general-purpose decimal type —
// RFC 9651 constrains range and precision narrowly enough that a plain
// (int64, int8) pair with a validation predicate is sufficient, and pulling
// in a numerics dependency for four exponent values would be overkill.
type Decimal struct {
	mantissa int64
	exponent int8
}

// NewDecimal constructs a Decimal from a mantissa and exponent, validating
// the magnitude bound spec.md §4.2 describes: |mantissa| <= 10^(12+|exponent|) - 1.
func NewDecimal(mantissa int64, exponent int8) (Decimal, error) {
	if exponent > 0 || exponent < -3 {
		return Decimal{}, newErr(ErrInvalidIntegerOrDecimal, -1, "decimal exponent %d out of range [-3, 0]", exponent)
	}
	limit := int64(1)
	for i := int8(0); i < -exponent; i++ {
		limit *= 10
	}
	limit = limit*1_000_000_000_000 - 1
	abs := mantissa
	if abs < 0 {
		abs = -abs
	}
	if abs > limit {
		return Decimal{}, newErr(ErrInvalidIntegerOrDecimal, -1, "decimal mantissa %d exceeds bound %d at exponent %d", mantissa, limit, exponent)
	}
	return Decimal{mantissa: mantissa, exponent: exponent}, nil
}

// DecimalFromFloat64 builds a Decimal from f by multiplying by 1000,
// rounding to nearest-even, and snapping to exponent -3, per spec.md §4.2.
func DecimalFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, newErr(ErrInvalidIntegerOrDecimal, -1, "decimal from non-finite float %v", f)
	}
	scaled := f * 1000
	rounded := math.RoundToEven(scaled)
	if math.Abs(rounded) > float64(math.MaxInt64) {
		return Decimal{}, newErr(ErrInvalidIntegerOrDecimal, -1, "decimal from float %v out of range", f)
	}
	return NewDecimal(int64(rounded), -3)
}

// Mantissa returns the decimal's mantissa.
func (d Decimal) Mantissa() int64 { return d.mantissa }

// Exponent returns the decimal's exponent.
func (d Decimal) Exponent() int8 { return d.exponent }

// Canonicalize normalizes d to the form the serializer emits: exponent in
// {-1, -2, -3}, with no trailing zero digits after the decimal point when
// the exponent is < -1, and exponent 0 re-expressed as -1 (mantissa * 10).
func (d Decimal) Canonicalize() Decimal {
	m, e := d.mantissa, d.exponent
	if e == 0 {
		m *= 10
		e = -1
	}
	for e < -1 && m%10 == 0 {
		m /= 10
		e++
	}
	return Decimal{mantissa: m, exponent: e}
}

// Equal reports whether d and other denote the same value after
// canonicalization.
func (d Decimal) Equal(other Decimal) bool {
	a, b := d.Canonicalize(), other.Canonicalize()
	return a.mantissa == b.mantissa && a.exponent == b.exponent
}

// Format renders the canonical decimal form: a required decimal point, a
// leading zero if needed, and the sign preserved.
func (d Decimal) Format() (string, error) {
	c := d.Canonicalize()
	if c.exponent > -1 || c.exponent < -3 {
		return "", newErr(ErrInvalidIntegerOrDecimal, -1, "canonical decimal exponent %d out of range", c.exponent)
	}
	neg := c.mantissa < 0
	abs := c.mantissa
	if neg {
		abs = -abs
	}
	if abs > maxDecimalMantissa {
		return "", newErr(ErrInvalidIntegerOrDecimal, -1, "decimal mantissa %d out of range", c.mantissa)
	}
	digits := strconv.FormatInt(abs, 10)
	fracLen := int(-c.exponent)
	for len(digits) <= fracLen {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-fracLen]
	fracPart := digits[len(digits)-fracLen:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String(), nil
}

func (d Decimal) String() string {
	s, err := d.Format()
	if err != nil {
		return fmt.Sprintf("<invalid decimal %d e%d>", d.mantissa, d.exponent)
	}
	return s
}
