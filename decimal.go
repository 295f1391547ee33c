// Package decimalfp implements an arbitrary-precision decimal fixed-point
// number: an exact rational of the form sign * coefficient * 10^-precision,
// where coefficient is an unsigned arbitrary-precision integer and
// precision is the number of decimal fractional digits. Values are
// immutable; every operation that is not a scalar query returns a fresh
// Decimal.
package decimalfp

import (
	"github.com/mamrhein/decimalfp/internal/bigint"
)

// Decimal is an immutable decimal fixed-point number.
//
// The zero value is ready to use and represents 0 with precision 0.
type Decimal struct {
	neg   bool        // true iff the value is strictly negative
	coeff bigint.UInt // |value| * 10^precision, always >= 0
	prec  uint32      // number of fractional decimal digits
}

// newDecimal builds a Decimal and canonicalizes the sign of a coefficient
// that turned out to be zero: sign is 0 exactly when the coefficient is zero.
func newDecimal(neg bool, coeff bigint.UInt, prec uint32) Decimal {
	if coeff.IsZero() {
		neg = false
	}
	return Decimal{neg: neg, coeff: coeff, prec: prec}
}

// Sign returns -1, 0, or +1 depending on whether d is negative, zero, or
// positive.
func (d Decimal) Sign() int {
	if d.coeff.IsZero() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool { return d.coeff.IsZero() }

// IsNeg reports whether d is strictly negative.
func (d Decimal) IsNeg() bool { return d.neg && !d.coeff.IsZero() }

// IsInt reports whether d represents an integral value.
func (d Decimal) IsInt() bool {
	if d.prec == 0 || d.coeff.IsZero() {
		return true
	}
	return d.coeff.TrailingZeros() >= int(d.prec)
}

// Precision returns the number of decimal fractional digits stored in d.
func (d Decimal) Precision() int { return int(d.prec) }

// Real returns d, so that Decimal can participate in code written against
// the wider numeric tower's real/imag convention.
func (d Decimal) Real() Decimal { return d }

// Imag returns the zero Decimal, matching the numeric tower's convention
// that a real value has a zero imaginary part.
func (d Decimal) Imag() Decimal { return Decimal{} }

// Magnitude returns floor(log10(|d|)). It fails with a *ValueError if d is
// zero, since log10(0) is undefined.
func (d Decimal) Magnitude() (int, error) {
	if d.coeff.IsZero() {
		return 0, newValueError("magnitude of zero is undefined")
	}
	return d.coeff.DigitCount() - 1 - int(d.prec), nil
}

// Neg returns -d. Precision is preserved.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.neg, d.coeff, d.prec)
}

// Abs returns |d|. Precision is preserved.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.coeff, d.prec)
}

// align brings a and b to a common precision by multiplying the
// less-precise coefficient by the appropriate power of ten, returning the
// two aligned coefficients and the shared precision.
func align(a, b Decimal) (ac, bc bigint.UInt, prec uint32) {
	switch {
	case a.prec == b.prec:
		return a.coeff, b.coeff, a.prec
	case a.prec > b.prec:
		return a.coeff, b.coeff.MulPow10(int(a.prec - b.prec)), a.prec
	default:
		return a.coeff.MulPow10(int(b.prec - a.prec)), b.coeff, b.prec
	}
}

// normalizeCoeff strips the trailing zeros from (coeff, prec) that can be
// removed without exceeding floor, which bounds how far precision may
// drop (floor is typically 0, but quantize-like callers may want to stop
// earlier).
func normalizeCoeff(coeff bigint.UInt, prec uint32, floor uint32) (bigint.UInt, uint32) {
	if coeff.IsZero() {
		return coeff, floor
	}
	t := coeff.TrailingZeros()
	if t > int(prec-floor) {
		t = int(prec - floor)
	}
	if t <= 0 {
		return coeff, prec
	}
	q, _ := coeff.QuoRemPow10(t)
	return q, prec - uint32(t)
}
