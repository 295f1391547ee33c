package decimalfp

import (
	"math/big"

	"github.com/mamrhein/decimalfp/internal/bigint"
)

// Adjusted returns a Decimal whose stored precision is max(*prec, 0) and
// whose value is d rounded to a multiple of 10^-(*prec) using mode (or
// the process default if mode is nil). If prec is nil, it returns the
// Decimal with the minimal precision that preserves d's exact value
// (trailing fractional zeros stripped).
func (d Decimal) Adjusted(prec *int, mode *RoundingMode) (Decimal, error) {
	if prec == nil {
		coeff, p := normalizeCoeff(d.coeff, d.prec, 0)
		return newDecimal(d.neg, coeff, p), nil
	}
	p := *prec
	m := resolveRounding(mode)
	shift := int(d.prec) - p
	coeff := shiftRightRound(d.coeff, shift, m, d.Sign())
	storedPrec := uint32(0)
	switch {
	case p > 0:
		storedPrec = uint32(p)
	case p < 0:
		// Stored precision floors at 0, but the rounded value is still on
		// the order of 10^-p: restore that magnitude into the coefficient.
		coeff = coeff.MulPow10(-p)
	}
	return newDecimal(d.neg, coeff, storedPrec), nil
}

// Quantize returns d rounded to the nearest multiple of q using mode (or
// the process default if mode is nil). The result's stored precision is
// q's own precision.
func (d Decimal) Quantize(q Decimal, mode *RoundingMode) (Decimal, error) {
	if q.IsZero() {
		return Decimal{}, newArithmeticError("cannot quantize to a zero step")
	}
	m := resolveRounding(mode)
	dc, qc, _ := align(d, q)
	n, r := dc.QuoRem(qc)
	if m.increment(n, r, qc, d.Sign()) {
		n = n.Add(bigint.FromUint64(1))
	}
	return newDecimal(d.neg, n.Mul(q.coeff), q.prec), nil
}

// RoundToInt returns the nearest integer to d, using mode (or the process
// default if mode is nil).
func (d Decimal) RoundToInt(mode *RoundingMode) *big.Int {
	m := resolveRounding(mode)
	q := shiftRightRound(d.coeff, int(d.prec), m, d.Sign())
	z := q.Big()
	if d.neg {
		z.Neg(z)
	}
	return z
}

// Round returns d rounded to n fractional digits using mode; it is
// equivalent to d.Adjusted(&n, mode).
func (d Decimal) Round(n int, mode *RoundingMode) (Decimal, error) {
	return d.Adjusted(&n, mode)
}

// Trunc returns the integer part of d, truncated toward zero.
func (d Decimal) Trunc() *big.Int {
	q, _ := d.coeff.QuoRemPow10(int(d.prec))
	z := q.Big()
	if d.neg {
		z.Neg(z)
	}
	return z
}

// Floor returns the greatest integer <= d.
func (d Decimal) Floor() *big.Int {
	q, r := d.coeff.QuoRemPow10(int(d.prec))
	z := q.Big()
	if d.neg {
		z.Neg(z)
		if !r.IsZero() {
			z.Sub(z, big.NewInt(1))
		}
	}
	return z
}

// Ceil returns the least integer >= d.
func (d Decimal) Ceil() *big.Int {
	q, r := d.coeff.QuoRemPow10(int(d.prec))
	z := q.Big()
	if d.neg {
		z.Neg(z)
		return z
	}
	if !r.IsZero() {
		z.Add(z, big.NewInt(1))
	}
	return z
}

// AsFraction returns d as an exact rational (numerator, denominator) in
// lowest terms with a positive denominator.
func (d Decimal) AsFraction() (numerator, denominator *big.Int) {
	num := d.coeff.Big()
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.prec)), nil)
	if g := new(big.Int).GCD(nil, nil, num, den); g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	if d.neg {
		num.Neg(num)
	}
	return num, den
}

// AsIntegerRatio is an alias for AsFraction.
func (d Decimal) AsIntegerRatio() (numerator, denominator *big.Int) {
	return d.AsFraction()
}

// Numerator returns the numerator of d.AsFraction().
func (d Decimal) Numerator() *big.Int {
	n, _ := d.AsFraction()
	return n
}

// Denominator returns the denominator of d.AsFraction().
func (d Decimal) Denominator() *big.Int {
	_, den := d.AsFraction()
	return den
}

// AsTuple returns d decomposed as (sign bit, non-negative significand,
// exponent), where exponent equals -d.Precision().
func (d Decimal) AsTuple() (signBit int, significand *big.Int, exponent int) {
	if d.neg {
		signBit = 1
	}
	return signBit, d.coeff.Big(), -int(d.prec)
}
