package decimalfp

import (
	"math/big"

	"github.com/mamrhein/decimalfp/internal/bigint"
)

// Add returns d+x exactly. The result's precision is max(d.Precision(),
// x.Precision()).
func (d Decimal) Add(x Decimal) Decimal {
	dc, xc, prec := align(d, x)
	if d.neg == x.neg {
		return newDecimal(d.neg, dc.Add(xc), prec)
	}
	switch dc.Cmp(xc) {
	case 0:
		// Addition resulting in a zero coefficient always canonicalizes
		// to sign 0, but keeps the common precision.
		return Decimal{prec: prec}
	case 1:
		return newDecimal(d.neg, dc.Sub(xc), prec)
	default:
		return newDecimal(x.neg, xc.Sub(dc), prec)
	}
}

// Sub returns d-x exactly; it is defined as d.Add(x.Neg()).
func (d Decimal) Sub(x Decimal) Decimal {
	return d.Add(x.Neg())
}

// Mul returns d*x exactly. The result's precision is d.Precision() +
// x.Precision().
func (d Decimal) Mul(x Decimal) Decimal {
	return newDecimal(d.neg != x.neg, d.coeff.Mul(x.coeff), d.prec+x.prec)
}

// Quo returns d/x. If the exact quotient terminates within LimitPrec
// fractional digits it is returned exactly (with only as much precision
// as the termination needs); otherwise it is rounded to LimitPrec
// fractional digits using mode.
func (d Decimal) Quo(x Decimal, modePtr *RoundingMode) (Decimal, error) {
	if x.IsZero() {
		return Decimal{}, newArithmeticError("division by zero")
	}
	resultNeg := d.neg != x.neg
	if d.IsZero() {
		return Decimal{}, nil
	}
	mode := resolveRounding(modePtr)

	ten := big.NewInt(10)
	N := new(big.Int).Mul(d.coeff.Big(), new(big.Int).Exp(ten, big.NewInt(int64(x.prec)), nil))
	D := new(big.Int).Mul(x.coeff.Big(), new(big.Int).Exp(ten, big.NewInt(int64(d.prec)), nil))
	if g := new(big.Int).GCD(nil, nil, N, D); g.Sign() != 0 {
		N.Quo(N, g)
		D.Quo(D, g)
	}

	if a, b, rest := factor2and5(D); rest.Cmp(big.NewInt(1)) == 0 {
		q := a
		if b > q {
			q = b
		}
		if q <= LimitPrec {
			scale := new(big.Int).Exp(ten, big.NewInt(int64(q)), nil)
			coeffBig := new(big.Int).Quo(new(big.Int).Mul(N, scale), D)
			return newDecimal(resultNeg, bigint.FromBigInt(coeffBig), uint32(q)), nil
		}
	}

	scale := new(big.Int).Exp(ten, big.NewInt(LimitPrec), nil)
	scaled := new(big.Int).Mul(N, scale)
	qBig, rBig := new(big.Int).QuoRem(scaled, D, new(big.Int))
	coeff := bigint.FromBigInt(qBig)
	if rBig.Sign() != 0 {
		sign := 1
		if resultNeg {
			sign = -1
		}
		if mode.increment(coeff, bigint.FromBigInt(rBig), bigint.FromBigInt(D), sign) {
			coeff = coeff.Add(bigint.FromUint64(1))
		}
	}
	return newDecimal(resultNeg, coeff, LimitPrec), nil
}

// QuoInteger returns the integer quotient of d/x, truncated toward
// negative infinity (floor division). The result's precision is 0.
func (d Decimal) QuoInteger(x Decimal) (Decimal, error) {
	if x.IsZero() {
		return Decimal{}, newArithmeticError("division by zero")
	}
	dc, xc, _ := align(d, x)
	q, r := dc.QuoRem(xc)
	resultNeg := d.neg != x.neg
	if resultNeg && !r.IsZero() {
		q = q.Add(bigint.FromUint64(1))
	}
	return newDecimal(resultNeg, q, 0), nil
}

// Rem returns d - (d.QuoInteger(x))*x. The result's sign matches x's.
func (d Decimal) Rem(x Decimal) (Decimal, error) {
	q, err := d.QuoInteger(x)
	if err != nil {
		return Decimal{}, err
	}
	return d.Sub(q.Mul(x)), nil
}

// DivMod returns (d.QuoInteger(x), d.Rem(x)) computed in one pass.
func (d Decimal) DivMod(x Decimal) (Decimal, Decimal, error) {
	q, err := d.QuoInteger(x)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	return q, d.Sub(q.Mul(x)), nil
}

// Pow returns d**n for integer n. Negative n requires d != 0 and is
// computed as 1 / d**(-n), using mode for any rounding that division
// needs. Precision grows the same way repeated multiplication would.
func (d Decimal) Pow(n int, modePtr *RoundingMode) (Decimal, error) {
	if n == 0 {
		return NewFromInt64(1), nil
	}
	if n < 0 {
		if d.IsZero() {
			return Decimal{}, newArithmeticError("zero cannot be raised to a negative power")
		}
		base, err := d.Pow(-n, modePtr)
		if err != nil {
			return Decimal{}, err
		}
		return NewFromInt64(1).Quo(base, modePtr)
	}
	result := NewFromInt64(1)
	base := d
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result, nil
}
