package decimalfp

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/mamrhein/decimalfp/internal/bigint"
)

// Zero returns the zero Decimal with the given stored precision.
func Zero(prec int) (Decimal, error) {
	p, err := validateConstructPrecision(prec)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{prec: p}, nil
}

func validateConstructPrecision(p int) (uint32, error) {
	if p < 0 {
		return 0, newValueError("construction precision must be >= 0, got %d", p)
	}
	return uint32(p), nil
}

// NewFromInt64 returns the Decimal with value v and precision 0.
func NewFromInt64(v int64) Decimal {
	if v == 0 {
		return Decimal{}
	}
	neg := v < 0
	var mag uint64
	switch {
	case v == math.MinInt64:
		mag = -math.MinInt64
	case neg:
		mag = uint64(-v)
	default:
		mag = uint64(v)
	}
	return newDecimal(neg, bigint.FromUint64(mag), 0)
}

// NewFromBigInt returns the Decimal with value v and precision 0.
func NewFromBigInt(v *big.Int) Decimal {
	neg := v.Sign() < 0
	mag := new(big.Int).Abs(v)
	return newDecimal(neg, bigint.FromBigInt(mag), 0)
}

// parseDecimalString implements the grammar from spec.md §4.5.1:
//
//	[sign] [int-part] ['.' [frac-part]] [('e'|'E') signed-int-exponent]
//
// with ASCII digits only and leading/trailing whitespace stripped. An
// empty integer part and an empty fractional part at the same time is
// rejected.
func parseDecimalString(s string) (neg bool, coeff bigint.UInt, prec uint32, err error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return false, bigint.UInt{}, 0, newValueError("invalid decimal string: %q", orig)
	}

	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, convErr := strconv.Atoi(s[i+1:])
		if convErr != nil {
			return false, bigint.UInt{}, 0, newValueError("invalid exponent in decimal string: %q", orig)
		}
		exp = e
		s = s[:i]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return false, bigint.UInt{}, 0, newValueError("invalid decimal string: %q", orig)
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	c, ok := bigint.FromString(digits)
	if !ok {
		return false, bigint.UInt{}, 0, newValueError("invalid decimal string: %q", orig)
	}

	e := exp - len(fracPart)
	if e >= 0 {
		// A non-negative combined exponent means the value is an exact
		// integer multiple of a power of ten; fold it into the
		// coefficient instead of storing a negative precision.
		c = c.MulPow10(e)
		prec = 0
	} else {
		prec = uint32(-e)
	}
	return neg, c, prec, nil
}

// NewFromString parses s into a Decimal with no restriction on precision
// or magnitude: the stored precision is exactly the number of fractional
// digits implied by s (after folding in any exponent).
func NewFromString(s string) (Decimal, error) {
	neg, coeff, prec, err := parseDecimalString(s)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimal(neg, coeff, prec), nil
}

// MustParse is like NewFromString but panics if s cannot be parsed. It is
// meant for tests and package-level variable initializers, where a parse
// failure is a programming error rather than a runtime condition.
func MustParse(s string) Decimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseExact parses s and rounds the result to prec fractional digits
// using mode, exactly as NewFromString(s) followed by Adjusted(prec,
// mode) would.
func ParseExact(s string, prec int, mode RoundingMode) (Decimal, error) {
	d, err := NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}
	return d.Adjusted(&prec, &mode)
}

// factor2and5 divides out all factors of 2 and 5 from den (den > 0),
// returning their multiplicities and what's left. A denominator of pure
// 2^a * 5^b is exactly the condition under which n/den has a terminating
// decimal expansion.
func factor2and5(den *big.Int) (a, b int, rest *big.Int) {
	rest = new(big.Int).Set(den)
	two, five := big.NewInt(2), big.NewInt(5)
	zero := new(big.Int)
	mod := new(big.Int)
	for mod.Mod(rest, two).Cmp(zero) == 0 {
		rest.Quo(rest, two)
		a++
	}
	for mod.Mod(rest, five).Cmp(zero) == 0 {
		rest.Quo(rest, five)
		b++
	}
	return a, b, rest
}

// ratToDecimal converts an exact rational r to a Decimal. If prec is
// non-nil, the result is rounded to that many fractional digits using
// mode. If prec is nil, the conversion succeeds only when r's reduced
// denominator is of the form 2^a * 5^b, i.e. r has a finite decimal
// expansion, and fails with a *ValueError otherwise.
func ratToDecimal(r *big.Rat, prec *int, mode RoundingMode) (Decimal, error) {
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom() // big.Rat keeps this reduced and positive

	if prec != nil {
		p, err := validateConstructPrecision(*prec)
		if err != nil {
			return Decimal{}, err
		}
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
		scaled := new(big.Int).Mul(num, scale)
		q, rem := new(big.Int).QuoRem(scaled, den, new(big.Int))
		coeff := bigint.FromBigInt(q)
		if rem.Sign() != 0 {
			sign := 1
			if neg {
				sign = -1
			}
			if mode.increment(coeff, bigint.FromBigInt(rem), bigint.FromBigInt(den), sign) {
				coeff = coeff.Add(bigint.FromUint64(1))
			}
		}
		return newDecimal(neg, coeff, p), nil
	}

	a, b, rest := factor2and5(den)
	if rest.Cmp(big.NewInt(1)) != 0 {
		return Decimal{}, newValueError("rational value has no finite decimal expansion; a target precision is required")
	}
	p := a
	if b > p {
		p = b
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
	q := new(big.Int).Quo(new(big.Int).Mul(num, scale), den)
	return newDecimal(neg, bigint.FromBigInt(q), uint32(p)), nil
}

// NewFromRat rounds r to prec fractional digits using mode.
func NewFromRat(r *big.Rat, prec int, mode RoundingMode) (Decimal, error) {
	return ratToDecimal(r, &prec, mode)
}

// NewFromRatExact converts r to a Decimal without rounding. It fails if
// r's reduced denominator is not of the form 2^a * 5^b.
func NewFromRatExact(r *big.Rat) (Decimal, error) {
	return ratToDecimal(r, nil, 0)
}

// NewFromFloat64 converts f to a Decimal by first decomposing it into its
// exact integer ratio (binary floats almost never have a short
// terminating decimal expansion, so a target precision is required) and
// then rounding that ratio to prec fractional digits using mode.
func NewFromFloat64(f float64, prec int, mode RoundingMode) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, newValueError("cannot construct a Decimal from non-finite float %v", f)
	}
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return Decimal{}, newValueError("cannot construct a Decimal from float %v", f)
	}
	return ratToDecimal(r, &prec, mode)
}
