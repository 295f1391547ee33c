package decimalfp

import (
	"math"
	"math/big"
)

// toRational converts a comparand accepted by Cmp/Equal into an exact
// rational (num, den), den > 0. Floats and complex numbers are handled by
// the caller before reaching here, since they need NaN/Infinity handling
// that doesn't fit the rational model.
func toRational(v interface{}) (num, den *big.Int, err error) {
	switch x := v.(type) {
	case Decimal:
		n, d := x.AsFraction()
		return n, d, nil
	case int:
		return big.NewInt(int64(x)), big.NewInt(1), nil
	case int8:
		return big.NewInt(int64(x)), big.NewInt(1), nil
	case int16:
		return big.NewInt(int64(x)), big.NewInt(1), nil
	case int32:
		return big.NewInt(int64(x)), big.NewInt(1), nil
	case int64:
		return big.NewInt(x), big.NewInt(1), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), big.NewInt(1), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), big.NewInt(1), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), big.NewInt(1), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), big.NewInt(1), nil
	case uint64:
		return new(big.Int).SetUint64(x), big.NewInt(1), nil
	case *big.Int:
		return new(big.Int).Set(x), big.NewInt(1), nil
	case *big.Rat:
		return new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom()), nil
	default:
		return nil, nil, newTypeError("unsupported type in Decimal comparison: %T", v)
	}
}

// crossMul reports the sign of num1/den1 - num2/den2 given positive
// denominators.
func crossMul(num1, den1, num2, den2 *big.Int) int {
	lhs := new(big.Int).Mul(num1, den2)
	rhs := new(big.Int).Mul(num2, den1)
	return lhs.Cmp(rhs)
}

// Cmp compares d against other, which may be a Decimal, any built-in
// integer type, *big.Int, *big.Rat, float32/float64, or complex64/128. A
// complex comparand always fails with a *TypeError, even when its
// imaginary part is zero: complex numbers have no ordering. (Equal, unlike
// Cmp, does treat a zero-imaginary complex as comparable.) It returns -1,
// 0, or +1, or a *TypeError if the comparand can't be ordered against a
// Decimal (an unsupported type, a complex number, or a float NaN).
//
// Note: this diverges slightly from how Python's decimal module treats
// float NaN for ordering (every comparison against NaN is simply false,
// not an error); Go's two-value Cmp has no room for a false-without-error
// result, so a float NaN surfaces as a *TypeError here instead.
func (d Decimal) Cmp(other interface{}) (int, error) {
	switch x := other.(type) {
	case float64:
		return d.cmpFloat(x)
	case float32:
		return d.cmpFloat(float64(x))
	case complex128:
		return 0, newTypeError("cannot order a Decimal against a complex number")
	case complex64:
		return d.Cmp(complex128(x))
	}
	num2, den2, err := toRational(other)
	if err != nil {
		return 0, err
	}
	num1, den1 := d.AsFraction()
	return crossMul(num1, den1, num2, den2), nil
}

func (d Decimal) cmpFloat(f float64) (int, error) {
	switch {
	case math.IsNaN(f):
		return 0, newTypeError("cannot order a Decimal against NaN")
	case math.IsInf(f, 1):
		return -1, nil
	case math.IsInf(f, -1):
		return 1, nil
	}
	r := new(big.Rat).SetFloat64(f)
	num1, den1 := d.AsFraction()
	return crossMul(num1, den1, r.Num(), r.Denom()), nil
}

// Equal reports whether d represents the same exact value as other. Unlike
// Cmp, it never fails: comparands of an unsupported type, or complex
// numbers with a non-zero imaginary part, or NaN, simply compare unequal.
func (d Decimal) Equal(other interface{}) bool {
	switch x := other.(type) {
	case float64:
		return d.equalFloat(x)
	case float32:
		return d.equalFloat(float64(x))
	case complex128:
		return imag(x) == 0 && d.equalFloat(real(x))
	case complex64:
		return d.Equal(complex128(x))
	}
	num2, den2, err := toRational(other)
	if err != nil {
		return false
	}
	num1, den1 := d.AsFraction()
	return crossMul(num1, den1, num2, den2) == 0
}

func (d Decimal) equalFloat(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	r := new(big.Rat).SetFloat64(f)
	num1, den1 := d.AsFraction()
	return crossMul(num1, den1, r.Num(), r.Denom()) == 0
}

// The following constants define the modular rational hash shared by
// Decimal.Hash, HashBigInt, and HashRat, matching the algorithm CPython
// uses for int/Fraction/Decimal so that decimalfp.Decimal stays
// hash-consistent with a host language's numeric tower when one exists
// (see spec open question on hash of very large Decimals).
const (
	hashModulus = int64(1)<<61 - 1
	hashInf     = int64(314159)
)

func hashRat(num, den *big.Int) uint64 {
	m := big.NewInt(hashModulus)
	denMod := new(big.Int).Mod(den, m)
	if denMod.Sign() == 0 {
		return uint64(hashInf)
	}
	inv := new(big.Int).ModInverse(denMod, m)
	numMod := new(big.Int).Mod(new(big.Int).Abs(num), m)
	h := new(big.Int).Mod(new(big.Int).Mul(numMod, inv), m)
	result := h.Int64()
	if num.Sign() < 0 {
		result = -result
	}
	if result == -1 {
		result = -2
	}
	return uint64(result)
}

// Hash returns a hash of d's exact rational value, consistent with
// HashBigInt and HashRat for equal values and stable across different
// (coefficient, precision) representations of the same value.
func (d Decimal) Hash() uint64 {
	num, den := d.AsFraction()
	return hashRat(num, den)
}

// HashBigInt returns the same hash Decimal.Hash would return for a
// Decimal equal to v.
func HashBigInt(v *big.Int) uint64 {
	return hashRat(v, big.NewInt(1))
}

// HashRat returns the same hash Decimal.Hash would return for a Decimal
// equal to r (when r is exactly representable).
func HashRat(r *big.Rat) uint64 {
	return hashRat(r.Num(), r.Denom())
}
