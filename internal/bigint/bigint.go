// Package bigint implements the coefficient engine: an unsigned
// arbitrary-precision integer with a fast path for values that fit in a
// single machine word and a slow path, backed by decimalfp's int10
// package, for everything else.
//
// Sign is never tracked here; decimalfp.Decimal keeps the sign separately
// and only ever hands non-negative magnitudes to UInt.
package bigint

import (
	"math/big"
	"strings"

	"github.com/mamrhein/decimalfp/int10"
)

// maxWord is the largest value the fast path will hold. It is one less
// than 10^19, the largest power of ten representable in a uint64, so that
// every fast-path result that doesn't overflow can be produced with plain
// uint64 arithmetic and checked cheaply.
const maxWord uint64 = 9999999999999999999

var pow10 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000,
	10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000,
}

// UInt is a non-negative arbitrary-precision integer.
//
// The zero value represents zero.
type UInt struct {
	word  uint64   // valid iff !big
	slow  int10.Int // valid iff big
	isBig bool
}

// Zero is the additive identity.
var Zero = UInt{}

// FromUint64 returns the UInt with value x.
func FromUint64(x uint64) UInt {
	return UInt{word: x}
}

// FromString parses a string of ASCII decimal digits (no sign) into a
// UInt. It reports false if s contains anything other than '0'-'9' (after
// stripping leading zeros, the empty string is accepted as zero).
func FromString(s string) (UInt, bool) {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return UInt{}, true
	}
	if len(trimmed) <= 19 {
		var v uint64
		for i := 0; i < len(trimmed); i++ {
			c := trimmed[i]
			if c < '0' || c > '9' {
				return UInt{}, false
			}
			v = v*10 + uint64(c-'0')
		}
		// At most 19 digits means v <= maxWord < 2^64, so the parse above
		// cannot overflow; the check against maxWord only guards the
		// fast-path bound.
		if v <= maxWord {
			return UInt{word: v}, true
		}
	}
	i, ok := int10.NewIntString(trimmed)
	if !ok {
		return UInt{}, false
	}
	return UInt{slow: i, isBig: true}, true
}

// FromBigInt converts a non-negative *big.Int to a UInt.
func FromBigInt(x *big.Int) UInt {
	if x.IsUint64() {
		if v := x.Uint64(); v <= maxWord {
			return UInt{word: v}
		}
	}
	return UInt{slow: int10.NewIntBig(x), isBig: true}
}

func (a UInt) toSlow() int10.Int {
	if a.isBig {
		return a.slow
	}
	return int10.NewInt(a.word)
}

// normalize demotes a slow-path value back to the fast path when it fits,
// keeping representations canonical and comparisons/operations cheap.
func normalize(i int10.Int) UInt {
	if len(i) <= 19 {
		v := i.Uint64()
		if v <= maxWord {
			return UInt{word: v}
		}
	}
	return UInt{slow: i, isBig: true}
}

// IsZero reports whether a is zero.
func (a UInt) IsZero() bool {
	if a.isBig {
		return a.slow.Zero()
	}
	return a.word == 0
}

// Odd reports whether a is odd.
func (a UInt) Odd() bool {
	if a.isBig {
		return a.slow.Odd()
	}
	return a.word%2 == 1
}

// Cmp compares a and b, returning -1, 0, or +1.
func (a UInt) Cmp(b UInt) int {
	if !a.isBig && !b.isBig {
		switch {
		case a.word < b.word:
			return -1
		case a.word > b.word:
			return 1
		default:
			return 0
		}
	}
	return a.toSlow().Cmp(b.toSlow())
}

// Add returns a+b.
func (a UInt) Add(b UInt) UInt {
	if !a.isBig && !b.isBig {
		if maxWord-a.word >= b.word {
			return UInt{word: a.word + b.word}
		}
	}
	var z int10.Int
	z.Add(a.toSlow(), b.toSlow())
	return normalize(z)
}

// Sub returns a-b. The caller must ensure a >= b; otherwise the result is
// undefined (the underlying digit subtraction borrows incorrectly).
func (a UInt) Sub(b UInt) UInt {
	if !a.isBig && !b.isBig && a.word >= b.word {
		return UInt{word: a.word - b.word}
	}
	var z int10.Int
	z.Sub(a.toSlow(), b.toSlow())
	return normalize(z)
}

// Mul returns a*b.
func (a UInt) Mul(b UInt) UInt {
	if !a.isBig && !b.isBig {
		if a.word == 0 || b.word == 0 {
			return UInt{}
		}
		p := a.word * b.word
		if p/b.word == a.word && p <= maxWord {
			return UInt{word: p}
		}
	}
	z := a.toSlow().Mul(b.toSlow())
	return normalize(z)
}

// QuoRem returns the quotient and remainder of a/b (truncated division; a
// and b are both non-negative so this is also floored division). QuoRem
// panics if b is zero.
func (a UInt) QuoRem(b UInt) (q, r UInt) {
	if b.IsZero() {
		panic("bigint: division by zero")
	}
	if !a.isBig && !b.isBig {
		return UInt{word: a.word / b.word}, UInt{word: a.word % b.word}
	}
	qi, ri := int10.QuoRem(a.toSlow(), b.toSlow())
	return normalize(qi), normalize(ri)
}

// MulPow10 returns a * 10^k exactly. k must be >= 0.
func (a UInt) MulPow10(k int) UInt {
	if k == 0 || a.IsZero() {
		return a
	}
	if !a.isBig && k < len(pow10) {
		p := pow10[k]
		if a.word == 0 {
			return UInt{}
		}
		if v := a.word * p; v/p == a.word && v <= maxWord {
			return UInt{word: v}
		}
	}
	z := a.toSlow()
	z.Mul10(k)
	return normalize(z)
}

// QuoRemPow10 returns the quotient and remainder of a / 10^k. k must be >= 0.
func (a UInt) QuoRemPow10(k int) (q, r UInt) {
	if k == 0 {
		return a, UInt{}
	}
	if !a.isBig && k < len(pow10) {
		p := pow10[k]
		return UInt{word: a.word / p}, UInt{word: a.word % p}
	}
	integ, frac := a.toSlow().Split(k)
	return normalize(integ), normalize(frac)
}

// DigitCount returns the number of decimal digits of a (1 for zero).
func (a UInt) DigitCount() int {
	if a.isBig {
		n := len(a.slow)
		if n == 0 {
			return 1
		}
		return n
	}
	if a.word == 0 {
		return 1
	}
	n := 0
	for v := a.word; v != 0; v /= 10 {
		n++
	}
	return n
}

// TrailingZeros returns the largest t such that 10^t divides a. TrailingZeros
// of zero is 0.
func (a UInt) TrailingZeros() int {
	if a.IsZero() {
		return 0
	}
	if !a.isBig {
		n := 0
		v := a.word
		for v%10 == 0 {
			v /= 10
			n++
		}
		return n
	}
	n := 0
	for _, d := range a.slow {
		if d != 0 {
			break
		}
		n++
	}
	return n
}

// Uint64 returns a's value as a uint64 and whether it fit without overflow.
func (a UInt) Uint64() (uint64, bool) {
	if !a.isBig {
		return a.word, true
	}
	if a.DigitCount() > 20 {
		return 0, false
	}
	big := a.Big()
	if !big.IsUint64() {
		return 0, false
	}
	v := big.Uint64()
	return v, true
}

// Big returns a's value as a *big.Int.
func (a UInt) Big() *big.Int {
	if !a.isBig {
		return new(big.Int).SetUint64(a.word)
	}
	s := a.slow.String()
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

// String renders a in decimal.
func (a UInt) String() string {
	if !a.isBig {
		if a.word == 0 {
			return "0"
		}
		// strconv avoided here to keep the rendering in one place with the
		// slow path's digit-array String; both converge on plain decimal
		// digits with no separators.
		buf := [20]byte{}
		i := len(buf)
		v := a.word
		for v > 0 {
			i--
			buf[i] = byte('0' + v%10)
			v /= 10
		}
		return string(buf[i:])
	}
	return a.slow.String()
}
