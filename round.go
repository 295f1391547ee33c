package decimalfp

import (
	"sync/atomic"

	"github.com/mamrhein/decimalfp/internal/bigint"
)

// RoundingMode selects how a discarded remainder is folded back into a
// quotient whenever a precision-reducing operation cannot represent a
// value exactly. The eight modes mirror Python's decimal module, which is
// where decimalfp's rounding vocabulary comes from.
type RoundingMode uint32

const (
	// RoundDown truncates toward zero.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero whenever anything is discarded.
	RoundUp
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundHalfDown rounds to the nearest; ties round toward zero.
	RoundHalfDown
	// RoundHalfUp rounds to the nearest; ties round away from zero.
	RoundHalfUp
	// RoundHalfEven rounds to the nearest; ties round to the even digit.
	RoundHalfEven
	// Round05Up rounds away from zero only when the discarded fraction is
	// nonzero and the last kept digit is 0 or 5; otherwise it truncates.
	Round05Up
)

func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "ROUND_DOWN"
	case RoundUp:
		return "ROUND_UP"
	case RoundFloor:
		return "ROUND_FLOOR"
	case RoundCeiling:
		return "ROUND_CEILING"
	case RoundHalfDown:
		return "ROUND_HALF_DOWN"
	case RoundHalfUp:
		return "ROUND_HALF_UP"
	case RoundHalfEven:
		return "ROUND_HALF_EVEN"
	case Round05Up:
		return "ROUND_05UP"
	default:
		return "ROUND_UNKNOWN"
	}
}

// LimitPrec is the maximum number of fractional digits produced by
// division or an inexact conversion when no explicit precision is given.
const LimitPrec = 32

// defaultRounding is the process-wide rounding mode. It is read and
// written with a single atomic word, per spec: callers that need to
// change it from multiple goroutines are responsible for not racing each
// other, and the recommended pattern is to set it once at startup and
// rely on per-call overrides afterward.
var defaultRounding uint32 = uint32(RoundHalfEven)

// GetRounding returns the current process-wide default rounding mode.
func GetRounding() RoundingMode {
	return RoundingMode(atomic.LoadUint32(&defaultRounding))
}

// SetRounding sets the process-wide default rounding mode.
func SetRounding(mode RoundingMode) {
	atomic.StoreUint32(&defaultRounding, uint32(mode))
}

func resolveRounding(mode *RoundingMode) RoundingMode {
	if mode != nil {
		return *mode
	}
	return GetRounding()
}

// increment reports whether the magnitude q (the truncated quotient of a
// division by d that left remainder r, 0 <= r < d) should have 1 added to
// it, for a value whose sign is sign (-1, 0 or +1, 0 treated as
// non-negative for Floor/Ceiling purposes).
func (m RoundingMode) increment(q, r, d bigint.UInt, sign int) bool {
	if r.IsZero() {
		return false
	}
	switch m {
	case RoundDown:
		return false
	case RoundUp:
		return true
	case RoundFloor:
		return sign < 0
	case RoundCeiling:
		return sign >= 0
	case Round05Up:
		_, last := q.QuoRemPow10(1)
		lastDigit, _ := last.Uint64()
		return lastDigit == 0 || lastDigit == 5
	}

	// The remaining modes need to compare 2r against d to classify the
	// discarded fraction as less than, equal to, or greater than one half.
	twice := r.Add(r)
	half := twice.Cmp(d)
	switch m {
	case RoundHalfDown:
		return half > 0
	case RoundHalfUp:
		return half >= 0
	case RoundHalfEven:
		if half > 0 {
			return true
		}
		if half < 0 {
			return false
		}
		return q.Odd()
	default:
		return false
	}
}

// shiftRightRound returns c / 10^k rounded using mode, where c is a
// non-negative coefficient magnitude and sign is the overall value's sign.
// If k <= 0, c is shifted left by -k instead (multiplied by 10^-k), so
// k == 0 returns c unchanged.
func shiftRightRound(c bigint.UInt, k int, mode RoundingMode, sign int) bigint.UInt {
	if k <= 0 {
		return c.MulPow10(-k)
	}
	q, r := c.QuoRemPow10(k)
	d := bigint.FromUint64(1).MulPow10(k)
	if mode.increment(q, r, d, sign) {
		q = q.Add(bigint.FromUint64(1))
	}
	return q
}
