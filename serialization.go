package decimalfp

import (
	"fmt"
	"math/big"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"

	"github.com/mamrhein/decimalfp/internal/bigint"
)

// MarshalText implements encoding.TextMarshaler. It always returns the
// value rendered with its stored precision, the same text NewFromString
// would accept back.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := NewFromString(string(text))
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", *d)
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. It renders the value as a bare
// JSON number (not a quoted string) so that it round-trips through
// json.Unmarshal into another decimal type without a second parse step.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts both a bare JSON
// number and a quoted numeric string.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	v, err := NewFromString(string(data))
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", *d)
	}
	*d = v
	return nil
}

// GetBSON implements bson.Getter, encoding d as a BSON Decimal128.
func (d Decimal) GetBSON() (interface{}, error) {
	return bson.ParseDecimal128(d.String())
}

// SetBSON implements bson.Setter, decoding a BSON Decimal128 into d.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return err
	}
	v, err := NewFromString(w.String())
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Decompose implements the Decompose/Compose interop protocol shared by
// the Go decimal packages descended from database/sql/driver.Decimal: form
// is 0 for a finite value (the only form decimalfp.Decimal can take: it
// has no representation for infinities or NaN), coefficient is the
// unsigned magnitude in big-endian bytes, and exponent is -Precision().
// buf is accepted for interface compatibility but decimalfp does not reuse
// it; the returned slice is always freshly allocated.
func (d Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	return 0, d.IsNeg(), d.coeff.Big().Bytes(), -int32(d.prec)
}

// Compose is the inverse of Decompose. It fails with a *ValueError for any
// form other than 0 (finite), since decimalfp.Decimal cannot represent
// infinities or NaN.
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	if form != 0 {
		return newValueError("decimalfp.Decimal cannot represent a non-finite value (form %d)", form)
	}
	coeff := bigint.FromBigInt(new(big.Int).SetBytes(coefficient))
	if exponent > 0 {
		coeff = coeff.MulPow10(int(exponent))
		exponent = 0
	}
	*d = newDecimal(negative, coeff, uint32(-exponent))
	return nil
}

// GoString implements fmt.GoStringer, rendering d as a Go expression that
// reconstructs it, for use with %#v.
func (d Decimal) GoString() string {
	return fmt.Sprintf("decimalfp.MustParse(%q)", d.String())
}
