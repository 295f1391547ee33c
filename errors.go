package decimalfp

import "github.com/pkg/errors"

// TypeError is returned when an argument is of a kind an operation forbids,
// e.g. a comparand of an unsupported type, or a complex number compared
// for order.
type TypeError struct {
	msg string
}

func (e *TypeError) Error() string { return e.msg }

func newTypeError(format string, args ...interface{}) error {
	return &TypeError{msg: errors.Errorf(format, args...).Error()}
}

// ValueError is returned when an argument is well-typed but numerically
// invalid: a negative construction precision, a non-finite source, a
// malformed numeric string, the magnitude of zero, or a rational source
// with no finite decimal expansion converted without a target precision.
type ValueError struct {
	msg string
}

func (e *ValueError) Error() string { return e.msg }

func newValueError(format string, args ...interface{}) error {
	return &ValueError{msg: errors.Errorf(format, args...).Error()}
}

// ArithmeticError is returned for division by zero and for raising zero to
// a negative integer power.
type ArithmeticError struct {
	msg string
}

func (e *ArithmeticError) Error() string { return e.msg }

func newArithmeticError(format string, args ...interface{}) error {
	return &ArithmeticError{msg: errors.Errorf(format, args...).Error()}
}

// FormatError is returned for an unsupported or malformed format specifier.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

func newFormatError(format string, args ...interface{}) error {
	return &FormatError{msg: errors.Errorf(format, args...).Error()}
}
