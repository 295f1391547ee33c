package decimalfp

// Locale supplies the decimal separator and digit-grouping convention the
// "n" format type renders with. The core never ships a locale database
// (the narrow interface below is the entire contract); embedding code that
// wants locale-aware output plugs in its own implementation, e.g. backed
// by golang.org/x/text/message or a hand-rolled lookup table.
type Locale interface {
	// DecimalPoint returns the character used to separate the integer and
	// fractional parts.
	DecimalPoint() rune
	// Grouping returns the separator placed between groups of integer-part
	// digits, and the group size (conventionally 3). A group size <= 0
	// disables grouping.
	Grouping() (sep rune, size int)
}

// cLocale is the default "C"/"POSIX" locale: a plain '.' decimal point and
// no grouping.
type cLocale struct{}

func (cLocale) DecimalPoint() rune      { return '.' }
func (cLocale) Grouping() (rune, int)   { return 0, 0 }

// DefaultLocale is used by the "n" format type when no locale is supplied.
var DefaultLocale Locale = cLocale{}
