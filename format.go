package decimalfp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatSpec is the parsed form of a format-specifier string:
//
//	[fill][align][sign][#][0][width][grouping][.precision][type]
type formatSpec struct {
	fill      rune
	align     rune
	sign      rune
	zero      bool
	width     int
	grouping  rune
	precision int
	hasPrec   bool
	typ       rune // 0 means the default (absent) type
}

func isAlignRune(r rune) bool {
	return r == '<' || r == '>' || r == '=' || r == '^'
}

func parseFormatSpec(spec string) (formatSpec, error) {
	fs := formatSpec{sign: '-'}
	r := []rune(spec)
	i := 0

	switch {
	case len(r) >= 2 && isAlignRune(r[1]):
		fs.fill, fs.align = r[0], r[1]
		i = 2
	case len(r) >= 1 && isAlignRune(r[0]):
		fs.align = r[0]
		i = 1
	}

	if i < len(r) && (r[i] == '+' || r[i] == '-' || r[i] == ' ') {
		fs.sign = r[i]
		i++
	}

	if i < len(r) && r[i] == '#' {
		return fs, newFormatError("alternate form (#) is not supported: %q", spec)
	}

	if i < len(r) && r[i] == '0' {
		fs.zero = true
		if fs.align == 0 {
			fs.fill, fs.align = '0', '='
		}
		i++
	}

	widthStart := i
	for i < len(r) && r[i] >= '0' && r[i] <= '9' {
		i++
	}
	if i > widthStart {
		w, err := strconv.Atoi(string(r[widthStart:i]))
		if err != nil {
			return fs, newFormatError("invalid width in format spec: %q", spec)
		}
		fs.width = w
	}

	if i < len(r) && (r[i] == ',' || r[i] == '_') {
		fs.grouping = r[i]
		i++
	}

	if i < len(r) && r[i] == '.' {
		i++
		precStart := i
		for i < len(r) && r[i] >= '0' && r[i] <= '9' {
			i++
		}
		if i == precStart {
			return fs, newFormatError("empty precision in format spec: %q", spec)
		}
		p, err := strconv.Atoi(string(r[precStart:i]))
		if err != nil {
			return fs, newFormatError("invalid precision in format spec: %q", spec)
		}
		fs.precision, fs.hasPrec = p, true
	}

	if i < len(r) {
		switch r[i] {
		case 'f', 'F', '%', 'n':
			fs.typ = r[i]
			i++
		case 'e', 'E', 'g', 'G':
			return fs, newFormatError("scientific format types are not supported: %q", spec)
		default:
			return fs, newFormatError("unsupported format type %q in spec %q", r[i], spec)
		}
	}

	if i != len(r) {
		return fs, newFormatError("malformed format spec: %q", spec)
	}
	if fs.align == 0 {
		fs.align = '>'
	}
	if fs.fill == 0 {
		fs.fill = ' '
	}
	return fs, nil
}

// groupDigits inserts sep every size digits from the right of s, an
// unsigned decimal digit string.
func groupDigits(s string, sep rune, size int) string {
	n := len(s)
	if size <= 0 || n <= size {
		return s
	}
	var b strings.Builder
	first := n % size
	if first == 0 {
		first = size
	}
	b.WriteString(s[:first])
	for i := first; i < n; i += size {
		b.WriteRune(sep)
		b.WriteString(s[i : i+size])
	}
	return b.String()
}

// Format renders d according to spec, a format specifier of the form
// documented on formatSpec. It is the library's equivalent of Python's
// format(value, spec).
func Format(d Decimal, spec string) (string, error) {
	return FormatLocale(d, spec, DefaultLocale)
}

// FormatLocale is Format with an explicit Locale for the "n" type, instead
// of DefaultLocale.
func FormatLocale(d Decimal, spec string, loc Locale) (string, error) {
	fs, err := parseFormatSpec(spec)
	if err != nil {
		return "", err
	}
	if loc == nil {
		loc = DefaultLocale
	}

	value := d
	suffix := ""
	if fs.typ == '%' {
		value = d.Mul(NewFromInt64(100))
		suffix = "%"
	}

	if fs.hasPrec {
		p := fs.precision
		rounded, err := value.Adjusted(&p, nil)
		if err != nil {
			return "", err
		}
		value = rounded
	}

	neg := value.IsNeg()
	p := value.Precision()
	coeffStr := value.coeff.String()
	for len(coeffStr) <= p {
		coeffStr = "0" + coeffStr
	}
	intPart, fracPart := coeffStr[:len(coeffStr)-p], coeffStr[len(coeffStr)-p:]
	if intPart == "" {
		intPart = "0"
	}

	decPoint := "."
	var groupSep rune
	var groupSize int
	switch {
	case fs.typ == 'n':
		decPoint = string(loc.DecimalPoint())
		groupSep, groupSize = loc.Grouping()
	case fs.grouping != 0:
		groupSep, groupSize = fs.grouping, 3
	}
	if groupSep != 0 && groupSize > 0 {
		intPart = groupDigits(intPart, groupSep, groupSize)
	}

	var signStr string
	switch {
	case neg:
		signStr = "-"
	case fs.sign == '+':
		signStr = "+"
	case fs.sign == ' ':
		signStr = " "
	}

	digits := intPart
	if p > 0 {
		digits += decPoint + fracPart
	}
	digits += suffix

	body := signStr + digits
	padLen := fs.width - len([]rune(body))
	if padLen <= 0 {
		return body, nil
	}
	fill := string(fs.fill)
	switch fs.align {
	case '<':
		return body + strings.Repeat(fill, padLen), nil
	case '^':
		left := padLen / 2
		return strings.Repeat(fill, left) + body + strings.Repeat(fill, padLen-left), nil
	case '=':
		return signStr + strings.Repeat(fill, padLen) + digits, nil
	default: // '>'
		return strings.Repeat(fill, padLen) + body, nil
	}
}

// String renders d using its stored precision verbatim, equivalent to
// Format(d, "").
func (d Decimal) String() string {
	s, _ := Format(d, "")
	return s
}

// Format implements fmt.Formatter so that Decimal works with the standard
// verbs %v, %s, %f, %F, in addition to the library's own Format function.
// Width and an explicit precision (e.g. %.2f) are honored; the '+' flag
// requests an explicit sign. Any other verb renders Go's usual
// %!verb(type=value) error text.
func (d Decimal) Format(f fmt.State, verb rune) {
	var b strings.Builder
	if f.Flag('+') {
		b.WriteByte('+')
	}
	if width, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(width))
	}
	if prec, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(prec))
	}
	switch verb {
	case 'v', 's':
	case 'f', 'F', '%':
		b.WriteRune(verb)
	default:
		fmt.Fprintf(f, "%%!%c(decimalfp.Decimal=%s)", verb, d.String())
		return
	}
	out, err := Format(d, b.String())
	if err != nil {
		fmt.Fprintf(f, "%%!%c(decimalfp.Decimal=%s)", verb, d.String())
		return
	}
	io.WriteString(f, out)
}
