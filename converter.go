package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/govalues/decimal"
	"github.com/zeebo/errs"
)

// Converter converts between scaled integers and decimal strings
// with a fixed number of digits after the decimal point.
// The zero value is a converter with no digits after the decimal point.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A scaled integer is the decimal value multiplied by 10^places.
// For example, a converter with 2 places maps the scaled integer 1234
// to the decimal string "12.34" and back.
type Converter struct {
	places int8 // number of digits after the decimal point
}

const (
	MaxPlaces = 18 // maximum number of digits after the decimal point, 10^MaxPlaces fits in int64
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("fixedpoint")

var (
	ErrMissingValue  = errors.New("missing value")
	ErrInvalidFormat = errors.New("invalid format")
	ErrOverflow      = errors.New("integer overflow")
	errPlacesRange   = errors.New("places out of range")
)

// New returns a converter with the given number of digits after
// the decimal point.
// New returns an error if places is less than 0 or greater than [MaxPlaces].
func New(places int) (c Converter, err error) {
	defer Error.WrapP(&err)
	if places < 0 || places > MaxPlaces {
		return Converter{}, fmt.Errorf("places %v: %w", places, errPlacesRange)
	}
	return Converter{places: int8(places)}, nil
}

// Places returns the number of digits after the decimal point.
func (c Converter) Places() int {
	return int(c.places)
}

// FormatInt64 returns the decimal string of the scaled integer v.
// The result always has exactly [Converter.Places] digits after the decimal
// point and at least one digit before it, for example "0.05" rather than ".05".
// The result does not have a decimal point if the converter has no places.
// It is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits ['.' digits]
func (c Converter) FormatInt64(v int64) string {
	var (
		buf    [21]byte
		pos    int
		coef   fint
		places int
		width  int
	)

	pos = len(buf) - 1
	coef = newFint(v)
	places = c.Places()
	width = max(coef.prec(), places+1)

	// Coefficient, left-padded with zeros
	for i := 1; i <= width; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		// Decimal point
		if i == places {
			buf[pos] = '.'
			pos--
		}
	}

	// Sign
	if v < 0 {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// ParseInt64 converts the decimal string s into a scaled integer.
// The input string must be formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Missing fractional digits are treated as zeros, so with 2 places
// "12.3" is parsed as 1230 and "12" as 1200.
//
// ParseInt64 returns an error:
//   - if s is empty.
//   - if s does not match the grammar above.
//   - if s has more than [Converter.Places] digits after the decimal point.
//   - if the scaled integer does not fit in int64.
func (c Converter) ParseInt64(s string) (v int64, err error) {
	defer Error.WrapP(&err)

	num, err := c.scan(s)
	if err != nil {
		return 0, err
	}

	// Digits without the decimal point
	var coef fint
	var ok bool
	for i := 0; i < len(num.digits); i++ {
		coef, ok = coef.fsa(1, num.digits[i]-'0')
		if !ok {
			return 0, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
		}
	}
	v, ok = coef.int64(num.neg)
	if !ok {
		return 0, fmt.Errorf("parsing %q: %w", s, ErrOverflow)
	}

	// Missing fractional digits
	v, err = appendTrailingZeros(v, c.Places()-num.scale)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return v, nil
}

// Pad returns s with zeros appended until it has exactly [Converter.Places]
// digits after the decimal point.
// The decimal point is appended only if s does not have one,
// so "5" and "5." are both padded to "5.00" with 2 places.
// The integer part and the sign of s are preserved as is.
// Pad is idempotent: padding an already padded string returns it unchanged.
//
// Pad returns an error if s is not a valid decimal string (see [Converter.ParseInt64])
// or if s has more than [Converter.Places] digits after the decimal point.
// The magnitude of s is not checked.
func (c Converter) Pad(s string) (t string, err error) {
	defer Error.WrapP(&err)

	num, err := c.scan(s)
	if err != nil {
		return "", err
	}

	places := c.Places()
	if places == 0 {
		return strings.TrimSuffix(s, "."), nil
	}

	var b strings.Builder
	b.Grow(len(s) + places + 1)
	b.WriteString(s)
	if !num.dot {
		b.WriteByte('.')
	}
	for i := num.scale; i < places; i++ {
		b.WriteByte('0')
	}
	return b.String(), nil
}

// Decimal returns the scaled integer v as a decimal with a scale
// equal to [Converter.Places].
func (c Converter) Decimal(v int64) (d decimal.Decimal, err error) {
	defer Error.WrapP(&err)
	return decimal.New(v, c.Places())
}

// FromDecimal returns the scaled integer of d.
// Trailing zeros beyond [Converter.Places] are ignored.
// FromDecimal returns an error if d has more than [Converter.Places]
// significant digits after the decimal point or if the result does not
// fit in int64.
func (c Converter) FromDecimal(d decimal.Decimal) (int64, error) {
	return c.ParseInt64(d.Trim(c.Places()).String())
}

// AppendTrailingZeros returns base * 10^count.
// The multiplication by 10 is repeated count times, so a count of zero or less
// returns base unchanged.
// AppendTrailingZeros returns an error if the result does not fit in int64.
func AppendTrailingZeros(base int64, count int) (v int64, err error) {
	defer Error.WrapP(&err)
	return appendTrailingZeros(base, count)
}

func appendTrailingZeros(base int64, count int) (int64, error) {
	const (
		maxBase = math.MaxInt64 / 10
		minBase = math.MinInt64 / 10
	)
	if base == 0 {
		return 0, nil
	}
	for ; count > 0; count-- {
		if base > maxBase || base < minBase {
			return 0, fmt.Errorf("appending %v zero(s): %w", count, ErrOverflow)
		}
		base *= 10
	}
	return base, nil
}

// number is a decimal string split into its components.
type number struct {
	neg    bool   // indicates whether the string starts with a minus sign
	digits string // integer and fractional digits without the decimal point
	scale  int    // number of digits after the decimal point
	dot    bool   // indicates whether the string has a decimal point
}

// scan validates the syntax of s and splits it into components.
// It does not check the magnitude of s.
func (c Converter) scan(s string) (number, error) {
	var (
		num   number
		pos   int
		width int
		b     strings.Builder
	)

	width = len(s)
	if width == 0 {
		return number{}, ErrMissingValue
	}
	b.Grow(width)

	// Sign
	if s[pos] == '-' {
		num.neg = true
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		b.WriteByte(s[pos])
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		num.dot = true
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			b.WriteByte(s[pos])
			num.scale++
			pos++
		}
	}

	if pos != width {
		return number{}, fmt.Errorf("invalid character %q in %q: %w", s[pos], s, ErrInvalidFormat)
	}
	if b.Len() == 0 {
		return number{}, fmt.Errorf("no digits in %q: %w", s, ErrInvalidFormat)
	}
	if num.scale > c.Places() {
		return number{}, fmt.Errorf("%q has %v digit(s) after the decimal point, at most %v allowed: %w", s, num.scale, c.Places(), ErrInvalidFormat)
	}

	num.digits = b.String()
	return num, nil
}
