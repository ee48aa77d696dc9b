package fixedpoint

import "fmt"

// MustNew is like [New] but panics if places is out of range.
// It simplifies safe initialization of global variables holding converters.
func MustNew(places int) Converter {
	c, err := New(places)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", places, err))
	}
	return c
}

// MustParseInt64 is like [Converter.ParseInt64] but panics if the string cannot be parsed.
func (c Converter) MustParseInt64(s string) int64 {
	v, err := c.ParseInt64(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseInt64(%q) failed: %v", s, err))
	}
	return v
}

// MustPad is like [Converter.Pad] but panics if the string cannot be padded.
func (c Converter) MustPad(s string) string {
	t, err := c.Pad(s)
	if err != nil {
		panic(fmt.Sprintf("MustPad(%q) failed: %v", s, err))
	}
	return t
}

// MustParseSalary is like [ParseSalary] but panics if the string cannot be parsed.
func MustParseSalary(s string) Salary {
	a, err := ParseSalary(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSalary(%q) failed: %v", s, err))
	}
	return a
}
