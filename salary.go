package fixedpoint

import (
	"database/sql/driver"
	"fmt"

	"github.com/govalues/decimal"
)

// SalaryDecimalPlaces is the number of digits after the decimal point
// in a salary.
const SalaryDecimalPlaces = 2

var salaryConverter = MustNew(SalaryDecimalPlaces)

// Salary is a monetary amount with [SalaryDecimalPlaces] digits after
// the decimal point, stored as a scaled integer.
// The zero value is "0.00".
// It is designed to be safe for concurrent use by multiple goroutines.
type Salary struct {
	value int64 // the amount multiplied by 10^SalaryDecimalPlaces
}

// NewSalary returns a salary equal to scaled / 10^[SalaryDecimalPlaces].
func NewSalary(scaled int64) Salary {
	return Salary{value: scaled}
}

// ParseSalary converts a decimal string into a salary.
// See [Converter.ParseInt64] for the accepted format.
func ParseSalary(s string) (Salary, error) {
	v, err := salaryConverter.ParseInt64(s)
	if err != nil {
		return Salary{}, err
	}
	return NewSalary(v), nil
}

// IsValidSalary reports whether s can be parsed by [ParseSalary].
func IsValidSalary(s string) bool {
	_, err := ParseSalary(s)
	return err == nil
}

// SalaryFromDecimal converts a decimal into a salary.
// See [Converter.FromDecimal] for details.
func SalaryFromDecimal(d decimal.Decimal) (Salary, error) {
	v, err := salaryConverter.FromDecimal(d)
	if err != nil {
		return Salary{}, err
	}
	return NewSalary(v), nil
}

// Int64 returns the salary as a scaled integer.
func (a Salary) Int64() int64 {
	return a.value
}

// Decimal returns the salary as a decimal with a scale of [SalaryDecimalPlaces].
func (a Salary) Decimal() decimal.Decimal {
	d, err := salaryConverter.Decimal(a.value)
	if err != nil {
		// Every int64 fits in a decimal coefficient.
		panic(fmt.Sprintf("Decimal(%v) failed: %v", a.value, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// the salary with exactly [SalaryDecimalPlaces] digits after the decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Salary) String() string {
	return salaryConverter.FormatInt64(a.value)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [ParseSalary].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Salary) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseSalary(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Salary.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Salary) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Integers are treated as scaled integers, strings and byte slices
// are parsed with [ParseSalary].
// Scan returns an error for a NULL value, use [NullSalary] for nullable columns.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Salary) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*a = NewSalary(value)
	case string:
		*a, err = ParseSalary(value)
	case []byte:
		*a, err = ParseSalary(string(value))
	case nil:
		err = Error.Wrap(fmt.Errorf("scanning NULL into %T: %w", Salary{}, ErrMissingValue))
	default:
		err = Error.New("failed to convert from %T to %T", value, Salary{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The salary is stored as its decimal string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Salary) Value() (driver.Value, error) {
	return a.String(), nil
}

// NullSalary represents a salary that can be null.
// Its zero value is null.
type NullSalary struct {
	Salary Salary
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullSalary) Scan(value any) error {
	if value == nil {
		n.Salary = Salary{}
		n.Valid = false
		return nil
	}
	err := n.Salary.Scan(value)
	if err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullSalary) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Salary.Value()
}
