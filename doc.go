/*
Package fixedpoint converts fixed-point decimal numbers between scaled
integers and decimal strings.
It is designed for monetary values, such as salaries, stored as int64.

# Representation

A fixed-point number is stored as a scaled integer: the decimal value
multiplied by 10^places, where places is the number of digits after the
decimal point.
For example, with 2 places the scaled integer 1234 represents the value 12.34,
and -5 represents -0.05.

The number of places is fixed for a [Converter] and is chosen when it
is created with [New].
The range of allowed values for places is from 0 to [MaxPlaces].

Here are the ranges for frequently used places:

	| Example      | Places | Minimum                      | Maximum                     |
	| ------------ | ------ | ---------------------------- | --------------------------- |
	| Japanese Yen | 0      | -9223372036854775808         | 9223372036854775807         |
	| US Dollar    | 2      | -92233720368547758.08        | 92233720368547758.07        |
	| Omani Rial   | 3      | -9223372036854775.808        | 9223372036854775.807        |
	| Bitcoin      | 8      | -92233720368.54775808        | 92233720368.54775807        |

# Conversions

The package provides the following conversions:

  - from scaled integer to string:
    [Converter.FormatInt64], [Salary.String].
  - from string to scaled integer:
    [Converter.ParseInt64], [ParseSalary].
  - from string to string with all places present:
    [Converter.Pad].
  - from/to [decimal.Decimal]:
    [Converter.Decimal], [Converter.FromDecimal], [Salary.Decimal], [SalaryFromDecimal].

Conversions are lossless.
Strings with more digits after the decimal point than the converter has places
are rejected rather than rounded.

# Errors

All functions except the Must variants are panic-free and pure.
Every returned error belongs to the [Error] class and wraps one of:

  - [ErrMissingValue]: the input string is empty, or a NULL was scanned
    into a [Salary].
  - [ErrInvalidFormat]: the input string is not a decimal number, or it has
    too many digits after the decimal point.
  - [ErrOverflow]: the scaled integer does not fit in int64.
    Unlike native integers, there is no "wrap around".

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package fixedpoint
