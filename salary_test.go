package fixedpoint

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalary_ZeroValue(t *testing.T) {
	got := Salary{}
	assert.Equal(t, NewSalary(0), got)
	assert.Equal(t, "0.00", got.String())
}

func TestSalary_Interfaces(t *testing.T) {
	var a any

	a = Salary{}
	assert.Implements(t, (*fmt.Stringer)(nil), a)
	assert.Implements(t, (*encoding.TextMarshaler)(nil), a)
	assert.Implements(t, (*driver.Valuer)(nil), a)

	a = &Salary{}
	assert.Implements(t, (*encoding.TextUnmarshaler)(nil), a)
	assert.Implements(t, (*sql.Scanner)(nil), a)

	a = NullSalary{}
	assert.Implements(t, (*driver.Valuer)(nil), a)

	a = &NullSalary{}
	assert.Implements(t, (*sql.Scanner)(nil), a)
}

func TestParseSalary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want int64
		}{
			{"0", 0},
			{"1234.5", 123450},
			{"1234.56", 123456},
			{"1234", 123400},
			{"1234.", 123400},
			{"-0.05", -5},
			{"92233720368547758.07", math.MaxInt64},
		}
		for _, tt := range tests {
			got, err := ParseSalary(tt.s)
			require.NoError(t, err, "ParseSalary(%q)", tt.s)
			assert.Equal(t, tt.want, got.Int64(), "ParseSalary(%q)", tt.s)
			assert.True(t, IsValidSalary(tt.s), "IsValidSalary(%q)", tt.s)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"missing 1":  {"", ErrMissingValue},
			"format 1":   {"$1000", ErrInvalidFormat},
			"format 2":   {"1,000.00", ErrInvalidFormat},
			"places 1":   {"1000.001", ErrInvalidFormat},
			"overflow 1": {"92233720368547758.08", ErrOverflow},
		}
		for name, tt := range tests {
			_, err := ParseSalary(tt.s)
			require.Error(t, err, name)
			assert.ErrorIs(t, err, tt.want, name)
			assert.False(t, IsValidSalary(tt.s), name)
		}
	})
}

func TestMustParseSalary(t *testing.T) {
	assert.Equal(t, NewSalary(150), MustParseSalary("1.5"))
	assert.Panics(t, func() { MustParseSalary("1.555") })
}

func TestSalary_String(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{-5, "-0.05"},
		{123450, "1234.50"},
		{math.MinInt64, "-92233720368547758.08"},
	}
	for _, tt := range tests {
		got := NewSalary(tt.v).String()
		assert.Equal(t, tt.want, got, "NewSalary(%v).String()", tt.v)
	}
}

func TestSalary_Decimal(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0, "0.00"},
		{-5, "-0.05"},
		{123450, "1234.50"},
		{math.MaxInt64, "92233720368547758.07"},
	}
	for _, tt := range tests {
		got := NewSalary(tt.v).Decimal()
		assert.Equal(t, tt.want, got.String(), "NewSalary(%v).Decimal()", tt.v)

		back, err := SalaryFromDecimal(got)
		require.NoError(t, err, "SalaryFromDecimal(%v)", got)
		assert.Equal(t, tt.v, back.Int64(), "SalaryFromDecimal(%v)", got)
	}

	t.Run("error", func(t *testing.T) {
		_, err := SalaryFromDecimal(decimal.MustParse("0.001"))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestSalary_JSON(t *testing.T) {
	type contact struct {
		Name   string `json:"name"`
		Salary Salary `json:"salary"`
	}

	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(contact{Name: "Alex Yeoh", Salary: NewSalary(123450)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Alex Yeoh","salary":"1234.50"}`, string(got))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var got contact
		err := json.Unmarshal([]byte(`{"name":"Bernice Yu","salary":"12"}`), &got)
		require.NoError(t, err)
		assert.Equal(t, NewSalary(1200), got.Salary)
	})

	t.Run("error", func(t *testing.T) {
		var got contact
		err := json.Unmarshal([]byte(`{"name":"Bernice Yu","salary":"1.234"}`), &got)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestSalary_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  int64
		}{
			{int64(123450), 123450},
			{int64(math.MinInt64), math.MinInt64},
			{"1234.5", 123450},
			{[]byte("-0.05"), -5},
		}
		for _, tt := range tests {
			var got Salary
			err := got.Scan(tt.value)
			require.NoError(t, err, "Scan(%v)", tt.value)
			assert.Equal(t, tt.want, got.Int64(), "Scan(%v)", tt.value)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{
			int8(123),
			int32(123),
			int(123),
			uint64(123),
			float64(1.23),
			"1.234",
			[]byte("abc"),
			nil,
		}
		for _, tt := range tests {
			var got Salary
			err := got.Scan(tt)
			require.Error(t, err, "Scan(%v)", tt)
			assert.True(t, Error.Has(err), "Scan(%v)", tt)
		}
		var got Salary
		assert.ErrorIs(t, got.Scan(nil), ErrMissingValue)
	})
}

func TestSalary_Value(t *testing.T) {
	got, err := NewSalary(-5).Value()
	require.NoError(t, err)
	assert.Equal(t, "-0.05", got)
}

func TestNullSalary_Scan(t *testing.T) {
	t.Run("null", func(t *testing.T) {
		got := NullSalary{Salary: NewSalary(100), Valid: true}
		err := got.Scan(nil)
		require.NoError(t, err)
		assert.Equal(t, NullSalary{}, got)
	})

	t.Run("salary", func(t *testing.T) {
		var got NullSalary
		err := got.Scan("12.3")
		require.NoError(t, err)
		assert.Equal(t, NullSalary{Salary: NewSalary(1230), Valid: true}, got)
	})

	t.Run("error", func(t *testing.T) {
		var got NullSalary
		err := got.Scan("abc")
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.False(t, got.Valid)
	})
}

func TestNullSalary_Value(t *testing.T) {
	got, err := NullSalary{}.Value()
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = NullSalary{Salary: NewSalary(1230), Valid: true}.Value()
	require.NoError(t, err)
	assert.Equal(t, "12.30", got)
}
