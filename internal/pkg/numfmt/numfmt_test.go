package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Переменные, а не константы: сумма констант 0.1 + 0.2 считается точно и даёт ровно 0.3.
var tenth, fifth = 0.1, 0.2

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "целое", in: 8, want: "8"},
		{name: "дробное", in: 0.5, want: "0.5"},
		{name: "отрицательное", in: -42.25, want: "-42.25"},
		{name: "ноль", in: 0, want: "0"},
		{name: "минус ноль", in: math.Copysign(0, -1), want: "0"},
		{name: "классическая проблема float", in: tenth + fifth, want: "0.30000000000000004"},
		{name: "большое без экспоненты", in: 1e20, want: "100000000000000000000"},
		{name: "большое с экспонентой", in: 1e21, want: "1e+21"},
		{name: "большое дробная мантисса", in: 1.5e22, want: "1.5e+22"},
		{name: "маленькое без экспоненты", in: 0.000001, want: "0.000001"},
		{name: "маленькое с экспонентой", in: 1e-7, want: "1e-7"},
		{name: "маленькое дробная мантисса", in: 1.5e-7, want: "1.5e-7"},
		{name: "плюс бесконечность", in: math.Inf(1), want: "Infinity"},
		{name: "минус бесконечность", in: math.Inf(-1), want: "-Infinity"},
		{name: "не число", in: math.NaN(), want: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "целое", in: "50", want: 50},
		{name: "точка в конце", in: "0.", want: 0},
		{name: "точка в начале", in: ".5", want: 0.5},
		{name: "отрицательное", in: "-12.5", want: -12.5},
		{name: "экспонента", in: "1e+21", want: 1e21},
		{name: "мусор после числа", in: "12.5abc", want: 12.5},
		{name: "незаконченная экспонента", in: "3e", want: 3},
		{name: "бесконечность", in: "Infinity", want: math.Inf(1)},
		{name: "бесконечность с хвостом", in: "Infinity5", want: math.Inf(1)},
		{name: "минус бесконечность", in: "-Infinity", want: math.Inf(-1)},
		{name: "переполнение", in: "1e400", want: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParse_NaN(t *testing.T) {
	for _, in := range []string{"", "-", ".", "NaN", "-NaN", "abc"} {
		assert.True(t, math.IsNaN(Parse(in)), "Parse(%q) должен вернуть NaN", in)
	}
}

func TestParse_NegativeZero(t *testing.T) {
	v := Parse("-0")
	assert.Equal(t, 0.0, v)
	assert.True(t, math.Signbit(v), "знак минус нуля должен сохраниться")
}

func TestEncodeDecode(t *testing.T) {
	values := []float64{
		tenth + fifth,
		-42.5,
		1e-10,
		math.Copysign(0, -1),
		math.Inf(1),
		math.Inf(-1),
	}

	for _, v := range values {
		got, err := Decode(Encode(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, math.Signbit(v), math.Signbit(got))
	}

	nan, err := Decode(Encode(math.NaN()))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))
}
