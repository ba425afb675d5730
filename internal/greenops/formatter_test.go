package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{name: "small number no separators", n: 123, want: "123"},
		{name: "four digits with separator", n: 1234, want: "1,234"},
		{name: "millions", n: 1234567, want: "1,234,567"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative number", n: -1234, want: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{name: "two decimals with separator", f: 1234.567, precision: 2, want: "1,234.57"},
		{name: "one decimal small", f: 2.854, precision: 1, want: "2.9"},
		{name: "zero precision rounds", f: 5707.8, precision: 0, want: "5,708"},
		{name: "negative precision treated as zero", f: 12.4, precision: -1, want: "12"},
		{name: "negative value", f: -1234.5, precision: 1, want: "-1,234.5"},
		{name: "zero", f: 0, precision: 2, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999,999", FormatLarge(999_999))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~1.5 billion", FormatLarge(1_500_000_000))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "4,852 PLN", FormatCurrency(4851.63, "PLN"))
	assert.Equal(t, "4,852", FormatCurrency(4851.63, ""))
}
