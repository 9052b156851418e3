package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "with sign", input: "84.5%", want: 84.5},
		{name: "bare number", input: "12.25", want: 12.25},
		{name: "padded", input: " 7.5% ", want: 7.5},
		{name: "space before sign", input: "7.5 %", want: 7.5},
		{name: "blank", input: "", want: 0},
		{name: "garbage", input: "n/a", want: 0},
		{name: "placeholder dash", input: "-", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.input))
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "dollar sign", input: "$15.32", want: 15.32},
		{name: "thousands separators", input: "$1,234.56", want: 1234.56},
		{name: "bare number", input: "9.87", want: 9.87},
		{name: "four decimals", input: "$0.4821", want: 0.4821},
		{name: "blank", input: "", want: 0},
		{name: "garbage", input: "TBD", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.input))
		})
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "millions", input: "$3.95M", want: 3_950_000},
		{name: "billions", input: "$8.63B", want: 8_630_000_000},
		{name: "lowercase suffix", input: "1.2b", want: 1_200_000_000},
		{name: "no suffix", input: "1250000", want: 1_250_000},
		{name: "commas and suffix", input: "$1,500M", want: 1_500_000_000},
		{name: "blank", input: "", want: 0},
		{name: "suffix only", input: "M", want: 0},
		{name: "garbage", input: "coming soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Magnitude(tt.input))
		})
	}
}
