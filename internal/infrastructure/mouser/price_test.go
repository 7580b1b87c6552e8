package mouser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$0.15", 0.15},
		{"$1.05", 1.05},
		{"0.234", 0.234},
		{"0,12 €", 0.12},
		{"1.234,56 €", 1234.56},
		{"$1,234.56", 1234.56},
		{"£2.50", 2.5},
		{" $0.10 ", 0.1},
		{"1,234", 1234},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrice(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "call for quote", "N/A", "$-1.00"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePrice(in)
			assert.Error(t, err)
		})
	}
}
