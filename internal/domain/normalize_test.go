package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	def := decimal.NewFromInt(7)

	tests := []struct {
		name string
		in   any
		want decimal.Decimal
	}{
		{name: "nil: default", in: nil, want: def},
		{name: "empty string: default", in: "", want: def},
		{name: "non-numeric string: default", in: "abc", want: def},
		{name: "numeric prefix is still malformed: default", in: "149abc", want: def},
		{name: "numeric string: parsed", in: "12.5", want: decimal.RequireFromString("12.5")},
		{name: "numeric string with spaces: parsed", in: "  42 ", want: decimal.NewFromInt(42)},
		{name: "negative int: unchanged", in: -3, want: decimal.NewFromInt(-3)},
		{name: "int64", in: int64(699), want: decimal.NewFromInt(699)},
		{name: "uint64", in: uint64(9), want: decimal.NewFromInt(9)},
		{name: "float64", in: 29.99, want: decimal.NewFromFloat(29.99)},
		{name: "float32", in: float32(2), want: decimal.NewFromInt(2)},
		{name: "NaN: default", in: math.NaN(), want: def},
		{name: "+Inf: default", in: math.Inf(1), want: def},
		{name: "-Inf: default", in: math.Inf(-1), want: def},
		{name: "json.Number", in: json.Number("129"), want: decimal.NewFromInt(129)},
		{name: "malformed json.Number: default", in: json.Number("x"), want: def},
		{name: "decimal passes through", in: decimal.NewFromInt(249), want: decimal.NewFromInt(249)},
		{name: "money unwraps to amount", in: domain.NewMoney(decimal.NewFromInt(99), domain.DefaultCurrency), want: decimal.NewFromInt(99)},
		{name: "unsupported type: default", in: struct{}{}, want: def},
		{name: "bool: default", in: true, want: def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Normalize(tt.in, def)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  int64
		want int64
	}{
		{name: "nil: default", in: nil, def: 1, want: 1},
		{name: "int", in: 3, def: 1, want: 3},
		{name: "numeric string", in: "2", def: 1, want: 2},
		{name: "fractional truncates", in: "12.5", def: 1, want: 12},
		{name: "junk: default", in: "lots", def: 1, want: 1},
		{name: "negative passes through", in: -3, def: 1, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeQuantity(tt.in, tt.def))
		})
	}
}
