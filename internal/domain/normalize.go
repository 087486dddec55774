package domain

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize converts an arbitrary raw value into a decimal amount. It is
// total: any input that does not parse as a finite number yields def, so no
// NaN or error ever leaves this function. Strings must be numeric in full;
// "149abc" is malformed and maps to def, not 149.
func Normalize(v any, def decimal.Decimal) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return def
	case decimal.Decimal:
		return n
	case Money:
		return n.Amount
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return def
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return def
		}
		return d
	case float64:
		return fromFloat(n, def)
	case float32:
		return fromFloat(float64(n), def)
	case int:
		return decimal.NewFromInt(int64(n))
	case int8:
		return decimal.NewFromInt(int64(n))
	case int16:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromUint64(uint64(n))
	case uint8:
		return decimal.NewFromInt(int64(n))
	case uint16:
		return decimal.NewFromInt(int64(n))
	case uint32:
		return decimal.NewFromInt(int64(n))
	case uint64:
		return decimal.NewFromUint64(n)
	default:
		return def
	}
}

// NormalizeQuantity is Normalize for quantity fields: fractional input is
// truncated toward zero.
func NormalizeQuantity(v any, def int64) int64 {
	return Normalize(v, decimal.NewFromInt(def)).IntPart()
}

// FormatCurrency normalizes first, then renders: junk input displays as the
// zero amount ("$0.00"), it never fails.
func FormatCurrency(v any) string {
	return NewMoney(Normalize(v, decimal.Zero), DefaultCurrency).Display()
}

// decimal.NewFromFloat panics on NaN and ±Inf, guard before converting.
func fromFloat(f float64, def decimal.Decimal) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return decimal.NewFromFloat(f)
}
