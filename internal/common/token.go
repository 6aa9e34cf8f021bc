package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a human token amount ("1.25") into base units using
// the token's precision. The ledger core only ever sees base units.
func ParseAmount(value string, decimals int32) (int64, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	units := amount.Shift(decimals)
	if !units.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", value, decimals)
	}
	if !units.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s is out of range", value)
	}

	return units.IntPart(), nil
}

// FormatAmount renders base units as a human token amount.
func FormatAmount(units int64, decimals int32) string {
	return decimal.New(units, -decimals).String()
}
