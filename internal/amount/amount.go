// Package amount converts between base units and decimal coin strings.
package amount

import (
	"fmt"
	"strconv"
	"strings"
)

// Coin is the number of base units in one coin.
const Coin int64 = 100_000_000

// Cent is one hundredth of a coin.
const Cent int64 = 1_000_000

// MinTxFee is the smallest fee the network relays without asking the user.
const MinTxFee int64 = 50_000

// Parse reads a decimal coin amount such as "0.01" into base units. At most
// eight fractional digits are accepted.
func Parse(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	whole, frac, _ := strings.Cut(trimmed, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 8 {
		return 0, fmt.Errorf("amount %q has more than 8 decimal places", value)
	}
	if strings.HasPrefix(whole, "-") || strings.HasPrefix(whole, "+") {
		return 0, fmt.Errorf("amount %q must be unsigned", value)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", value, err)
	}
	if units > (1<<63-1)/Coin {
		return 0, fmt.Errorf("amount %q out of range", value)
	}
	var fracUnits int64
	if strings.Trim(frac, "0123456789") != "" {
		return 0, fmt.Errorf("amount %q has a malformed fraction", value)
	}
	if frac != "" {
		fracUnits, err = strconv.ParseInt(frac+strings.Repeat("0", 8-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", value, err)
		}
	}
	return units*Coin + fracUnits, nil
}

// Format renders base units as a decimal coin amount, keeping at least two
// fractional digits.
func Format(units int64) string {
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	whole := units / Coin
	frac := fmt.Sprintf("%08d", units%Coin)
	frac = strings.TrimRight(frac, "0")
	for len(frac) < 2 {
		frac += "0"
	}
	return fmt.Sprintf("%s%d.%s", sign, whole, frac)
}
