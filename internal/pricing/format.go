package pricing

import (
	"fmt"
	"math"
)

// Round2 rounds half away from zero to currency precision
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney renders an amount with two decimals
func FormatMoney(v float64) string {
	r := Round2(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return fmt.Sprintf("$%.2f", r)
}
