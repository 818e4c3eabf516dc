package service

import "github.com/shopspring/decimal"

// Both helpers expect a finite value; Calculate and Summarize reject results
// that are not.

// roundTo2Decimals rounds half away from zero on the shortest decimal form
// of value, so 1.005 rounds to 1.01 and -425.125 to -425.13.
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func roundToInt(value float64) int {
	return int(decimal.NewFromFloat(value).Round(0).IntPart())
}
