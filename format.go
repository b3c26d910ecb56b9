package marketstats

import "github.com/shopspring/decimal"

// Format4 renders a statistic rounded to 4 decimal places.
//
// The same formatting is used for console output and CSV files, so a written
// value reads back to exactly the rounded in-memory value. Decimal rounding
// avoids the drift a float round-then-print would reintroduce.
func Format4(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}
