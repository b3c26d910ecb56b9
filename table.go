package marketstats

import (
	"math"
	"slices"

	"github.com/etnz/marketstats/date"
)

// Table is a date-indexed table of values with one column per ticker.
// A NaN cell marks a missing value.
type Table struct {
	tickers []string
	days    []date.Date
	cells   [][]float64 // one row per day, in chronological order
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int { return len(t.days) }

// Tickers returns the column tickers in order.
func (t *Table) Tickers() []string { return slices.Clone(t.tickers) }

// Day returns the date of row i.
func (t *Table) Day(i int) date.Date { return t.days[i] }

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.cells[i][j] }

// Column returns a copy of column j.
func (t *Table) Column(j int) []float64 {
	col := make([]float64, len(t.cells))
	for i, row := range t.cells {
		col[i] = row[j]
	}
	return col
}

// Returns derives the daily simple returns of the table, (p_t / p_{t-1}) - 1,
// computed against the immediately preceding row.
//
// The first row has no predecessor and is discarded, and so is any row for
// which at least one ticker has a missing price on either day. This keeps the
// return rows aligned across all tickers, at the cost of discarding a whole
// trading day when a single ticker did not trade.
func (t *Table) Returns() *Table {
	r := &Table{tickers: slices.Clone(t.tickers)}
	for i := 1; i < len(t.days); i++ {
		row := make([]float64, len(t.tickers))
		complete := true
		for j := range t.tickers {
			v := t.cells[i][j]/t.cells[i-1][j] - 1
			if math.IsNaN(v) {
				complete = false
				break
			}
			row[j] = v
		}
		if !complete {
			continue
		}
		r.days = append(r.days, t.days[i])
		r.cells = append(r.cells, row)
	}
	return r
}
