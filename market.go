package marketstats

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/marketstats/date"
)

// Market holds daily adjusted closing prices for a set of tickers.
//
// Tickers are fixed at construction and keep their declaration order, so
// that every derived table and report lists them the way the caller did.
type Market struct {
	tickers []string
	index   map[string]*date.History[float64]
}

// NewMarket returns a new empty market for the given tickers.
func NewMarket(tickers ...string) *Market {
	m := &Market{
		tickers: slices.Clone(tickers),
		index:   make(map[string]*date.History[float64], len(tickers)),
	}
	for _, ticker := range m.tickers {
		m.index[ticker] = new(date.History[float64])
	}
	return m
}

// Tickers returns the tickers in their declaration order.
func (m *Market) Tickers() []string { return slices.Clone(m.tickers) }

// Has reports whether the market holds the given ticker.
func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// History returns the price history for a ticker, or nil for an unknown one.
func (m *Market) History(ticker string) *date.History[float64] { return m.index[ticker] }

// Add records the adjusted close of a ticker on a given day.
// An existing price at that day is overwritten.
func (m *Market) Add(ticker string, on date.Date, price float64) error {
	h, ok := m.index[ticker]
	if !ok {
		return fmt.Errorf("unknown ticker %q", ticker)
	}
	h.Append(on, price)
	return nil
}

// Observations returns the total number of prices held, across all tickers.
func (m *Market) Observations() int {
	n := 0
	for _, h := range m.index {
		n += h.Len()
	}
	return n
}

// PriceTable aligns all price histories into a single table.
//
// Rows are the union of all trading dates, ascending and unique. Columns
// follow the ticker declaration order. A ticker with no trade on a given
// date gets a NaN cell.
func (m *Market) PriceTable() *Table {
	histories := make([]*date.History[float64], 0, len(m.tickers))
	for _, ticker := range m.tickers {
		histories = append(histories, m.index[ticker])
	}

	t := &Table{tickers: slices.Clone(m.tickers)}
	for on := range date.Iterate(histories...) {
		row := make([]float64, len(histories))
		for j, h := range histories {
			if v, ok := h.Get(on); ok {
				row[j] = v
			} else {
				row[j] = math.NaN()
			}
		}
		t.days = append(t.days, on)
		t.cells = append(t.cells, row)
	}
	return t
}
