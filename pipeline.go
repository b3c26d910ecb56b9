package marketstats

import (
	"errors"
	"fmt"

	"github.com/etnz/marketstats/date"
)

// ErrDataUnavailable reports that the market-data provider was unreachable
// or returned no usable prices.
var ErrDataUnavailable = errors.New("market data unavailable")

// ErrInsufficientHistory reports that too few aligned trading days remain to
// compute the statistics.
var ErrInsufficientHistory = errors.New("insufficient price history")

// Provider fetches daily adjusted closing prices from a market-data source.
type Provider interface {
	// FetchAdjustedClose returns the adjusted closes of every ticker for
	// every trading day in r.
	FetchAdjustedClose(tickers []string, r date.Range) (*Market, error)
}

// Pipeline computes annualized statistics for a set of tickers over a range.
//
// A run is strictly sequential: fetch, align, derive returns, summarize.
// Any failure aborts the run; no statistics are produced from partial data.
type Pipeline struct {
	Tickers  []string
	Range    date.Range
	Provider Provider
}

// Run executes the pipeline and returns the statistics summary.
func (p *Pipeline) Run() (*Summary, error) {
	if len(p.Tickers) == 0 {
		return nil, fmt.Errorf("no tickers to fetch")
	}

	market, err := p.Provider.FetchAdjustedClose(p.Tickers, p.Range)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	if market.Observations() == 0 {
		return nil, fmt.Errorf("%w: provider returned no prices for %s", ErrDataUnavailable, p.Range)
	}
	for _, ticker := range p.Tickers {
		if h := market.History(ticker); h == nil || h.Len() == 0 {
			return nil, fmt.Errorf("%w: no prices for %s in %s", ErrDataUnavailable, ticker, p.Range)
		}
	}

	returns := market.PriceTable().Returns()
	return Summarize(returns)
}
