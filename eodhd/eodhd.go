// Package eodhd fetches end-of-day market data from eodhd.com.
package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/marketstats"
	"github.com/etnz/marketstats/date"
	"github.com/shopspring/decimal"
)

// Provider fetches prices from the EODHD end-of-day API.
// An API key is required, see https://eodhd.com/.
type Provider struct {
	APIKey string
}

var _ marketstats.Provider = Provider{}

// FetchAdjustedClose fetches the adjusted closes of every ticker in r.
func (p Provider) FetchAdjustedClose(tickers []string, r date.Range) (*marketstats.Market, error) {
	if p.APIKey == "" {
		return nil, fmt.Errorf("an EODHD API key is required")
	}
	market := marketstats.NewMarket(tickers...)
	client := marketstats.NewDailyCachingClient()
	for _, ticker := range tickers {
		if err := fetchAdjusted(client, p.APIKey, market, ticker, r); err != nil {
			return nil, err
		}
	}
	return market, nil
}

// fetchAdjusted fills the daily adjusted closes for a single ticker.
func fetchAdjusted(client *http.Client, apiKey string, market *marketstats.Market, symbol string, r date.Range) error {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	  },

	// the api bounds are both inclusive while r.To is not.
	to := r.To.Add(-1)
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(Ticker(symbol)), apiKey, r.From, to)

	// that's the payload
	content := make([]eod, 0)
	if err := marketstats.JSONGet(client, addr, &content); err != nil {
		return fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	for _, bar := range content {
		if err := market.Add(symbol, bar.Date, bar.AdjustedClose.InexactFloat64()); err != nil {
			return err
		}
	}
	return nil
}

// eod is one bar of the end-of-day payload.
type eod struct {
	Date          date.Date       `json:"date"`
	AdjustedClose decimal.Decimal `json:"adjusted_close"`
}

// Ticker maps a plain equity symbol to EODHD's "SYMBOL.EXCHANGE" form,
// defaulting to the US virtual exchange. A symbol that already carries an
// exchange suffix is kept as is.
func Ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + ".US"
}
