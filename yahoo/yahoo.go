// Package yahoo fetches daily adjusted closing prices from the Yahoo Finance
// chart API.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/marketstats"
	"github.com/etnz/marketstats/date"
)

/*
	{
	  "chart": {
	    "result": [
	      {
	        "meta": { "currency": "USD", "symbol": "AAPL", ... },
	        "timestamp": [ 1656682200, 1656941400, ... ],
	        "indicators": {
	          "quote": [ { "open": [...], "close": [...], ... } ],
	          "adjclose": [ { "adjclose": [ 137.44, 140.77, ... ] } ]
	        }
	      }
	    ],
	    "error": null
	  }
	}
*/

// Provider fetches prices from the v8 chart endpoint. No API key is required.
type Provider struct{}

var _ marketstats.Provider = Provider{}

// FetchAdjustedClose fetches the adjusted closes of every ticker in r,
// one chart request per ticker.
func (Provider) FetchAdjustedClose(tickers []string, r date.Range) (*marketstats.Market, error) {
	market := marketstats.NewMarket(tickers...)
	client := marketstats.NewDailyCachingClient()
	for _, ticker := range tickers {
		if err := fetchDaily(client, market, ticker, r); err != nil {
			return nil, err
		}
	}
	return market, nil
}

func fetchDaily(client *http.Client, market *marketstats.Market, symbol string, r date.Range) error {
	// period2 is exclusive, like the range's To bound.
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div%%2Csplits",
		url.PathEscape(symbol), r.From.Unix(), r.To.Unix())

	var jobj any
	if err := marketstats.JSONGet(client, addr, &jobj); err != nil {
		return fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	days, closes, err := parseChart(jobj)
	if err != nil {
		return fmt.Errorf("error parsing chart for %q: %w", symbol, err)
	}

	for i, on := range days {
		if !r.Contains(on) {
			// the endpoint occasionally pads the bounds with an extra bar
			continue
		}
		if err := market.Add(symbol, on, closes[i]); err != nil {
			return err
		}
	}
	return nil
}

// parseChart plucks the trading days and adjusted closes out of an untyped
// chart payload. Bars with a null adjclose (no trade) are skipped.
func parseChart(jobj any) (days []date.Date, closes []float64, err error) {
	if jmsg, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if msg, ok := jmsg.(string); ok && msg != "" {
			return nil, nil, fmt.Errorf("chart API error: %s", msg)
		}
	}

	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, nil, fmt.Errorf("no timestamps in chart payload: %w", err)
	}
	jadj, err := jsonpath.Get("$.chart.result[0].indicators.adjclose[0].adjclose", jobj)
	if err != nil {
		return nil, nil, fmt.Errorf("no adjusted closes in chart payload: %w", err)
	}

	timestamps, ok := jts.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("timestamps are not a list: %v", jts)
	}
	adjcloses, ok := jadj.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("adjusted closes are not a list: %v", jadj)
	}
	if len(timestamps) != len(adjcloses) {
		return nil, nil, fmt.Errorf("%d timestamps for %d adjusted closes", len(timestamps), len(adjcloses))
	}

	for i, jt := range timestamps {
		ts, ok := jt.(float64)
		if !ok {
			return nil, nil, fmt.Errorf("timestamp is not a number: %v", jt)
		}
		adj, ok := adjcloses[i].(float64)
		if !ok {
			continue // null bar, the ticker had no trade that day
		}
		days = append(days, date.New(time.Unix(int64(ts), 0).UTC().Date()))
		closes = append(closes, adj)
	}
	return days, closes, nil
}
