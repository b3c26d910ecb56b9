// Package cmd implements the CLI application to compute market statistics.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/marketstats"
	"github.com/etnz/marketstats/date"
	"github.com/etnz/marketstats/eodhd"
	"github.com/etnz/marketstats/yahoo"
	"github.com/google/subcommands"
)

// Commands lists the subcommands to register.
// A main package registers each of them and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&statsCmd{},
	&fetchCmd{},
}

const eodhdAPIKeyEnv = "EODHD_API_KEY"

// pipelineFlags holds the flags shared by every command that fetches prices.
type pipelineFlags struct {
	tickers  string
	start    string
	end      string
	provider string
	apiKey   string
}

func (c *pipelineFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "GOOG,META,MSFT,AAPL", "Comma-separated ticker symbols.")
	f.StringVar(&c.start, "s", "2022-07-01", "Start date of the range (included).")
	f.StringVar(&c.end, "e", "2025-07-01", "End date of the range (excluded).")
	f.StringVar(&c.provider, "provider", "yahoo", "Market data provider (yahoo, eodhd).")
	f.StringVar(&c.apiKey, "eodhd-api-key", "", "EODHD API key. This flag takes precedence over the "+eodhdAPIKeyEnv+" environment variable. You can get one at https://eodhd.com/")
}

// eodhdAPIKey retrieves the EODHD API key from the command-line flag or the
// environment variable. It prioritizes the flag over the environment variable.
func (c *pipelineFlags) eodhdAPIKey() string {
	if c.apiKey == "" {
		c.apiKey = os.Getenv(eodhdAPIKeyEnv)
	}
	return c.apiKey
}

// pipeline builds the pipeline described by the flags.
func (c *pipelineFlags) pipeline() (*marketstats.Pipeline, error) {
	tickers := strings.Split(c.tickers, ",")
	for i := range tickers {
		tickers[i] = strings.TrimSpace(tickers[i])
	}

	from, err := date.Parse(c.start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	to, err := date.Parse(c.end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}
	r, err := date.NewRange(from, to)
	if err != nil {
		return nil, err
	}

	var provider marketstats.Provider
	switch c.provider {
	case "yahoo":
		provider = yahoo.Provider{}
	case "eodhd":
		provider = eodhd.Provider{APIKey: c.eodhdAPIKey()}
	default:
		return nil, fmt.Errorf("unknown provider %q (want yahoo or eodhd)", c.provider)
	}

	return &marketstats.Pipeline{Tickers: tickers, Range: r, Provider: provider}, nil
}
