// Package renderer renders statistics reports as markdown strings.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/marketstats"
	"github.com/etnz/marketstats/date"
)

// Summary renders the full statistics report for a run over the given range.
func Summary(s *marketstats.Summary, r date.Range) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Market Statistics\n\n")
	fmt.Fprintf(&b, "Daily returns of %s over %s, annualized over %d trading days.\n\n",
		strings.Join(s.Tickers(), ", "), r, marketstats.TradingDays)
	b.WriteString(MeanReturns(s))
	b.WriteString(Volatility(s))
	b.WriteString(Correlation(s))
	return b.String()
}

// MeanReturns renders the annualized mean returns table.
func MeanReturns(s *marketstats.Summary) string {
	var b strings.Builder
	b.WriteString("## Mean Annual Returns (μ)\n\n")
	b.WriteString("| Ticker | MeanAnnualReturn |\n")
	b.WriteString("|---|---:|\n")
	for i, ticker := range s.Tickers() {
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, marketstats.Format4(s.MeanAnnualReturn(i)))
	}
	b.WriteString("\n")
	return b.String()
}

// Volatility renders the annualized volatility table.
func Volatility(s *marketstats.Summary) string {
	var b strings.Builder
	b.WriteString("## Annualized Volatility (σ)\n\n")
	b.WriteString("| Ticker | AnnualizedVolatility |\n")
	b.WriteString("|---|---:|\n")
	for i, ticker := range s.Tickers() {
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, marketstats.Format4(s.AnnualVolatility(i)))
	}
	b.WriteString("\n")
	return b.String()
}

// Correlation renders the pairwise correlation matrix.
func Correlation(s *marketstats.Summary) string {
	tickers := s.Tickers()

	var b strings.Builder
	b.WriteString("## Correlation Matrix\n\n")
	fmt.Fprintf(&b, "| Ticker | %s |\n", strings.Join(tickers, " | "))
	b.WriteString("|---|")
	b.WriteString(strings.Repeat("---:|", len(tickers)))
	b.WriteString("\n")
	for i, ticker := range tickers {
		cells := make([]string, 0, len(tickers))
		for j := range tickers {
			cells = append(cells, marketstats.Format4(s.Correlation(i, j)))
		}
		fmt.Fprintf(&b, "| %s | %s |\n", ticker, strings.Join(cells, " | "))
	}
	b.WriteString("\n")
	return b.String()
}
