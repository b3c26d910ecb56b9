package marketstats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the conventional number of trading days per year used to
// scale daily statistics to yearly.
const TradingDays = 252

// Summary holds the annualized statistics derived from a table of daily returns.
type Summary struct {
	tickers     []string
	mean        []float64     // annualized mean return per ticker
	volatility  []float64     // annualized sample standard deviation per ticker
	correlation *mat.SymDense // pairwise Pearson correlation
}

// Summarize reduces a table of daily returns to its annualized statistics.
//
// It requires at least two return rows: the sample standard deviation of a
// single observation is undefined, and emitting NaN would silently poison
// every downstream report. Degenerate series (a constant return column) are
// rejected for the same reason.
func Summarize(returns *Table) (*Summary, error) {
	rows := returns.NumRows()
	cols := len(returns.tickers)
	if rows < 2 {
		return nil, fmt.Errorf("%w: %d aligned return rows, need at least 2", ErrInsufficientHistory, rows)
	}

	s := &Summary{
		tickers:    slices.Clone(returns.tickers),
		mean:       make([]float64, cols),
		volatility: make([]float64, cols),
	}

	// One observation per row, one asset per column.
	obs := mat.NewDense(rows, cols, nil)
	for j := range cols {
		col := returns.Column(j)
		s.mean[j] = stat.Mean(col, nil) * TradingDays
		s.volatility[j] = stat.StdDev(col, nil) * math.Sqrt(TradingDays)
		obs.SetCol(j, col)
	}

	s.correlation = mat.NewSymDense(cols, nil)
	stat.CorrelationMatrix(s.correlation, obs, nil)

	for j, ticker := range s.tickers {
		if math.IsNaN(s.mean[j]) || math.IsNaN(s.volatility[j]) {
			return nil, fmt.Errorf("%w: statistics for %s are undefined", ErrInsufficientHistory, ticker)
		}
		for k := range s.tickers {
			if math.IsNaN(s.correlation.At(j, k)) {
				return nil, fmt.Errorf("%w: correlation of %s with %s is undefined (constant returns)", ErrInsufficientHistory, ticker, s.tickers[k])
			}
		}
	}
	return s, nil
}

// Tickers returns the tickers in order, one per statistics column.
func (s *Summary) Tickers() []string { return slices.Clone(s.tickers) }

// MeanAnnualReturn returns the annualized mean return of ticker i.
func (s *Summary) MeanAnnualReturn(i int) float64 { return s.mean[i] }

// AnnualVolatility returns the annualized volatility of ticker i.
func (s *Summary) AnnualVolatility(i int) float64 { return s.volatility[i] }

// Correlation returns the Pearson correlation between tickers i and j.
func (s *Summary) Correlation(i, j int) float64 { return s.correlation.At(i, j) }
