package marketstats

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Output file names, written into the output directory.
const (
	MeanReturnsFile = "mean_returns.csv"
	VolatilityFile  = "volatility.csv"
	CorrelationFile = "correlation_matrix.csv"
)

// ExportMeanReturns writes the annualized mean returns to 'w' as CSV,
// one row per ticker.
func ExportMeanReturns(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ticker", "MeanAnnualReturn"}); err != nil {
		return err
	}
	for i, ticker := range s.tickers {
		if err := cw.Write([]string{ticker, Format4(s.MeanAnnualReturn(i))}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportVolatility writes the annualized volatilities to 'w' as CSV,
// one row per ticker.
func ExportVolatility(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ticker", "AnnualizedVolatility"}); err != nil {
		return err
	}
	for i, ticker := range s.tickers {
		if err := cw.Write([]string{ticker, Format4(s.AnnualVolatility(i))}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCorrelationMatrix writes the ticker-by-ticker correlation matrix to
// 'w' as CSV. Both the header row and the index column are ticker symbols.
func ExportCorrelationMatrix(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"ticker"}, s.tickers...)); err != nil {
		return err
	}
	for i, ticker := range s.tickers {
		row := make([]string, 0, len(s.tickers)+1)
		row = append(row, ticker)
		for j := range s.tickers {
			row = append(row, Format4(s.Correlation(i, j)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiles writes the three statistics files into dir, overwriting any
// existing ones.
func WriteFiles(dir string, s *Summary) error {
	exports := []struct {
		name   string
		export func(io.Writer, *Summary) error
	}{
		{MeanReturnsFile, ExportMeanReturns},
		{VolatilityFile, ExportVolatility},
		{CorrelationFile, ExportCorrelationMatrix},
	}
	for _, e := range exports {
		filename := filepath.Join(dir, e.name)
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("cannot create %q: %w", filename, err)
		}
		if err := e.export(f, s); err != nil {
			f.Close()
			return fmt.Errorf("cannot write %q: %w", filename, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("cannot close %q: %w", filename, err)
		}
	}
	return nil
}
