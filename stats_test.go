package marketstats

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/marketstats/date"
)

// reference implementations of the §3-style formulas, written out longhand so
// the gonum-backed Summarize is checked against an independent computation.

func refMean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func refStdDev(xs []float64) float64 {
	m := refMean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func refCorrelation(xs, ys []float64) float64 {
	mx, my := refMean(xs), refMean(ys)
	var sxy, sxx, syy float64
	for i := range xs {
		sxy += (xs[i] - mx) * (ys[i] - my)
		sxx += (xs[i] - mx) * (xs[i] - mx)
		syy += (ys[i] - my) * (ys[i] - my)
	}
	return sxy / math.Sqrt(sxx*syy)
}

func TestSummarize(t *testing.T) {
	m := testMarket(t, date.New(2022, 7, 1), []string{"A", "B"}, [][]float64{
		{100, 101, 99, 100},
		{50, 49, 50, 51},
	})
	returns := m.PriceTable().Returns()

	s, err := Summarize(returns)
	if err != nil {
		t.Fatalf("Summarize() returned error: %v", err)
	}

	const tolerance = 1e-12
	for j := range 2 {
		col := returns.Column(j)
		wantMean := refMean(col) * 252
		wantVol := refStdDev(col) * math.Sqrt(252)
		if got := s.MeanAnnualReturn(j); math.Abs(got-wantMean) > tolerance {
			t.Errorf("MeanAnnualReturn(%d) = %v, want %v", j, got, wantMean)
		}
		if got := s.AnnualVolatility(j); math.Abs(got-wantVol) > tolerance {
			t.Errorf("AnnualVolatility(%d) = %v, want %v", j, got, wantVol)
		}
	}

	wantCorr := refCorrelation(returns.Column(0), returns.Column(1))
	if got := s.Correlation(0, 1); math.Abs(got-wantCorr) > 1e-9 {
		t.Errorf("Correlation(0, 1) = %v, want %v", got, wantCorr)
	}
}

func TestSummarizeCorrelationShape(t *testing.T) {
	m := testMarket(t, date.New(2022, 7, 1), []string{"A", "B", "C"}, [][]float64{
		{100, 101, 99, 100, 102},
		{50, 49, 50, 51, 50},
		{20, 21, 22, 21, 23},
	})

	s, err := Summarize(m.PriceTable().Returns())
	if err != nil {
		t.Fatalf("Summarize() returned error: %v", err)
	}

	const tolerance = 1e-12
	for i := range 3 {
		if got := s.Correlation(i, i); math.Abs(got-1.0) > tolerance {
			t.Errorf("Correlation(%d, %d) = %v, want 1.0", i, i, got)
		}
		for j := range 3 {
			if math.Abs(s.Correlation(i, j)-s.Correlation(j, i)) > tolerance {
				t.Errorf("Correlation(%d, %d) = %v differs from Correlation(%d, %d) = %v",
					i, j, s.Correlation(i, j), j, i, s.Correlation(j, i))
			}
		}
	}
}

func TestSummarizeInsufficientHistory(t *testing.T) {
	testCases := []struct {
		name   string
		prices []float64
	}{
		{"No prices", nil},
		{"Single day", []float64{100}},
		{"Two days, one return row", []float64{100, 101}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := testMarket(t, date.New(2022, 7, 1), []string{"A"}, [][]float64{tc.prices})
			_, err := Summarize(m.PriceTable().Returns())
			if !errors.Is(err, ErrInsufficientHistory) {
				t.Errorf("Summarize() error = %v, want ErrInsufficientHistory", err)
			}
		})
	}
}

func TestSummarizeConstantReturns(t *testing.T) {
	// A grows exactly 10% every day: its volatility is zero and its
	// correlation with anything is undefined. This must fail, not emit NaN.
	m := testMarket(t, date.New(2022, 7, 1), []string{"A", "B"}, [][]float64{
		{100, 110, 121},
		{50, 49, 51},
	})

	_, err := Summarize(m.PriceTable().Returns())
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("Summarize() error = %v, want ErrInsufficientHistory", err)
	}
}
