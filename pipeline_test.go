package marketstats

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/marketstats/date"
)

// stubProvider serves a prebuilt market, or a canned error.
type stubProvider struct {
	market *Market
	err    error
}

func (p stubProvider) FetchAdjustedClose(tickers []string, r date.Range) (*Market, error) {
	return p.market, p.err
}

func testRange(t *testing.T) date.Range {
	t.Helper()
	r, err := date.NewRange(date.New(2022, 7, 1), date.New(2022, 7, 10))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRun(t *testing.T) {
	m := testMarket(t, date.New(2022, 7, 1), []string{"A", "B"}, [][]float64{
		{100, 101, 99, 100},
		{50, 49, 50, 51},
	})
	p := &Pipeline{
		Tickers:  []string{"A", "B"},
		Range:    testRange(t),
		Provider: stubProvider{market: m},
	}

	s, err := p.Run()
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := s.Tickers(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("Run() tickers = %v, want [A B]", got)
	}
}

func TestRunProviderFailure(t *testing.T) {
	p := &Pipeline{
		Tickers:  []string{"A"},
		Range:    testRange(t),
		Provider: stubProvider{err: fmt.Errorf("connection refused")},
	}

	_, err := p.Run()
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Run() error = %v, want ErrDataUnavailable", err)
	}
}

func TestRunEmptyResult(t *testing.T) {
	p := &Pipeline{
		Tickers:  []string{"A"},
		Range:    testRange(t),
		Provider: stubProvider{market: NewMarket("A")},
	}

	_, err := p.Run()
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Run() error = %v, want ErrDataUnavailable", err)
	}
}

func TestRunAllMissingTicker(t *testing.T) {
	// A has a full history, B none at all. Partial gaps are tolerated but an
	// all-missing ticker is a hard failure.
	m := NewMarket("A", "B")
	first := date.New(2022, 7, 1)
	for i, price := range []float64{100, 101, 99, 100} {
		if err := m.Add("A", first.Add(i), price); err != nil {
			t.Fatal(err)
		}
	}
	p := &Pipeline{
		Tickers:  []string{"A", "B"},
		Range:    testRange(t),
		Provider: stubProvider{market: m},
	}

	_, err := p.Run()
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Run() error = %v, want ErrDataUnavailable", err)
	}
}

func TestRunNoTickers(t *testing.T) {
	p := &Pipeline{Range: testRange(t), Provider: stubProvider{market: NewMarket()}}
	if _, err := p.Run(); err == nil {
		t.Errorf("Run() with no tickers should return an error")
	}
}

func TestRunInsufficientHistory(t *testing.T) {
	m := testMarket(t, date.New(2022, 7, 1), []string{"A"}, [][]float64{{100, 101}})
	p := &Pipeline{
		Tickers:  []string{"A"},
		Range:    testRange(t),
		Provider: stubProvider{market: m},
	}

	_, err := p.Run()
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("Run() error = %v, want ErrInsufficientHistory", err)
	}
}
