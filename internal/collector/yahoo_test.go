package collector

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func yahooFetcherWithBody(body string) *YahooFetcher {
	return &YahooFetcher{
		Client: &http.Client{
			Transport: roundTripFunc(func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(body)),
					Header:     make(http.Header),
				}, nil
			}),
		},
	}
}

func TestFetchDailyHistory_TruncatedQuoteArrays(t *testing.T) {
	// Three timestamps but only two quote entries: the trailing bar is dropped
	// instead of panicking.
	body := `{"chart":{"result":[{
		"timestamp":[1700000000,1700086400,1700172800],
		"indicators":{"quote":[{
			"open":[10,11],"high":[10.5,11.5],"low":[9.5,10.5],
			"close":[10.2,11.2],"volume":[1000,1100]
		}]}
	}]}}`

	bars, err := yahooFetcherWithBody(body).FetchDailyHistory("TEST", "5y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars from truncated arrays, got %d", len(bars))
	}
	if bars[1].Close != 11.2 {
		t.Errorf("unexpected last close: %v", bars[1].Close)
	}
}

func TestFetchLatestRevenue_PicksGreatestEndDate(t *testing.T) {
	// Statements deliberately out of order; the 2024 figure must win.
	body := `{"quoteSummary":{"result":[{"incomeStatementHistory":{"incomeStatementHistory":[
		{"endDate":{"raw":1672444800},"totalRevenue":{"raw":1e9}},
		{"endDate":{"raw":1735603200},"totalRevenue":{"raw":3e9}},
		{"endDate":{"raw":1704000000},"totalRevenue":{"raw":2e9}}
	]}}],"error":null}}`

	revenue, err := yahooFetcherWithBody(body).FetchLatestRevenue("TEST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revenue != 3e9 {
		t.Errorf("expected revenue of the latest statement (3e9), got %v", revenue)
	}
}
