package quote

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

func TestClient_daily_series(t *testing.T) {
	var query string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(providerCSV))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "demo")
	s, err := c.DailySeries("GOOG")
	if err != nil {
		t.Fatalf("DailySeries: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	if _, ok := s.At(date.MustParse("2024-01-03")); !ok {
		t.Error("missing bar on 2024-01-03")
	}
	for _, want := range []string{"symbol=GOOG", "apikey=demo", "datatype=csv"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}
}

func TestClient_http_error_is_external(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "demo").DailySeries("GOOG")
	if !errors.Is(err, stockfolio.ErrExternalService) {
		t.Errorf("err = %v, want ErrExternalService", err)
	}
}

func TestClient_empty_series_is_not_found(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("timestamp,open,high,low,close,volume\n"))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "demo").DailySeries("UNLISTED")
	if !errors.Is(err, stockfolio.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
