// Package quote resolves tickers to daily price series, mirroring the
// external provider into a self-healing on-disk cache.
package quote

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/avigne/stockfolio"
)

// Fetcher fetches the full daily series for a ticker from the external
// provider. Implementations surface connectivity and format failures
// as stockfolio.ErrExternalService.
type Fetcher interface {
	DailySeries(ticker string) (*stockfolio.PriceSeries, error)
}

// maxFetchAttempts bounds the transport-level retry of one fetch.
const maxFetchAttempts = 2

// Client queries the provider's daily time series endpoint, templated
// by ticker and authenticated with an API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a provider client. The base URL and credential come
// from configuration.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// DailySeries fetches the complete daily series for the ticker. The
// provider answers CSV rows consumed positionally by parseSeries.
func (c *Client) DailySeries(ticker string) (*stockfolio.PriceSeries, error) {
	addr := fmt.Sprintf("%s/query?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&datatype=csv&apikey=%s",
		c.baseURL, url.QueryEscape(ticker), url.QueryEscape(c.apiKey))

	body, err := c.get(addr)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w: %v", ticker, stockfolio.ErrExternalService, err)
	}
	series, err := parseSeries(ticker, body)
	if err != nil {
		return nil, fmt.Errorf("parsing response for %q: %w: %v", ticker, stockfolio.ErrExternalService, err)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("provider has no data for %q: %w", ticker, stockfolio.ErrNotFound)
	}
	return series, nil
}

// get performs the GET with a small bounded retry on transport errors.
func (c *Client) get(addr string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		resp, err := c.httpClient.Get(addr)
		if err != nil {
			lastErr = err
			continue
		}
		log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("http status %s", resp.Status)
			continue
		}
		return body, nil
	}
	return nil, lastErr
}
