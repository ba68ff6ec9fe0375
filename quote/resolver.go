package quote

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

// Resolver resolves a ticker to its daily series through an on-disk
// cache, refreshing from the provider when the cache is missing or
// stale. Cache files are named <TICKER>_<fetchDate>.csv and are
// deleted and rewritten as a side effect of reads: repeated reads are
// idempotent at the value level, not at the filesystem level.
//
// The resolver assumes single-process access to the cache directory.
type Resolver struct {
	dir     string
	fetcher Fetcher

	// today is replaceable in tests; staleness is measured against it.
	today func() date.Date
}

// NewResolver builds a resolver over a cache directory and a provider.
func NewResolver(dir string, fetcher Fetcher) *Resolver {
	return &Resolver{dir: dir, fetcher: fetcher, today: date.Today}
}

// Resolve returns the daily series for the ticker, served from the
// cache when it was fetched since the last completed trading day, and
// refreshed from the provider otherwise.
func (r *Resolver) Resolve(ticker string) (*stockfolio.PriceSeries, error) {
	path, fetched, ok, err := r.cached(ticker)
	if err != nil {
		return nil, err
	}
	if ok {
		yesterday := r.today().Add(-1)
		if !fetched.Before(yesterday) {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading cache %q: %w", path, err)
			}
			series, err := parseSeries(ticker, content)
			if err == nil {
				return series, nil
			}
			// a corrupt cache file heals the same way a stale one does
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("evicting stale cache %q: %w", path, err)
		}
	}
	return r.refetch(ticker)
}

// ValueAt returns the closing price of the ticker on the exact
// calendar date. When the cached series does not cover the date, the
// cache is refreshed once before failing: a single bounded retry, not
// recursion.
func (r *Resolver) ValueAt(ticker string, on date.Date) (stockfolio.Money, error) {
	point, err := r.PointOn(ticker, on)
	if err != nil {
		return stockfolio.Money{}, err
	}
	return point.Close, nil
}

// PointOn returns the bar for the exact calendar date, refreshing the
// cache once on a miss. It implements half of stockfolio.Pricer.
func (r *Resolver) PointOn(ticker string, on date.Date) (stockfolio.PricePoint, error) {
	return r.lookup(ticker, on, func(s *stockfolio.PriceSeries) (stockfolio.PricePoint, bool) {
		return s.At(on)
	})
}

// PointAsOf returns the bar on the date or the nearest prior trading
// day, refreshing the cache once on a miss.
func (r *Resolver) PointAsOf(ticker string, on date.Date) (stockfolio.PricePoint, error) {
	return r.lookup(ticker, on, func(s *stockfolio.PriceSeries) (stockfolio.PricePoint, bool) {
		return s.AsOf(on)
	})
}

// lookup resolves the series and applies the probe, forcing one
// refetch when the probe misses before reporting ErrNotFound.
func (r *Resolver) lookup(ticker string, on date.Date, probe func(*stockfolio.PriceSeries) (stockfolio.PricePoint, bool)) (stockfolio.PricePoint, error) {
	series, err := r.Resolve(ticker)
	if err != nil {
		return stockfolio.PricePoint{}, err
	}
	if point, ok := probe(series); ok {
		return point, nil
	}

	series, err = r.refetch(ticker)
	if err != nil {
		return stockfolio.PricePoint{}, err
	}
	if point, ok := probe(series); ok {
		return point, nil
	}
	return stockfolio.PricePoint{}, fmt.Errorf("no price for %q on %s: %w", ticker, on, stockfolio.ErrNotFound)
}

// refetch drops any cache files for the ticker, fetches a fresh series
// from the provider and writes a new cache file keyed by today.
func (r *Resolver) refetch(ticker string) (*stockfolio.PriceSeries, error) {
	series, err := r.fetcher.DailySeries(ticker)
	if err != nil {
		return nil, err
	}
	log.Printf("refreshed %s: %d bars", ticker, series.Len())

	if err := r.evict(ticker); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	path := filepath.Join(r.dir, fmt.Sprintf("%s_%s.csv", ticker, r.today()))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("writing cache %q: %w", path, err)
	}
	defer f.Close()
	if err := encodeSeries(f, series); err != nil {
		return nil, fmt.Errorf("writing cache %q: %w", path, err)
	}
	return series, nil
}

// cached locates the ticker's cache file and the date it was fetched.
func (r *Resolver) cached(ticker string) (path string, fetched date.Date, ok bool, err error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return "", date.Date{}, false, nil
	}
	if err != nil {
		return "", date.Date{}, false, fmt.Errorf("reading cache directory: %w", err)
	}
	prefix := ticker + "_"
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".csv")
		on, perr := date.Parse(stamp)
		if perr != nil {
			continue // not one of ours
		}
		return filepath.Join(r.dir, name), on, true, nil
	}
	return "", date.Date{}, false, nil
}

// evict removes every cache file belonging to the ticker.
func (r *Resolver) evict(ticker string) error {
	path, _, ok, err := r.cached(ticker)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("evicting cache %q: %w", path, err)
	}
	return nil
}
