package stockfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store persists portfolios and strategies as CSV files under the
// configured root directories. The kind of a portfolio is implied by
// the root it lives under, not stored in the file.
type Store struct {
	fixedDir    string
	flexibleDir string
	strategyDir string
}

// NewStore builds a store over the three root directories.
func NewStore(fixedDir, flexibleDir, strategyDir string) *Store {
	return &Store{fixedDir: fixedDir, flexibleDir: flexibleDir, strategyDir: strategyDir}
}

func (s *Store) portfolioDir(kind Kind) string {
	if kind == Fixed {
		return s.fixedDir
	}
	return s.flexibleDir
}

func (s *Store) portfolioPath(name string, kind Kind) string {
	return filepath.Join(s.portfolioDir(kind), name+".csv")
}

func (s *Store) strategyPath(name string) string {
	return filepath.Join(s.strategyDir, name+".csv")
}

// SavePortfolio writes the portfolio under the root matching its kind,
// creating parent directories as needed.
func (s *Store) SavePortfolio(p *Portfolio) error {
	if p.Name() == "" {
		return fmt.Errorf("cannot save a portfolio without a name: %w", ErrInvalidArgument)
	}
	path := s.portfolioPath(p.Name(), p.Kind())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating portfolio directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening portfolio file %q: %w", path, err)
	}
	defer f.Close()
	if err := EncodePortfolio(f, p); err != nil {
		return err
	}
	// a fixed portfolio is sealed from its first save on
	p.Seal()
	return nil
}

// LoadPortfolio reads a portfolio of the given kind by name.
// A missing file is ErrNotFound.
func (s *Store) LoadPortfolio(name string, kind Kind) (*Portfolio, error) {
	path := s.portfolioPath(name, kind)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s portfolio %q: %w", kind, name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening portfolio file %q: %w", path, err)
	}
	defer f.Close()
	return DecodePortfolio(f, name, kind)
}

// FindPortfolio looks the name up under the flexible root first, then
// the fixed root.
func (s *Store) FindPortfolio(name string) (*Portfolio, error) {
	p, err := s.LoadPortfolio(name, Flexible)
	if err == nil {
		return p, nil
	}
	return s.LoadPortfolio(name, Fixed)
}

// ListPortfolios returns the portfolio names stored under the root of
// the given kind, sorted.
func (s *Store) ListPortfolios(kind Kind) ([]string, error) {
	entries, err := os.ReadDir(s.portfolioDir(kind))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s portfolios: %w", kind, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names, nil
}

// SaveStrategies writes the strategy records funding the named
// portfolio.
func (s *Store) SaveStrategies(portfolioName string, records []*StrategyRecord) error {
	path := s.strategyPath(portfolioName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating strategy directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening strategy file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeStrategies(f, records)
}

// LoadStrategies reads the strategy records funding the named
// portfolio. A missing file is ErrNotFound.
func (s *Store) LoadStrategies(portfolioName string) ([]*StrategyRecord, error) {
	path := s.strategyPath(portfolioName)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("strategies for %q: %w", portfolioName, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening strategy file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeStrategies(f)
}
