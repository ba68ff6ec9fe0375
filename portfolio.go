package stockfolio

import (
	"fmt"
	"slices"

	"github.com/avigne/stockfolio/date"
)

// Kind distinguishes the two portfolio variants.
type Kind int

const (
	// Flexible portfolios accept buys and sells for their whole lifetime.
	Flexible Kind = iota
	// Fixed portfolios receive their lots once at build time and are
	// sealed on save; later mutation is rejected.
	Fixed
)

func (k Kind) String() string {
	switch k {
	case Flexible:
		return "flexible"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "flexible":
		return Flexible, nil
	case "fixed":
		return Fixed, nil
	default:
		return 0, fmt.Errorf("unknown portfolio kind %q: %w", s, ErrInvalidArgument)
	}
}

// Pricer resolves historical price bars for a ticker. The quote
// package's Resolver is the production implementation.
type Pricer interface {
	// PointOn returns the bar for the exact calendar date.
	PointOn(ticker string, on date.Date) (PricePoint, error)
	// PointAsOf returns the bar on the date or the nearest prior trading day.
	PointAsOf(ticker string, on date.Date) (PricePoint, error)
}

// Portfolio is a named, owned collection of lots. All mutation goes
// through its methods so the quantity and coverage invariants hold;
// callers obtain copies, never the internal lot table.
type Portfolio struct {
	name   string
	kind   Kind
	sealed bool
	lots   lots
}

// NewPortfolio creates an empty portfolio of the given kind.
func NewPortfolio(name string, kind Kind) *Portfolio {
	return &Portfolio{name: name, kind: kind}
}

// Name returns the portfolio name, which doubles as its file name.
func (p *Portfolio) Name() string { return p.name }

// Kind returns the portfolio variant.
func (p *Portfolio) Kind() Kind { return p.kind }

// Seal marks a fixed portfolio as closed for mutation. Sealing a
// flexible portfolio has no effect, and neither has sealing an empty
// fixed one: the build-time buys still have to go in.
func (p *Portfolio) Seal() {
	if p.kind == Fixed && len(p.lots) > 0 {
		p.sealed = true
	}
}

// Buy records a manual purchase of a whole, positive number of shares
// of ticker at the given price bar. A buy on an existing (ticker,
// trade date) lot merges into it.
func (p *Portfolio) Buy(ticker string, quantity Quantity, point PricePoint) error {
	if p.sealed {
		return fmt.Errorf("buy %s: %w", ticker, ErrSealedPortfolio)
	}
	if !quantity.IsWholePositive() {
		return fmt.Errorf("buy %s of %q: %w", quantity, ticker, ErrInvalidQuantity)
	}
	p.record(Lot{
		Ticker:    ticker,
		TradeDate: point.Date,
		Open:      point.Open,
		Close:     point.Close,
		Volume:    point.Volume,
		Quantity:  quantity,
		CostBasis: point.Close.Mul(quantity),
	})
	return nil
}

// record merges a lot into the table without the whole-share
// constraint. The strategy simulator records fractional (and, for
// negative amounts, negative) lots through this path, with the cost
// basis it computed from the allocation split.
func (p *Portfolio) record(l Lot) {
	p.lots = p.lots.merge(l)
}

// Sell reduces holdings of ticker by a whole, positive quantity as of
// the given date. The sale must be covered by lots dated on or before
// that date, and is applied lot by lot in insertion order. Cost bases
// are not prorated (see lots.reduce).
func (p *Portfolio) Sell(ticker string, quantity Quantity, on date.Date) error {
	if p.sealed {
		return fmt.Errorf("sell %s: %w", ticker, ErrSealedPortfolio)
	}
	if !quantity.IsWholePositive() {
		return fmt.Errorf("sell %s of %q: %w", quantity, ticker, ErrInvalidQuantity)
	}
	held := p.lots.held(ticker, on)
	if held.LessThan(quantity) {
		return fmt.Errorf("sell %s of %q on %s, %s held: %w",
			quantity, ticker, on, held, ErrInsufficientHoldings)
	}
	p.lots.reduce(ticker, on, quantity)
	return nil
}

// Position returns the quantity of ticker held as of the date.
func (p *Portfolio) Position(ticker string, on date.Date) Quantity {
	return p.lots.held(ticker, on)
}

// Composition returns a copy of the lot table, in insertion order.
func (p *Portfolio) Composition() []Lot {
	return slices.Clone(p.lots)
}

// Tickers returns the distinct tickers present in the lot table, in
// first-appearance order.
func (p *Portfolio) Tickers() []string {
	var tickers []string
	for _, l := range p.lots {
		if !slices.Contains(tickers, l.Ticker) {
			tickers = append(tickers, l.Ticker)
		}
	}
	return tickers
}

// ValueOn re-prices each quantity held as of the date using the
// pricer, at the date or the nearest prior trading day, and sums
// quantity times close.
func (p *Portfolio) ValueOn(on date.Date, prices Pricer) (Money, error) {
	var total Money
	for _, ticker := range p.Tickers() {
		held := p.lots.held(ticker, on)
		if held.IsZero() {
			continue
		}
		point, err := prices.PointAsOf(ticker, on)
		if err != nil {
			return Money{}, fmt.Errorf("valuing %q on %s: %w", ticker, on, err)
		}
		total = total.Add(point.Close.Mul(held))
	}
	return total, nil
}

// InvestmentOn sums the cost basis of all lots traded on or before the
// date: the running principal invested. Partial sales do not decrease
// it, because sales leave cost bases untouched.
func (p *Portfolio) InvestmentOn(on date.Date) Money {
	var total Money
	for _, l := range p.lots {
		if !l.TradeDate.After(on) {
			total = total.Add(l.CostBasis)
		}
	}
	return total
}
