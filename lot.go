package stockfolio

import "github.com/avigne/stockfolio/date"

// Lot records one buy event of a security within a portfolio. Later
// buys of the same ticker on the same trade date are merged into the
// existing lot: quantities and cost bases sum, the price fields keep
// the first buy's values.
type Lot struct {
	Ticker    string
	TradeDate date.Date
	Open      Money
	Close     Money
	Volume    int64
	Quantity  Quantity
	CostBasis Money
	Tag       string // optional free-form label, persisted when present
}

// Point returns the price bar the lot was recorded against.
func (l Lot) Point() PricePoint {
	return PricePoint{Date: l.TradeDate, Open: l.Open, Close: l.Close, Volume: l.Volume}
}

// lots is the append-only lot table of a portfolio, in insertion order.
type lots []Lot

// merge adds a buy to the table. A lot with the same ticker and trade
// date absorbs the quantity and cost; otherwise the lot is appended.
func (ls lots) merge(l Lot) lots {
	for i := range ls {
		if ls[i].Ticker == l.Ticker && ls[i].TradeDate == l.TradeDate {
			ls[i].Quantity = ls[i].Quantity.Add(l.Quantity)
			ls[i].CostBasis = ls[i].CostBasis.Add(l.CostBasis)
			return ls
		}
	}
	return append(ls, l)
}

// held sums the quantities of the ticker's lots dated on or before the date.
func (ls lots) held(ticker string, on date.Date) Quantity {
	var total Quantity
	for _, l := range ls {
		if l.Ticker == ticker && !l.TradeDate.After(on) {
			total = total.Add(l.Quantity)
		}
	}
	return total
}

// reduce decrements lot quantities for a sale, walking the table in
// insertion order (oldest-inserted lot first) until the quantity is
// exhausted. Cost bases are left untouched: sales never prorate cost,
// and the running invested principal depends on that.
func (ls lots) reduce(ticker string, on date.Date, quantity Quantity) {
	remaining := quantity
	for i := range ls {
		if remaining.IsZero() {
			return
		}
		l := &ls[i]
		if l.Ticker != ticker || l.TradeDate.After(on) {
			continue
		}
		if l.Quantity.GreaterThan(remaining) {
			l.Quantity = l.Quantity.Sub(remaining)
			return
		}
		remaining = remaining.Sub(l.Quantity)
		l.Quantity = Q(0)
	}
}
