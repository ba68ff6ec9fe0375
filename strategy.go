package stockfolio

import (
	"errors"
	"fmt"

	"github.com/avigne/stockfolio/date"
)

// strategyTag labels lots created by the simulator in the persisted
// lot table.
const strategyTag = "dca"

// InvestFixedAmount splits amount across the allocation entries
// proportionally to each raw percentage and records one lot per entry,
// priced at the entry's bar on the given date. Percentages are applied
// without normalization, and a negative amount records negative lots.
//
// Prices must exist on the exact date; a non-trading date surfaces the
// pricer's ErrNotFound. Recurring plans handle the look-ahead retry.
func InvestFixedAmount(p *Portfolio, amount Money, alloc Allocation, on date.Date, prices Pricer) error {
	if len(alloc) == 0 {
		return fmt.Errorf("invest on %s: empty allocation: %w", on, ErrInvalidArgument)
	}

	// Resolve every bar before mutating, so a missing price leaves the
	// portfolio untouched.
	points := make([]PricePoint, len(alloc))
	for i, w := range alloc {
		point, err := prices.PointOn(w.Ticker, on)
		if err != nil {
			return fmt.Errorf("invest in %q on %s: %w", w.Ticker, on, err)
		}
		points[i] = point
	}

	for i, share := range alloc.Split(amount) {
		point := points[i]
		p.record(Lot{
			Ticker:    alloc[i].Ticker,
			TradeDate: point.Date,
			Open:      point.Open,
			Close:     point.Close,
			Volume:    point.Volume,
			Quantity:  share.DivPrice(point.Close),
			CostBasis: share,
			Tag:       strategyTag,
		})
	}
	return nil
}

// StrategyRecord is a recurring dollar-cost-averaging plan, persisted
// alongside the portfolio it funds.
type StrategyRecord struct {
	StartDate     date.Date
	EndDate       date.Date
	LastProcessed date.Date
	PeriodDays    int
	Amount        Money
	Allocation    Allocation
}

// NewStrategyRecord validates and builds a plan. The first period is
// not applied here; call Start.
func NewStrategyRecord(start, end date.Date, periodDays int, amount Money, alloc Allocation) (*StrategyRecord, error) {
	if periodDays <= 0 {
		return nil, fmt.Errorf("period of %d days: %w", periodDays, ErrInvalidArgument)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("strategy ends %s before it starts %s: %w", end, start, ErrInvalidArgument)
	}
	if len(alloc) == 0 {
		return nil, fmt.Errorf("strategy needs an allocation: %w", ErrInvalidArgument)
	}
	return &StrategyRecord{
		StartDate:  start,
		EndDate:    end,
		PeriodDays: periodDays,
		Amount:     amount,
		Allocation: alloc,
	}, nil
}

// Start applies the first investment of the plan at its start date and
// marks it processed.
func (r *StrategyRecord) Start(p *Portfolio, prices Pricer) error {
	if !r.LastProcessed.IsZero() {
		return fmt.Errorf("strategy already started on %s: %w", r.LastProcessed, ErrInvalidArgument)
	}
	applied, err := r.applyNear(p, r.StartDate, prices)
	if err != nil {
		return err
	}
	r.LastProcessed = applied
	return nil
}

// Advance replays every period missed between the last processed date
// and today, in one batch. Each step moves the plan forward by its
// period and applies the fixed amount at the stepped date, retrying
// the following day once when the stepped date has no price data.
// Steps never pass today or the plan's end date. It returns the number
// of periods applied.
func (r *StrategyRecord) Advance(p *Portfolio, today date.Date, prices Pricer) (int, error) {
	if r.LastProcessed.IsZero() {
		return 0, fmt.Errorf("strategy not started: %w", ErrInvalidArgument)
	}

	applied := 0
	for {
		next := r.LastProcessed.Add(r.PeriodDays)
		if next.After(today) || next.After(r.EndDate) {
			return applied, nil
		}
		if _, err := r.applyNear(p, next, prices); err != nil {
			return applied, err
		}
		// The plan steps by whole periods even when the purchase slipped
		// to the next trading day.
		r.LastProcessed = next
		applied++
	}
}

// applyNear invests the plan amount at the date, or at the following
// day when the date has no price data. One retry only; a second miss
// surfaces ErrNotFound.
func (r *StrategyRecord) applyNear(p *Portfolio, on date.Date, prices Pricer) (date.Date, error) {
	err := InvestFixedAmount(p, r.Amount, r.Allocation, on, prices)
	if err == nil {
		return on, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return date.Date{}, err
	}
	retry := on.Add(1)
	if err := InvestFixedAmount(p, r.Amount, r.Allocation, retry, prices); err != nil {
		return date.Date{}, fmt.Errorf("no price data on %s nor %s: %w", on, retry, err)
	}
	return retry, nil
}
