package stockfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/avigne/stockfolio/date"
)

// The persisted formats are plain CSV, one row per lot or per strategy
// record, fields in fixed order:
//
//	ticker,tradeDate,open,close,volume,quantity,costBasis[,tag]
//	startDate,endDate,lastProcessedDate,periodDays,amount,"[t1:p1; t2:p2]"
//
// The allocation cell is quoted by the csv writer when needed and is
// parsed by ParseAllocation, never split by hand.

// EncodePortfolio writes the portfolio's lot table to w. The optional
// tag column is emitted only on rows that carry one.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	for _, l := range p.Composition() {
		row := []string{
			l.Ticker,
			l.TradeDate.String(),
			l.Open.Decimal().String(),
			l.Close.Decimal().String(),
			strconv.FormatInt(l.Volume, 10),
			l.Quantity.Decimal().String(),
			l.CostBasis.Decimal().String(),
		}
		if l.Tag != "" {
			row = append(row, l.Tag)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing lot for %q: %w", l.Ticker, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodePortfolio reads a lot table from r into a new portfolio of the
// given name and kind. Fixed portfolios come back sealed.
func DecodePortfolio(r io.Reader, name string, kind Kind) (*Portfolio, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tag column is optional

	p := NewPortfolio(name, kind)
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("portfolio %q line %d: %w", name, line, err)
		}
		lot, err := decodeLot(row)
		if err != nil {
			return nil, fmt.Errorf("portfolio %q line %d: %w", name, line, err)
		}
		p.record(lot)
	}
	p.Seal()
	return p, nil
}

func decodeLot(row []string) (Lot, error) {
	if len(row) != 7 && len(row) != 8 {
		return Lot{}, fmt.Errorf("want 7 or 8 fields, got %d: %w", len(row), ErrInvalidArgument)
	}
	tradeDate, err := date.Parse(row[1])
	if err != nil {
		return Lot{}, err
	}
	open, err := ParseMoney(row[2])
	if err != nil {
		return Lot{}, fmt.Errorf("invalid open %q: %w", row[2], err)
	}
	close, err := ParseMoney(row[3])
	if err != nil {
		return Lot{}, fmt.Errorf("invalid close %q: %w", row[3], err)
	}
	volume, err := strconv.ParseInt(row[4], 10, 64)
	if err != nil {
		return Lot{}, fmt.Errorf("invalid volume %q: %w", row[4], err)
	}
	quantity, err := ParseQuantity(row[5])
	if err != nil {
		return Lot{}, fmt.Errorf("invalid quantity %q: %w", row[5], err)
	}
	cost, err := ParseMoney(row[6])
	if err != nil {
		return Lot{}, fmt.Errorf("invalid cost basis %q: %w", row[6], err)
	}
	lot := Lot{
		Ticker:    row[0],
		TradeDate: tradeDate,
		Open:      open,
		Close:     close,
		Volume:    volume,
		Quantity:  quantity,
		CostBasis: cost,
	}
	if len(row) == 8 {
		lot.Tag = row[7]
	}
	return lot, nil
}

// EncodeStrategies writes strategy records to w, one row each.
func EncodeStrategies(w io.Writer, records []*StrategyRecord) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		last := "" // a record not yet started has no processed date
		if !rec.LastProcessed.IsZero() {
			last = rec.LastProcessed.String()
		}
		row := []string{
			rec.StartDate.String(),
			rec.EndDate.String(),
			last,
			strconv.Itoa(rec.PeriodDays),
			rec.Amount.Decimal().String(),
			rec.Allocation.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing strategy starting %s: %w", rec.StartDate, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeStrategies reads strategy records from r.
func DecodeStrategies(r io.Reader) ([]*StrategyRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6

	var records []*StrategyRecord
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("strategy line %d: %w", line, err)
		}
		rec, err := decodeStrategy(row)
		if err != nil {
			return nil, fmt.Errorf("strategy line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeStrategy(row []string) (*StrategyRecord, error) {
	start, err := date.Parse(row[0])
	if err != nil {
		return nil, err
	}
	end, err := date.Parse(row[1])
	if err != nil {
		return nil, err
	}
	var last date.Date
	if row[2] != "" {
		if last, err = date.Parse(row[2]); err != nil {
			return nil, err
		}
	}
	period, err := strconv.Atoi(row[3])
	if err != nil {
		return nil, fmt.Errorf("invalid period %q: %w", row[3], err)
	}
	amount, err := ParseMoney(row[4])
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", row[4], err)
	}
	alloc, err := ParseAllocation(row[5])
	if err != nil {
		return nil, err
	}
	rec, err := NewStrategyRecord(start, end, period, amount, alloc)
	if err != nil {
		return nil, err
	}
	rec.LastProcessed = last
	return rec, nil
}
