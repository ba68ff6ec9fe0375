package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

// dcaCmd creates a recurring dollar-cost-averaging plan and applies
// its first period.
type dcaCmd struct {
	portfolio  string
	amount     float64
	allocation string
	start      string
	end        string
	period     int
}

func (*dcaCmd) Name() string     { return "dca" }
func (*dcaCmd) Synopsis() string { return "create a recurring dollar-cost-averaging plan" }
func (*dcaCmd) Usage() string {
	return `sfc dca -p <portfolio> -a <amount> -w "[GOOG:50; VZ:50]" -start <date> -end <date> -days <period>

  Creates a recurring plan investing the amount every period of days,
  applies the first investment at the start date, and persists the plan
  alongside the portfolio.
`
}

func (c *dcaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.Float64Var(&c.amount, "a", 0, "amount per period")
	f.StringVar(&c.allocation, "w", "", "percentage allocation")
	f.StringVar(&c.start, "start", date.Today().String(), "first investment date")
	f.StringVar(&c.end, "end", "", "last date of the plan")
	f.IntVar(&c.period, "days", 30, "days between investments")
}

func (c *dcaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.start)
	if err != nil {
		return fail(err)
	}
	end, err := date.Parse(c.end)
	if err != nil {
		return fail(err)
	}
	alloc, err := stockfolio.ParseAllocation(c.allocation)
	if err != nil {
		return fail(err)
	}
	cfg, store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := store.FindPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}

	rec, err := stockfolio.NewStrategyRecord(start, end, c.period, stockfolio.M(c.amount), alloc)
	if err != nil {
		return fail(err)
	}
	if err := rec.Start(p, openResolver(cfg)); err != nil {
		return fail(err)
	}

	records, err := store.LoadStrategies(c.portfolio)
	if err != nil && !errors.Is(err, stockfolio.ErrNotFound) {
		return fail(err)
	}
	records = append(records, rec)

	if err := store.SavePortfolio(p); err != nil {
		return fail(err)
	}
	if err := store.SaveStrategies(c.portfolio, records); err != nil {
		return fail(err)
	}
	fmt.Printf("Started plan: %s every %d days into %s until %s.\n",
		stockfolio.M(c.amount), c.period, alloc, end)
	return subcommands.ExitSuccess
}

// advanceCmd replays the periods every plan of a portfolio missed
// since it was last processed.
type advanceCmd struct {
	portfolio string
}

func (*advanceCmd) Name() string     { return "advance" }
func (*advanceCmd) Synopsis() string { return "catch up missed periods of recurring plans" }
func (*advanceCmd) Usage() string {
	return `sfc advance -p <portfolio>

  Replays in one batch every investment period missed between each
  plan's last processed date and today.
`
}

func (c *advanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
}

func (c *advanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := store.FindPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	records, err := store.LoadStrategies(c.portfolio)
	if err != nil {
		return fail(err)
	}

	resolver := openResolver(cfg)
	today := date.Today()
	total := 0
	for _, rec := range records {
		applied, err := rec.Advance(p, today, resolver)
		total += applied
		if err != nil {
			return fail(err)
		}
	}

	if err := store.SavePortfolio(p); err != nil {
		return fail(err)
	}
	if err := store.SaveStrategies(c.portfolio, records); err != nil {
		return fail(err)
	}
	fmt.Printf("Applied %d missed period(s).\n", total)
	return subcommands.ExitSuccess
}
