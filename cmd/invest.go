package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

// investCmd applies a one-time fixed-amount investment across a
// percentage allocation.
type investCmd struct {
	portfolio  string
	amount     float64
	allocation string
	date       string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "invest a fixed amount across an allocation" }
func (*investCmd) Usage() string {
	return `sfc invest -p <portfolio> -a <amount> -w "[GOOG:50; VZ:30; AAAU:20]" [-d <date>]

  Splits the amount across the allocation by raw percentage and records
  one lot per entry at that day's closing price. Percentages are not
  normalized and need not sum to 100.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.Float64Var(&c.amount, "a", 0, "amount to invest")
	f.StringVar(&c.allocation, "w", "", "percentage allocation, e.g. \"[GOOG:50; VZ:50]\"")
	f.StringVar(&c.date, "d", date.Today().String(), "investment date")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
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

	amount := stockfolio.M(c.amount)
	if err := stockfolio.InvestFixedAmount(p, amount, alloc, on, openResolver(cfg)); err != nil {
		return fail(err)
	}
	if err := store.SavePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Invested %s across %s on %s.\n", amount, alloc, on)
	return subcommands.ExitSuccess
}
