package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
)

// buyCmd records a manual purchase against the historical bar of the
// trade date.
type buyCmd struct {
	portfolio string
	ticker    string
	quantity  int
	date      string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of shares" }
func (*buyCmd) Usage() string {
	return `sfc buy -p <portfolio> -t <ticker> -q <quantity> [-d <date>]

  Buys a whole number of shares at the closing price of the trade date.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.StringVar(&c.ticker, "t", "", "ticker symbol")
	f.IntVar(&c.quantity, "q", 0, "number of shares")
	f.StringVar(&c.date, "d", date.Today().String(), "trade date")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
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

	point, err := openResolver(cfg).PointOn(c.ticker, on)
	if err != nil {
		return fail(err)
	}
	if err := p.Buy(c.ticker, stockfolio.Q(c.quantity), point); err != nil {
		return fail(err)
	}
	if err := store.SavePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Bought %d %s at %s on %s.\n", c.quantity, c.ticker, point.Close, on)
	return subcommands.ExitSuccess
}

// sellCmd reduces holdings as of a date.
type sellCmd struct {
	portfolio string
	ticker    string
	quantity  int
	date      string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of shares" }
func (*sellCmd) Usage() string {
	return `sfc sell -p <portfolio> -t <ticker> -q <quantity> [-d <date>]

  Sells shares held as of the given date. The sale must be covered by
  lots dated on or before that date.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.StringVar(&c.ticker, "t", "", "ticker symbol")
	f.IntVar(&c.quantity, "q", 0, "number of shares")
	f.StringVar(&c.date, "d", date.Today().String(), "sale date")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		return fail(err)
	}
	_, store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := store.FindPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}

	if err := p.Sell(c.ticker, stockfolio.Q(c.quantity), on); err != nil {
		return fail(err)
	}
	if err := store.SavePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Sold %d %s as of %s.\n", c.quantity, c.ticker, on)
	return subcommands.ExitSuccess
}
