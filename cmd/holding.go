package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/avigne/stockfolio/date"
	"github.com/avigne/stockfolio/renderer"
)

// holdingCmd displays the literal lot table of a portfolio.
type holdingCmd struct {
	portfolio string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the lot table of a portfolio" }
func (*holdingCmd) Usage() string {
	return `sfc holding -p <portfolio>

  Displays every lot of the portfolio: ticker, trade date, prices,
  quantity and cost basis.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p, err := store.FindPortfolio(c.portfolio)
	if err != nil {
		return fail(err)
	}
	render(renderer.HoldingMarkdown(p))
	return subcommands.ExitSuccess
}

// valueCmd displays the market value and invested principal on a date.
type valueCmd struct {
	portfolio string
	date      string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "display portfolio value on a date" }
func (*valueCmd) Usage() string {
	return `sfc value -p <portfolio> [-d <date>]

  Re-prices every held quantity at the date (or the nearest prior
  trading day) and sums, next to the running invested principal.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.StringVar(&c.date, "d", date.Today().String(), "valuation date")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	value, err := p.ValueOn(on, openResolver(cfg))
	if err != nil {
		return fail(err)
	}
	render(renderer.ValueMarkdown(p, on, value, p.InvestmentOn(on)))
	return subcommands.ExitSuccess
}
