package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/date"
	"github.com/avigne/stockfolio/renderer"
)

// trendCmd reports gain/loss and a moving average for a ticker.
type trendCmd struct {
	ticker string
	from   string
	to     string
	window int
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "report gain/loss and moving average for a ticker" }
func (*trendCmd) Usage() string {
	return `sfc trend -t <ticker> -from <date> -to <date> [-x <days>]

  Reports the close-to-close change over the period and the x-day
  moving average at its end.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker symbol")
	f.StringVar(&c.from, "from", "", "period start")
	f.StringVar(&c.to, "to", date.Today().String(), "period end")
	f.IntVar(&c.window, "x", 30, "moving average window in days")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := date.Parse(c.to)
	if err != nil {
		return fail(err)
	}
	cfg, _, err := openStore()
	if err != nil {
		return fail(err)
	}
	resolver := openResolver(cfg)

	series, err := resolver.Resolve(c.ticker)
	if err != nil {
		return fail(err)
	}
	start, ok := series.AsOf(from)
	if !ok {
		return fail(fmt.Errorf("no price for %q on or before %s: %w", c.ticker, from, stockfolio.ErrNotFound))
	}
	end, ok := series.AsOf(to)
	if !ok {
		return fail(fmt.Errorf("no price for %q on or before %s: %w", c.ticker, to, stockfolio.ErrNotFound))
	}
	avg, err := stockfolio.MovingAverage(series, to, c.window)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s from %s to %s\n", c.ticker, start.Date, end.Date)
	fmt.Printf("Day change on %s:  %s\n", end.Date, stockfolio.DayChange(end))
	fmt.Printf("Period change:     %s\n", stockfolio.PeriodChange(start, end))
	fmt.Printf("%d-day average:    %s\n", c.window, avg)
	return subcommands.ExitSuccess
}

// crossoverCmd reports buy/sell crossover signals in a range.
type crossoverCmd struct {
	ticker string
	from   string
	to     string
	x      int
	y      int
}

func (*crossoverCmd) Name() string     { return "crossover" }
func (*crossoverCmd) Synopsis() string { return "find moving average crossover signals" }
func (*crossoverCmd) Usage() string {
	return `sfc crossover -t <ticker> -from <date> -to <date> [-x <days> -y <days>]

  Without -x/-y, finds the dates where the closing price crossed the
  30-day moving average. With both, compares the x-day average against
  the y-day average instead.
`
}

func (c *crossoverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker symbol")
	f.StringVar(&c.from, "from", "", "range start")
	f.StringVar(&c.to, "to", date.Today().String(), "range end")
	f.IntVar(&c.x, "x", 0, "fast moving average window")
	f.IntVar(&c.y, "y", 0, "slow moving average window")
}

func (c *crossoverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := date.Parse(c.to)
	if err != nil {
		return fail(err)
	}
	cfg, _, err := openStore()
	if err != nil {
		return fail(err)
	}

	series, err := openResolver(cfg).Resolve(c.ticker)
	if err != nil {
		return fail(err)
	}

	r := date.NewRange(from, to)
	var report *stockfolio.CrossoverReport
	if c.x == 0 && c.y == 0 {
		report, err = stockfolio.Crossovers(series, r)
	} else {
		report, err = stockfolio.MovingCrossovers(series, r, c.x, c.y)
	}
	if err != nil {
		return fail(err)
	}
	render(renderer.CrossoverMarkdown(c.ticker, r, report))
	return subcommands.ExitSuccess
}

// perfCmd charts portfolio value over a range.
type perfCmd struct {
	portfolio string
	from      string
	to        string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "chart portfolio value over a date range" }
func (*perfCmd) Usage() string {
	return `sfc perf -p <portfolio> -from <date> -to <date>

  Samples the portfolio value over the range, daily for short ranges
  and at coarser intervals for long ones, and draws a scaled bar chart.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "portfolio name")
	f.StringVar(&c.from, "from", "", "range start")
	f.StringVar(&c.to, "to", date.Today().String(), "range end")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, err := date.Parse(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := date.Parse(c.to)
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

	resolver := openResolver(cfg)
	r := date.NewRange(from, to)
	samples, err := stockfolio.Performance(r, func(on date.Date) (stockfolio.Money, error) {
		return p.ValueOn(on, resolver)
	})
	if err != nil {
		return fail(err)
	}
	render(renderer.PerformanceMarkdown(p.Name(), r, samples))
	return subcommands.ExitSuccess
}
