// Package cmd implements the CLI application to manage portfolios and
// run the analytics.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/avigne/stockfolio"
	"github.com/avigne/stockfolio/quote"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "portfolios")
	c.Register(&buyCmd{}, "portfolios")
	c.Register(&sellCmd{}, "portfolios")
	c.Register(&holdingCmd{}, "portfolios")
	c.Register(&valueCmd{}, "portfolios")

	c.Register(&investCmd{}, "strategies")
	c.Register(&dcaCmd{}, "strategies")
	c.Register(&advanceCmd{}, "strategies")

	c.Register(&trendCmd{}, "analytics")
	c.Register(&crossoverCmd{}, "analytics")
	c.Register(&perfCmd{}, "analytics")
}

// as a CLI application the lifecycle is short lived, so globals are fine.

var configFile = flag.String("config", "stockfolio.yaml", "Path to the configuration file")

// openStore loads the configuration and opens the portfolio store.
func openStore() (*stockfolio.Config, *stockfolio.Store, error) {
	cfg, err := stockfolio.LoadConfig(*configFile)
	if err != nil {
		return nil, nil, err
	}
	store := stockfolio.NewStore(cfg.Storage.FixedDir, cfg.Storage.FlexibleDir, cfg.Storage.StrategyDir)
	return cfg, store, nil
}

// openResolver opens the price cache resolver over the configured
// provider.
func openResolver(cfg *stockfolio.Config) *quote.Resolver {
	client := quote.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey)
	return quote.NewResolver(cfg.Storage.CacheDir, client)
}

// render prints a markdown report to stdout through glamour. When the
// terminal renderer cannot be set up the raw markdown is printed
// instead.
func render(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
