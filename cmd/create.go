package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/avigne/stockfolio"
)

type createCmd struct {
	name string
	kind string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new, empty portfolio" }
func (*createCmd) Usage() string {
	return `sfc create -n <name> [-k flexible|fixed]

  Creates an empty portfolio and saves it. A flexible portfolio accepts
  buys and sells forever; a fixed one is sealed after its first save.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "portfolio name")
	f.StringVar(&c.kind, "k", "flexible", "portfolio kind: flexible or fixed")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("a portfolio name is required"))
	}
	kind, err := stockfolio.ParseKind(c.kind)
	if err != nil {
		return fail(err)
	}

	_, store, err := openStore()
	if err != nil {
		return fail(err)
	}
	p := stockfolio.NewPortfolio(c.name, kind)
	if err := store.SavePortfolio(p); err != nil {
		return fail(err)
	}
	fmt.Printf("Created %s portfolio %q.\n", kind, c.name)
	return subcommands.ExitSuccess
}
