package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type currenciesCmd struct {
	surplus bool
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the currencies of the latest league" }
func (*currenciesCmd) Usage() string {
	return `poecmp currencies [-surplus]

  Lists the currencies rated by the most recent league, the ones every league
  is compared on. With -surplus, lists instead the currencies of older leagues
  that the most recent league does not rate, with their league.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.surplus, "surplus", false, "list the currencies unknown to the latest league")
}

func (c *currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := BuildComparison(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.surplus {
		for _, k := range res.Surplus() {
			fmt.Printf("%s\t%s\n", k.Currency, k.League)
		}
		return subcommands.ExitSuccess
	}
	for _, currency := range res.Canonical {
		fmt.Println(currency)
	}
	return subcommands.ExitSuccess
}
