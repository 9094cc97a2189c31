package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type catalogCmd struct {
	json bool
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list the dumps, most recent first" }
func (*catalogCmd) Usage() string {
	return `poecmp catalog [-json]

  Lists the currency dumps found under the root folder, one per line with
  the league, the date and the path, most recent first.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the catalog as a json array")
}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := DecodeCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cat); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	for _, d := range cat {
		fmt.Printf("%s\t%s\t%s\n", d.League, d.Date, d.Path)
	}
	return subcommands.ExitSuccess
}
