package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/leagues/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
	json   bool
	title  string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write an interactive chart of every league" }
func (*chartCmd) Usage() string {
	return `poecmp chart [-o <file>] [-json] [-title <title>]

  Writes an html page plotting the rate of a currency in every league against
  the days since the league started. A menu selects the currency, the legend
  toggles leagues.

  With -json, writes the plotly figure instead of the page.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "chart.html", "output file, - for the standard output")
	f.BoolVar(&c.json, "json", false, "write the plotly figure as json")
	f.StringVar(&c.title, "title", "League currencies", "page title")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := BuildComparison(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fig := renderer.NewFigure(res)
	var data []byte
	if c.json {
		data, err = fig.JSON()
	} else {
		var page string
		page, err = renderer.FigureHTML(fig, c.title)
		data = []byte(page)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		os.Stdout.Write(data)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Chart of %d leagues written to %s\n", len(fig.Data), c.output)
	return subcommands.ExitSuccess
}
