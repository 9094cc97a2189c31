package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/leagues/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	currency string
	summary  bool
	raw      bool
	html     bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a currency rate in every league" }
func (*showCmd) Usage() string {
	return `poecmp show [-c <currency>] [-summary] [-raw|-html]

  Displays the rate of a currency in Chaos Orb, one line per day since the
  start of each league, one column per league. Days without a rate show zero.
  The currency defaults to the first currency of the latest league.

  With -summary, displays the leagues and currencies of the comparison instead.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "", "currency to display")
	f.BoolVar(&c.summary, "summary", false, "display a summary of the comparison")
	f.BoolVar(&c.raw, "raw", false, "print plain markdown")
	f.BoolVar(&c.html, "html", false, "print html")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.raw && c.html {
		fmt.Fprintln(os.Stderr, "-raw and -html are mutually exclusive")
		return subcommands.ExitUsageError
	}

	res, err := BuildComparison(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var md string
	if c.summary {
		md = renderer.RenderSummary(renderer.NewSummary(res))
	} else {
		currency := c.currency
		if currency == "" {
			currency = res.Currencies()[0]
		}
		if !slices.Contains(res.Canonical, currency) {
			fmt.Fprintf(os.Stderr, "Warning: %q is not a currency of the latest league\n", currency)
		}
		md = renderer.Markdown(res, currency)
	}

	switch {
	case c.raw:
		fmt.Print(md)
	case c.html:
		html, err := renderer.MarkdownToHTML(md)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(html)
	default:
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
