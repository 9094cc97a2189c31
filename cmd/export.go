package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/leagues"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the combined table for spreadsheets" }
func (*exportCmd) Usage() string {
	return `poecmp export [-format csv|xlsx] [-o <file>]

  Exports the table of every currency rate in every league, one line per day
  since the start of the leagues, one column per currency and league. Days
  without a rate are left empty.

  csv is written to the standard output by default, xlsx requires -o.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "export format (csv, xlsx)")
	f.StringVar(&c.output, "o", "-", "output file, - for the standard output")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(io.Writer, *leagues.BuildResult) error
	switch c.format {
	case "csv":
		export = leagues.ExportCSV
	case "xlsx":
		if c.output == "-" {
			fmt.Fprintln(os.Stderr, "xlsx export requires -o <file>")
			return subcommands.ExitUsageError
		}
		export = leagues.ExportXLSX
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q, want csv or xlsx\n", c.format)
		return subcommands.ExitUsageError
	}

	res, err := BuildComparison(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		if err := export(os.Stdout, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := export(out, res); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
