// Package cmd implements the CLI application to compare league currencies.
package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/leagues"
	"github.com/etnz/leagues/config"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&catalogCmd{}, "dumps")
	c.Register(&currenciesCmd{}, "dumps")

	c.Register(&showCmd{}, "comparison")
	c.Register(&chartCmd{}, "comparison")
	c.Register(&exportCmd{}, "comparison")
	c.Register(&serveCmd{}, "comparison")

	c.Register(&topicCmd{}, "help")
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", "", "Path to a YAML configuration file")
	root        = flag.String("root", "", "Folder containing the unpacked dumps (default \".\")")
	extension   = flag.String("ext", "", "Extension of the dump files (default \".csv\")")
	workers     = flag.Int("workers", 0, "Number of dumps read concurrently (default 1)")
	failOnEmpty = flag.Bool("fail-on-empty", false, "Fail if a dump has no rate in Chaos Orb instead of ignoring it")
	verbose     = flag.Bool("v", false, "Verbose logging")
)

// LoadConfig returns the configuration from the config file and the environment, overridden by the global flags.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *root != "" {
		cfg.Root = *root
	}
	if *extension != "" {
		cfg.Extension = *extension
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	cfg.FailOnEmpty = cfg.FailOnEmpty || *failOnEmpty
	cfg.Verbose = cfg.Verbose || *verbose
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewLogger returns a development logger in verbose mode, a logger of warnings and errors otherwise.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zc.Encoding = "console"
	zc.DisableStacktrace = true
	return zc.Build()
}

// DecodeCatalog discovers the dumps in the configured root.
func DecodeCatalog() (leagues.Catalog, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return leagues.Discover(cfg.Root, cfg.Extension)
}

// BuildComparison discovers the dumps and builds the comparison of their leagues.
//
// A comparison without any rate is an error.
func BuildComparison(ctx context.Context) (*leagues.BuildResult, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return buildComparison(ctx, cfg)
}

func buildComparison(ctx context.Context, cfg *config.Config) (*leagues.BuildResult, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create logger: %w", err)
	}
	defer log.Sync()

	c, err := leagues.Discover(cfg.Root, cfg.Extension)
	if err != nil {
		return nil, err
	}
	b := leagues.Builder{Logger: log, Workers: cfg.Workers, FailOnEmpty: cfg.FailOnEmpty}
	res, err := b.Build(ctx, c)
	if err != nil {
		return nil, err
	}
	if res.Status() == leagues.StatusEmpty {
		return nil, fmt.Errorf("none of the %d dumps in %q has a rate in %s", len(c), cfg.Root, leagues.BaseCurrency)
	}
	return res, nil
}

// printMarkdown prints markdown formatted for the terminal, or as is if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
