package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/leagues"
	"github.com/etnz/leagues/renderer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the chart and the reports over http" }
func (*serveCmd) Usage() string {
	return `poecmp serve [-addr <host:port>]

  Builds the comparison once and serves it:
    /                      the interactive chart
    /figure.json           the plotly figure
    /currencies            the canonical currencies, as json
    /currencies/{currency} the table of a currency, as html
    /summary               the summary, as html
    /export.csv            the combined table
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "listen address (defaults to the configured one)")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	addr := cfg.Addr
	if c.addr != "" {
		addr = c.addr
	}

	res, err := buildComparison(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: newRouter(res)}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "Serving %d leagues on http://%s\n", len(res.Leagues), addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// newRouter returns the http handler serving a comparison.
func newRouter(res *leagues.BuildResult) http.Handler {
	fig := renderer.NewFigure(res)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		page, err := renderer.FigureHTML(fig, "League currencies")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		render.HTML(w, req, page)
	})
	r.Get("/figure.json", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, fig)
	})
	r.Get("/currencies", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, res.Canonical)
	})
	r.Get("/currencies/{currency}", func(w http.ResponseWriter, req *http.Request) {
		currency := chi.URLParam(req, "currency")
		if !hasCurrency(res, currency) {
			http.NotFound(w, req)
			return
		}
		serveMarkdown(w, req, renderer.Markdown(res, currency))
	})
	r.Get("/summary", func(w http.ResponseWriter, req *http.Request) {
		serveMarkdown(w, req, renderer.RenderSummary(renderer.NewSummary(res)))
	})
	r.Get("/export.csv", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if err := leagues.ExportCSV(w, res); err != nil {
			io.WriteString(w, err.Error())
		}
	})
	return r
}

func hasCurrency(res *leagues.BuildResult, currency string) bool {
	for _, k := range res.Combined.Columns() {
		if k.Currency == currency {
			return true
		}
	}
	return false
}

func serveMarkdown(w http.ResponseWriter, req *http.Request, md string) {
	html, err := renderer.MarkdownToHTML(md)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	render.HTML(w, req, html)
}
