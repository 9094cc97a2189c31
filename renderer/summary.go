package renderer

import (
	"slices"
	"strings"

	"github.com/etnz/leagues"
	"github.com/etnz/leagues/date"
)

// Summary describes what a build is made of.
type Summary struct {
	Title     string
	Leagues   []SummaryLeague
	Latest    string   // league the canonical currencies come from
	Canonical []string // canonical currencies
	Surplus   []string // currencies of older leagues unknown to the latest one
	Empty     []string // dumps without any rate
}

// SummaryLeague is one dump of the build.
type SummaryLeague struct {
	Name string
	Date date.Date
	Days int // days from the first to the last known rate, both included
	Path string
}

// NewSummary summarizes a build.
func NewSummary(r *leagues.BuildResult) *Summary {
	s := &Summary{
		Title:     "League currencies",
		Canonical: r.Canonical,
		Empty:     r.Empty,
	}
	if latest, err := r.Catalog.Latest(); err == nil {
		s.Latest = latest.League
	}
	for _, f := range r.Catalog {
		s.Leagues = append(s.Leagues, SummaryLeague{
			Name: f.League,
			Date: f.Date,
			Days: lastDay(r.Combined, f.League),
			Path: f.Path,
		})
	}
	for _, k := range r.Surplus() {
		s.Surplus = append(s.Surplus, k.Currency)
	}
	slices.Sort(s.Surplus)
	s.Surplus = slices.Compact(s.Surplus)
	return s
}

// lastDay returns the number of days of a league up to its last known rate.
func lastDay(c *leagues.Combined, league string) int {
	var keys []leagues.Key
	for _, k := range c.Columns() {
		if k.League == league {
			keys = append(keys, k)
		}
	}
	for i := c.Len() - 1; i >= 0; i-- {
		for _, k := range keys {
			if c.Cell(i, k).Valid {
				return date.Days(c.Elapsed(i)) + 1
			}
		}
	}
	return 0
}

// RenderSummary renders a Summary to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_catalog":    "summary_catalog.md",
		"summary_currencies": "summary_currencies.md",
		"summary_empty":      "summary_empty.md",
	}
	return strings.TrimSpace(renderTemplate("summary", "summary.md", partials, s)) + "\n"
}
