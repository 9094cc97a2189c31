package leagues

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Status tells whether a build produced any data.
type Status int

const (
	StatusData  Status = iota // at least one league contributed rates
	StatusEmpty               // no league contributed any rate
)

func (s Status) String() string {
	switch s {
	case StatusData:
		return "data"
	case StatusEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// BuildResult is everything a renderer needs to compare leagues.
type BuildResult struct {
	Catalog   Catalog   // dump files, most recent first
	Canonical []string  // sorted currencies of the most recent league
	Leagues   []string  // leagues in catalog order
	Combined  *Combined // all leagues joined on elapsed time
	Empty     []string  // dumps without any base currency rate
}

// Status returns StatusEmpty if the combined table has no column.
func (r *BuildResult) Status() Status {
	if r.Combined == nil || len(r.Combined.t.columns) == 0 {
		return StatusEmpty
	}
	return StatusData
}

// Surplus returns the columns of currencies that are not canonical.
func (r *BuildResult) Surplus() []Key {
	var keys []Key
	for _, k := range r.Combined.t.columns {
		if _, found := slices.BinarySearch(r.Canonical, k.Currency); !found {
			keys = append(keys, k)
		}
	}
	return keys
}

// Currencies returns the currencies to compare: the canonical ones, or the
// sorted currencies of the combined table when the latest league rates none.
func (r *BuildResult) Currencies() []string {
	if len(r.Canonical) > 0 {
		return r.Canonical
	}
	return r.Combined.t.Currencies()
}

// Builder builds the combined table of a catalog.
//
// Its zero value is ready to use: no logging, one dump at a time, and empty
// dumps are reported in BuildResult.Empty.
type Builder struct {
	Logger      *zap.Logger
	Workers     int  // number of dumps processed concurrently, defaults to 1
	FailOnEmpty bool // return ErrEmptyExtraction instead of skipping empty dumps
}

// Build runs the default Builder on c.
func Build(ctx context.Context, c Catalog) (*BuildResult, error) {
	return new(Builder).Build(ctx, c)
}

func (b *Builder) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// Build extracts, groups and aligns every dump of c, then joins them in catalog order.
//
// The canonical currencies are the ones of the single most recent dump. Any
// error aborts the build: there is no partial result.
func (b *Builder) Build(ctx context.Context, c Catalog) (*BuildResult, error) {
	log := b.logger()
	if len(c) == 0 {
		return nil, ErrNoDumps
	}

	latest, err := c.Latest()
	if err != nil {
		return nil, err
	}
	rows, err := extractFile(latest.Path, log)
	if err != nil {
		return nil, err
	}
	canonical := currencies(rows)
	log.Info("canonical currencies",
		zap.String("league", latest.League),
		zap.Stringer("date", latest.Date),
		zap.Int("currencies", len(canonical)))

	aligned := make([]*Table, len(c))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.Workers, 1))
	for i, f := range c {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows, err := extractFile(f.Path, log)
			if err != nil {
				return err
			}
			if n := foreignRows(rows, f.League); n > 0 {
				log.Warn("dump rows name another league than its file, they are not plotted with it",
					zap.String("league", f.League),
					zap.String("path", f.Path),
					zap.Int("rows", n))
			}
			aligned[i] = Align(Group(rows), canonical)
			log.Debug("league extracted",
				zap.String("league", f.League),
				zap.String("path", f.Path),
				zap.Int("rows", len(rows)),
				zap.Int("days", aligned[i].Len()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var empty []string
	for i, f := range c {
		if len(aligned[i].columns) > 0 {
			continue
		}
		if b.FailOnEmpty {
			return nil, fmt.Errorf("%w: %q", ErrEmptyExtraction, f.Path)
		}
		log.Warn("dump has no base currency rate, league ignored",
			zap.String("league", f.League),
			zap.String("path", f.Path),
			zap.String("base", BaseCurrency))
		empty = append(empty, f.Path)
	}

	joined, err := Join(aligned...)
	if err != nil {
		return nil, err
	}
	return &BuildResult{
		Catalog:   slices.Clone(c),
		Canonical: canonical,
		Leagues:   c.Leagues(),
		Combined:  &Combined{t: joined},
		Empty:     empty,
	}, nil
}

// foreignRows counts the rows whose league is not league.
func foreignRows(rows []Row, league string) int {
	n := 0
	for _, r := range rows {
		if r.League != league {
			n++
		}
	}
	return n
}
