package leagues

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/leagues/date"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BaseCurrency is the unit of account of every extracted rate.
const BaseCurrency = "Chaos Orb"

// Separator is the field separator of dump files.
const Separator = ';'

// dump header columns.
const (
	colLeague = "League"
	colDate   = "Date"
	colGet    = "Get"
	colPay    = "Pay"
	colValue  = "Value"
)

// Row is the rate of one currency in base currency, at some time since the league started.
type Row struct {
	League   string
	Elapsed  time.Duration
	Currency string
	Value    decimal.Decimal
}

// Extract reads the dump file at path and returns its base currency rates.
//
// See DecodeDump for the format.
func Extract(path string) ([]Row, error) { return extractFile(path, zap.NewNop()) }

func extractFile(path string, log *zap.Logger) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open dump %q: %w", path, err)
	}
	defer f.Close()
	return decodeDump(f, path, log)
}

// DecodeDump reads a ';' separated dump from r. name is for error messages only.
//
// The header must contain the League, Date, Get, Pay and Value columns. Only
// rows paid in BaseCurrency are returned, Get being the currency they rate.
//
// The elapsed time of a row is measured from the date of the first row of the
// dump as it is read, whatever its Pay column. Dumps are expected to be sorted:
// an earlier date further down yields a negative elapsed time.
//
// Rows with an invalid date or value are skipped.
func DecodeDump(r io.Reader, name string) ([]Row, error) { return decodeDump(r, name, zap.NewNop()) }

func decodeDump(r io.Reader, name string, log *zap.Logger) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %q: %w", name, err)
	}
	idx, err := headerIndex(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header in %q: %w", name, err)
	}

	var (
		rows    []Row
		anchor  date.Date
		line    = 1
		dropped = 0
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read %q: %w", name, err)
		}
		line++
		if len(record) < idx.width {
			if anchor.IsZero() {
				return nil, fmt.Errorf("cannot anchor %q: line %d has %d fields want %d", name, line, len(record), idx.width)
			}
			log.Debug("skipping short row", zap.String("dump", name), zap.Int("line", line))
			dropped++
			continue
		}

		on, err := date.Parse(record[idx.date])
		if anchor.IsZero() {
			// the very first row sets the origin of time, even if it is not paid in base currency.
			if err != nil {
				return nil, fmt.Errorf("cannot anchor %q: %w", name, err)
			}
			anchor = on
		}
		if record[idx.pay] != BaseCurrency {
			continue
		}
		if err != nil {
			log.Debug("skipping row with invalid date", zap.String("dump", name), zap.Int("line", line), zap.Error(err))
			dropped++
			continue
		}
		value, err := decimal.NewFromString(strings.TrimSpace(record[idx.value]))
		if err != nil {
			log.Debug("skipping row with invalid value", zap.String("dump", name), zap.Int("line", line), zap.Error(err))
			dropped++
			continue
		}
		rows = append(rows, Row{
			League:   record[idx.league],
			Elapsed:  on.Sub(anchor),
			Currency: record[idx.get],
			Value:    value,
		})
	}
	if dropped > 0 {
		log.Warn("dropped invalid rows", zap.String("dump", name), zap.Int("dropped", dropped))
	}
	return rows, nil
}

// columns holds the position of each required column in a dump record.
type columns struct {
	league, date, get, pay, value int
	width                         int // minimal record length
}

func headerIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, exists := pos[h]; !exists {
			pos[h] = i
		}
	}
	var c columns
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{colLeague, &c.league},
		{colDate, &c.date},
		{colGet, &c.get},
		{colPay, &c.pay},
		{colValue, &c.value},
	} {
		i, ok := pos[req.name]
		if !ok {
			return columns{}, fmt.Errorf("%w %q", ErrMissingColumn, req.name)
		}
		*req.dst = i
		c.width = max(c.width, i+1)
	}
	return c, nil
}
