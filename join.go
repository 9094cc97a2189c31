package leagues

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// iterate returns an iterator over all unique, sorted elapsed times from multiple sorted series.
func iterate(series ...[]time.Duration) iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		indexes := make([]int, len(series))
		for {
			// find the smallest unconsumed value
			var (
				m     time.Duration
				found bool
			)
			for i, index := range indexes {
				if index < len(series[i]) && (!found || series[i][index] < m) {
					m, found = series[i][index], true
				}
			}
			if !found {
				// All series have been consumed, exit.
				return
			}
			// consume it in every series where it is the head
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// Join outer-joins tables on elapsed time.
//
// Rows are the union of all rows, in ascending order. Columns are appended
// table after table. A row missing from a table is Missing in its columns.
// Tables cannot share a column.
func Join(tables ...*Table) (*Table, error) {
	series := make([][]time.Duration, 0, len(tables))
	for _, t := range tables {
		series = append(series, t.rows)
	}
	joined := newTable(slices.Collect(iterate(series...)))

	for _, t := range tables {
		// position of t rows in the joined rows.
		pos := make([]int, len(t.rows))
		for i, elapsed := range t.rows {
			pos[i], _ = slices.BinarySearch(joined.rows, elapsed)
		}
		for _, k := range t.columns {
			if joined.Has(k) {
				return nil, fmt.Errorf("cannot join %v twice: %w", k, ErrDuplicateColumn)
			}
			col := joined.addColumn(k)
			for i, c := range t.cells[k] {
				col[pos[i]] = c
			}
		}
	}
	return joined, nil
}

// Combined is the join of every league, with rows numbered from 0.
type Combined struct {
	t *Table
}

// Len returns the number of rows.
func (c *Combined) Len() int { return c.t.Len() }

// Columns returns the (currency, league) columns, leagues in catalog order.
func (c *Combined) Columns() []Key { return c.t.Columns() }

// Has reports whether there is a column k.
func (c *Combined) Has(k Key) bool { return c.t.Has(k) }

// Cell returns the cell at row i in column k.
func (c *Combined) Cell(i int, k Key) Cell { return c.t.Cell(i, k) }

// Column returns a copy of the cells of column k, or nil if there is no such column.
func (c *Combined) Column(k Key) []Cell { return slices.Clone(c.t.cells[k]) }

// Elapsed returns the elapsed time of row i.
func (c *Combined) Elapsed(i int) time.Duration { return c.t.rows[i] }

// Table returns the underlying table, indexed by elapsed time.
func (c *Combined) Table() *Table { return c.t.clone() }
