package leagues

import (
	"cmp"
	"slices"
	"time"
)

// Key identifies a column: the rate of a currency in a league.
type Key struct {
	Currency string `json:"currency"`
	League   string `json:"league"`
}

func (k Key) String() string { return k.Currency + "/" + k.League }

// compareKeys orders keys by currency, then league.
func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Currency, b.Currency); c != 0 {
		return c
	}
	return cmp.Compare(a.League, b.League)
}

// Cell is a table value. The zero Cell is Missing.
type Cell struct {
	Value float64
	Valid bool
}

// Missing is the cell of a currency with no known rate, which is not a rate of zero.
var Missing = Cell{}

// Valued returns a valid cell.
func Valued(v float64) Cell { return Cell{Value: v, Valid: true} }

// Or returns the cell value, or def if the cell is Missing.
func (c Cell) Or(def float64) float64 {
	if !c.Valid {
		return def
	}
	return c.Value
}

// Table is a set of columns indexed by elapsed time, in ascending order.
//
// Tables returned by this package are never modified afterwards.
type Table struct {
	rows    []time.Duration
	columns []Key
	cells   map[Key][]Cell // one cell per row
}

func newTable(rows []time.Duration) *Table {
	return &Table{rows: rows, cells: make(map[Key][]Cell)}
}

// addColumn appends a column, or returns the existing one.
func (t *Table) addColumn(k Key) []Cell {
	if col, ok := t.cells[k]; ok {
		return col
	}
	col := make([]Cell, len(t.rows))
	t.columns = append(t.columns, k)
	t.cells[k] = col
	return col
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the elapsed time of each row.
func (t *Table) Rows() []time.Duration { return slices.Clone(t.rows) }

// Columns returns the column keys in order.
func (t *Table) Columns() []Key { return slices.Clone(t.columns) }

// Has reports whether the table has a column k.
func (t *Table) Has(k Key) bool {
	_, ok := t.cells[k]
	return ok
}

// Cell returns the cell at row i in column k. Unknown columns are Missing.
func (t *Table) Cell(i int, k Key) Cell {
	col, ok := t.cells[k]
	if !ok || i < 0 || i >= len(col) {
		return Missing
	}
	return col[i]
}

// Get returns the value at 'elapsed' in column k and true, or zero value and false.
func (t *Table) Get(elapsed time.Duration, k Key) (float64, bool) {
	i, found := slices.BinarySearch(t.rows, elapsed)
	if !found {
		return 0, false
	}
	c := t.Cell(i, k)
	return c.Value, c.Valid
}

// Currencies returns the distinct currencies of the columns, sorted.
func (t *Table) Currencies() []string {
	list := make([]string, 0, len(t.columns))
	for _, k := range t.columns {
		list = append(list, k.Currency)
	}
	slices.Sort(list)
	return slices.Compact(list)
}

// Leagues returns the distinct leagues of the columns, in order of first appearance.
func (t *Table) Leagues() []string {
	var list []string
	for _, k := range t.columns {
		if !slices.Contains(list, k.League) {
			list = append(list, k.League)
		}
	}
	return list
}

// clone returns a deep copy of t.
func (t *Table) clone() *Table {
	c := &Table{
		rows:    slices.Clone(t.rows),
		columns: slices.Clone(t.columns),
		cells:   make(map[Key][]Cell, len(t.cells)),
	}
	for k, col := range t.cells {
		c.cells[k] = slices.Clone(col)
	}
	return c
}

// sortColumns sorts columns by currency then league.
func (t *Table) sortColumns() { slices.SortFunc(t.columns, compareKeys) }
