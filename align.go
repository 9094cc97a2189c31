package leagues

import (
	"slices"
)

// Align returns a copy of t with a Missing column for every canonical
// currency t lacks, for each league of t.
//
// Columns of t that are not canonical are kept. A table without any column
// has no league to pad and is returned empty.
func Align(t *Table, canonical []string) *Table {
	a := t.clone()
	for _, league := range t.Leagues() {
		for _, currency := range canonical {
			a.addColumn(Key{Currency: currency, League: league})
		}
	}
	a.sortColumns()
	return a
}

// CanonicalCurrencies returns the sorted currencies rated in the most recent dump of the catalog.
func CanonicalCurrencies(c Catalog) ([]string, error) {
	latest, err := c.Latest()
	if err != nil {
		return nil, err
	}
	rows, err := Extract(latest.Path)
	if err != nil {
		return nil, err
	}
	return currencies(rows), nil
}

// currencies returns the distinct currencies of rows, sorted.
func currencies(rows []Row) []string {
	list := make([]string, 0, len(rows))
	for _, r := range rows {
		list = append(list, r.Currency)
	}
	slices.Sort(list)
	return slices.Compact(list)
}
