package leagues

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Group pivots rows into a Table with one row per elapsed time and one column
// per (currency, league).
//
// Values of rows sharing the same elapsed time, currency and league are summed.
func Group(rows []Row) *Table {
	type point struct {
		elapsed time.Duration
		key     Key
	}
	sums := make(map[point]decimal.Decimal)
	var times []time.Duration
	for _, r := range rows {
		p := point{r.Elapsed, Key{Currency: r.Currency, League: r.League}}
		if sum, ok := sums[p]; ok {
			sums[p] = sum.Add(r.Value)
			continue
		}
		sums[p] = r.Value
		times = append(times, r.Elapsed)
	}
	slices.Sort(times)
	times = slices.Compact(times)

	t := newTable(times)
	for p, sum := range sums {
		col := t.addColumn(p.key)
		i, _ := slices.BinarySearch(times, p.elapsed)
		col[i] = Valued(sum.InexactFloat64())
	}
	t.sortColumns()
	return t
}
