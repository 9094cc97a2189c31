package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/leagues"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// chaos is the money currency used to display rates.
var chaos = money.AddCurrency("CHAOS", "c", "1$", ".", ",", 2)

// FormatRate formats a rate in base currency: two decimals and thousands
// separators above one Chaos Orb, four significant decimals below.
func FormatRate(v float64) string {
	if math.Abs(v) >= 1 {
		return money.New(int64(math.Round(v*100)), chaos.Code).Display()
	}
	return decimal.NewFromFloat(v).Round(4).String() + chaos.Grapheme
}

// Markdown renders a table of the rate of currency in every league, one line per day.
func Markdown(r *leagues.BuildResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("%s in %s", currency, leagues.BaseCurrency))

	c := r.Combined
	var keys []leagues.Key
	header := []string{"Day"}
	for _, league := range r.Leagues {
		k := leagues.Key{Currency: currency, League: league}
		if !c.Has(k) {
			continue
		}
		keys = append(keys, k)
		header = append(header, league)
	}
	if len(keys) == 0 {
		doc.PlainText(fmt.Sprintf("No league rates %s.", currency))
		return doc.String()
	}

	table := md.TableSet{
		Header: header,
		Rows:   [][]string{},
	}
	for i := range c.Len() {
		row := []string{strconv.Itoa(i)}
		for _, k := range keys {
			row = append(row, FormatRate(c.Cell(i, k).Or(0)))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.CustomTable(table, md.TableOptions{AutoFormatHeaders: false})
	return doc.String()
}
