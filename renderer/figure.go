package renderer

import (
	"encoding/json"

	"github.com/etnz/leagues"
)

// Figure is a plotly figure comparing every league for one currency at a time.
//
// It has one scatter trace per league, and a drop down menu with a button per
// currency of the build (see BuildResult.Currencies) that restyles every trace
// to that currency.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a plotly scatter trace.
type Trace struct {
	Type string    `json:"type"`
	Name string    `json:"name"`
	X    []int     `json:"x"`
	Y    []float64 `json:"y"`
}

// Layout is the subset of the plotly layout used by Figure.
type Layout struct {
	UpdateMenus []UpdateMenu `json:"updatemenus"`
	XAxis       Axis         `json:"xaxis"`
	YAxis       Axis         `json:"yaxis"`
}

type Axis struct {
	Title AxisTitle `json:"title"`
}

type AxisTitle struct {
	Text string `json:"text"`
}

type UpdateMenu struct {
	Buttons    []Button `json:"buttons"`
	Direction  string   `json:"direction"`
	ShowActive bool     `json:"showactive"`
	XAnchor    string   `json:"xanchor"`
	YAnchor    string   `json:"yanchor"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
}

// Button restyles the y values of every trace, in trace order.
type Button struct {
	Method string          `json:"method"`
	Label  string          `json:"label"`
	Args   []RestyleValues `json:"args"`
}

type RestyleValues struct {
	Y [][]float64 `json:"y"`
}

// NewFigure returns the figure of a build.
//
// Leagues without any column are not plotted. The figure initially shows the
// first currency of the build.
func NewFigure(r *leagues.BuildResult) Figure {
	c := r.Combined
	var plotted []string
	for _, league := range r.Leagues {
		for _, k := range c.Columns() {
			if k.League == league {
				plotted = append(plotted, league)
				break
			}
		}
	}

	x := make([]int, c.Len())
	for i := range x {
		x[i] = i
	}

	fig := Figure{
		Layout: Layout{
			XAxis: Axis{Title: AxisTitle{Text: "Date"}},
			YAxis: Axis{Title: AxisTitle{Text: leagues.BaseCurrency}},
		},
	}
	currencies := r.Currencies()
	var initial string
	if len(currencies) > 0 {
		initial = currencies[0]
	}
	for _, league := range plotted {
		fig.Data = append(fig.Data, Trace{
			Type: "scatter",
			Name: league,
			X:    x,
			Y:    values(c, leagues.Key{Currency: initial, League: league}),
		})
	}

	menu := UpdateMenu{
		Direction:  "down",
		ShowActive: true,
		XAnchor:    "center",
		YAnchor:    "bottom",
		X:          0.5,
		Y:          1.1,
	}
	for _, currency := range currencies {
		ys := make([][]float64, 0, len(plotted))
		for _, league := range plotted {
			ys = append(ys, values(c, leagues.Key{Currency: currency, League: league}))
		}
		menu.Buttons = append(menu.Buttons, Button{
			Method: "restyle",
			Label:  currency,
			Args:   []RestyleValues{{Y: ys}},
		})
	}
	fig.Layout.UpdateMenus = []UpdateMenu{menu}
	return fig
}

// values returns the column k with missing cells drawn as zero.
func values(c *leagues.Combined, k leagues.Key) []float64 {
	y := make([]float64, c.Len())
	for i := range y {
		y[i] = c.Cell(i, k).Or(0)
	}
	return y
}

// JSON returns the plotly json of the figure.
func (f Figure) JSON() ([]byte, error) { return json.Marshal(f) }

// DefaultPlotlyURL is the plotly.js bundle loaded by chart pages.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// FigureHTML renders a standalone html page drawing the figure.
func FigureHTML(f Figure, title string) (string, error) {
	data := struct {
		Title     string
		PlotlyURL string
		Figure    Figure
	}{title, DefaultPlotlyURL, f}
	return renderHTML("chart", "chart.html", map[string]string{"chart_script": "chart_script.html"}, data)
}
