package renderer

import (
	"context"
	"encoding/json"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/leagues"
	"github.com/google/go-cmp/cmp"
)

var fixGolden = flag.Bool("fix-golden", false, "if true, update failing golden files with the received output")

func TestFixGoldenIsOff(t *testing.T) {
	if *fixGolden {
		t.Fatal("-fix-golden is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// build returns the build of the testdata dumps:
// B is the latest league, A an older one, C has a currency unknown to B, and Z has no rate.
func build(t *testing.T) *leagues.BuildResult {
	t.Helper()
	c, err := leagues.Discover("testdata/dumps", ".csv")
	if err != nil {
		t.Fatalf("Discover() unexpected error: %v", err)
	}
	r, err := leagues.Build(context.Background(), c)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	return r
}

func TestRenderSummary(t *testing.T) {
	const goldenFile = "testdata/summary.md"
	got := RenderSummary(NewSummary(build(t)))

	golden, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
	}
	if want := string(golden); got != want {
		if *fixGolden {
			if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
				t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
			}
			t.Logf("updated golden file %s", goldenFile)
			return
		}
		t.Errorf("RenderSummary() mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestNewFigure(t *testing.T) {
	fig := NewFigure(build(t))

	data, err := fig.JSON()
	if err != nil {
		t.Fatalf("JSON() unexpected error: %v", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		t.Fatalf("JSON() is not valid json: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"$.data[*].name", []any{"B", "A", "C"}},
		{"$.data[0].x", []any{0.0, 1.0, 2.0}},
		{"$.data[0].y", []any{5.0, 0.0, 7.0}},
		{"$.data[1].y", []any{10.0, 1250.0, 0.0}},
		{"$.data[2].y", []any{8.0, 0.0, 0.0}},
		{"$.layout.updatemenus[0].buttons[*].label", []any{"Orb1", "Orb2"}},
		{"$.layout.updatemenus[0].buttons[1].method", "restyle"},
		{"$.layout.updatemenus[0].buttons[1].args[0].y[0]", []any{1.0, 0.0, 3.0}},
		{"$.layout.updatemenus[0].buttons[1].args[0].y[2]", []any{0.0, 0.0, 0.0}},
		{"$.layout.yaxis.title.text", "Chaos Orb"},
	}
	for _, test := range tests {
		got, err := jsonpath.Get(test.path, jobj)
		if err != nil {
			t.Errorf("jsonpath.Get(%q) unexpected error: %v", test.path, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("figure %s mismatch (-want +got):\n%s", test.path, diff)
		}
	}
}

func TestNewFigureLatestWithoutRate(t *testing.T) {
	root := t.TempDir()
	for dir, content := range map[string]string{
		"A.2021-01-15": "League;Date;Get;Pay;Value;Confidence\nA;2021-01-15;Orb1;Chaos Orb;10;High\n",
		"B.2021-04-16": "League;Date;Get;Pay;Value;Confidence\nB;2021-04-16;Chaos Orb;Orb1;0.2;High\n",
	} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(root, dir, dir+".currency.csv"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	c, err := leagues.Discover(root, ".csv")
	if err != nil {
		t.Fatalf("Discover() unexpected error: %v", err)
	}
	r, err := leagues.Build(context.Background(), c)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	fig := NewFigure(r)
	if len(fig.Data) != 1 || fig.Data[0].Name != "A" {
		t.Fatalf("NewFigure() traces = %v want one trace for A", fig.Data)
	}
	if diff := cmp.Diff([]float64{10}, fig.Data[0].Y); diff != "" {
		t.Errorf("NewFigure() trace mismatch (-want +got):\n%s", diff)
	}
	if got := fig.Layout.UpdateMenus[0].Buttons; len(got) != 1 || got[0].Label != "Orb1" {
		t.Errorf("NewFigure() buttons = %v want one for Orb1", got)
	}
}

func TestMustSub(t *testing.T) {
	if _, err := fs.ReadFile(templates, "summary.md"); err != nil {
		t.Errorf("templates has no summary.md: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("mustSub(..) did not panic")
		}
	}()
	mustSub(templatesFS, "..")
}

func TestFigureHTML(t *testing.T) {
	page, err := FigureHTML(NewFigure(build(t)), "Leagues & currencies")
	if err != nil {
		t.Fatalf("FigureHTML() unexpected error: %v", err)
	}
	for _, want := range []string{
		"<title>Leagues &amp; currencies</title>",
		DefaultPlotlyURL,
		`"updatemenus"`,
		`Plotly.newPlot("chart"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("FigureHTML() does not contain %q", want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0c"},
		{0.00523, "0.0052c"},
		{1, "1.00c"},
		{12.5, "12.50c"},
		{1250, "1,250.00c"},
	}
	for _, test := range tests {
		if got := FormatRate(test.in); got != test.want {
			t.Errorf("FormatRate(%v) = %q want %q", test.in, got, test.want)
		}
	}
}

func TestMarkdown(t *testing.T) {
	r := build(t)
	got := Markdown(r, "Orb1")

	for _, want := range []string{"Orb1 in Chaos Orb", "Day", "B", "A", "C", "5.00c", "1,250.00c", "8.00c"} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown(Orb1) does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Z") {
		t.Errorf("Markdown(Orb1) contains the empty league Z:\n%s", got)
	}

	html, err := MarkdownToHTML(got)
	if err != nil {
		t.Fatalf("MarkdownToHTML() unexpected error: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("MarkdownToHTML() has no table:\n%s", html)
	}

	if got := Markdown(r, "Mirror of Kalandra"); !strings.Contains(got, "No league rates") {
		t.Errorf("Markdown(unknown currency) = %q want a no rate message", got)
	}
}
