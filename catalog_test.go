package leagues

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/leagues/date"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseFilename(t *testing.T) {
	tests := []struct {
		path string
		want DumpFile
	}{
		{
			path: "Ritual.2021-01-15/Ritual.2021-01-15.currency.csv",
			want: DumpFile{League: "Ritual", Date: date.New(2021, 1, 15), Path: "Ritual.2021-01-15/Ritual.2021-01-15.currency.csv"},
		},
		{
			path: "Hardcore Ritual.2021-1-5.currency.csv",
			want: DumpFile{League: "Hardcore Ritual", Date: date.New(2021, 1, 5), Path: "Hardcore Ritual.2021-1-5.currency.csv"},
		},
		{
			// two segments are enough when the second one is a date
			path: "Harvest.2020-06-19",
			want: DumpFile{League: "Harvest", Date: date.New(2020, 6, 19), Path: "Harvest.2020-06-19"},
		},
	}
	for _, test := range tests {
		got, err := ParseFilename(test.path)
		if err != nil {
			t.Errorf("ParseFilename(%q) unexpected error: %v", test.path, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseFilename(%q) = %v want %v", test.path, got, test.want)
		}
	}
}

func TestParseFilenameMalformed(t *testing.T) {
	for _, path := range []string{
		"league_only.csv",
		"league_only",
		".2021-01-15.currency.csv",
		"Ritual.currency.2021-01-15.csv",
	} {
		_, err := ParseFilename(path)
		require.ErrorIs(t, err, ErrMalformedFilename, "ParseFilename(%q)", path)

		var ferr *FilenameError
		require.ErrorAs(t, err, &ferr)
		require.Equal(t, path, ferr.Path)
	}
}

func TestNewCatalog(t *testing.T) {
	older := DumpFile{League: "Heist", Date: date.New(2020, 9, 18), Path: "heist"}
	tieA := DumpFile{League: "Ritual", Date: date.New(2021, 1, 15), Path: "ritual"}
	tieB := DumpFile{League: "Hardcore Ritual", Date: date.New(2021, 1, 15), Path: "hc ritual"}
	newer := DumpFile{League: "Ultimatum", Date: date.New(2021, 4, 16), Path: "ultimatum"}

	files := []DumpFile{older, tieA, newer, tieB}
	got := NewCatalog(files...)
	want := Catalog{newer, tieA, tieB, older}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("NewCatalog() mismatch (-want +got):\n%s", diff)
	}
	if files[0] != older {
		t.Errorf("NewCatalog() modified its input")
	}
	if diff := cmp.Diff([]string{"Ultimatum", "Ritual", "Hardcore Ritual", "Heist"}, got.Leagues()); diff != "" {
		t.Errorf("Leagues() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover(t *testing.T) {
	root := twoLeagues(t)
	// noise that must not be cataloged.
	writeFile(t, filepath.Join(root, "B.2021-04-16", "B.2021-04-16.items.csv"))
	writeFile(t, filepath.Join(root, "B.2021-04-16", "B.2021-04-16.currency.zip"))
	writeFile(t, filepath.Join(root, "README.md"))

	c, err := Discover(root, ".csv")
	require.NoError(t, err)
	require.Len(t, c, 2)
	require.Equal(t, []string{"B", "A"}, c.Leagues())
	require.Equal(t, date.New(2021, 4, 16), c[0].Date)
	require.Equal(t, filepath.Join(root, "A.2021-01-15", "A.2021-01-15.currency.csv"), c[1].Path)

	// the dot is optional.
	again, err := Discover(root, "csv")
	require.NoError(t, err)
	require.Equal(t, c, again)
}

func TestDiscoverEmpty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Ritual.2021-01-15.items.csv"))

	_, err := Discover(root, ".csv")
	require.ErrorIs(t, err, ErrNoDumps)
}

func TestDiscoverMalformed(t *testing.T) {
	root := twoLeagues(t)
	writeFile(t, filepath.Join(root, "currency.csv"))

	_, err := Discover(root, ".csv")
	require.ErrorIs(t, err, ErrMalformedFilename)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nowhere"), ".csv")
	require.True(t, errors.Is(err, os.ErrNotExist), "Discover() = %v want a not exist error", err)
}

func TestLatest(t *testing.T) {
	a := DumpFile{League: "A", Date: date.New(2021, 1, 15), Path: "a"}
	b := DumpFile{League: "B", Date: date.New(2021, 4, 16), Path: "b"}
	c := DumpFile{League: "C", Date: date.New(2020, 9, 18), Path: "c"}

	// order does not matter, the catalog is not required to be sorted.
	for _, cat := range []Catalog{{a, b, c}, {b, c, a}, {c, a, b}} {
		got, err := cat.Latest()
		require.NoError(t, err)
		require.Equal(t, b, got)
	}

	_, err := Catalog{}.Latest()
	require.ErrorIs(t, err, ErrNoDumps)

	twin := DumpFile{League: "HC B", Date: b.Date, Path: "hc b"}
	_, err = Catalog{a, b, twin}.Latest()
	require.ErrorIs(t, err, ErrAmbiguousLatest)

	// ties on an older date are fine.
	got, err := Catalog{a, DumpFile{League: "HC A", Date: a.Date, Path: "hc a"}, b}.Latest()
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(dumpHeader+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
}
