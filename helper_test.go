package leagues

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const dumpHeader = "League;Date;Get;Pay;Value;Confidence"

// writeDump writes a dump file named "<league>.<day>.currency.csv" in its own
// folder under root, the way poe.ninja archives are unpacked, and returns its path.
func writeDump(t *testing.T, root, league, day string, lines ...string) string {
	t.Helper()
	dir := filepath.Join(root, league+"."+day)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, league+"."+day+".currency.csv")
	content := dumpHeader + "\n" + strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// rate formats a dump line for a rate paid in base currency.
func rate(league, day, currency, value string) string {
	return league + ";" + day + ";" + currency + ";" + BaseCurrency + ";" + value + ";High"
}

// inverse formats a dump line for a rate paid in currency, ignored by extraction.
func inverse(league, day, currency, value string) string {
	return league + ";" + day + ";" + BaseCurrency + ";" + currency + ";" + value + ";High"
}

// twoLeagues writes the reference scenario:
// League A (older) trades Orb1 on two consecutive days, League B (newer)
// trades Orb1 and Orb2 on its first and third day.
func twoLeagues(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeDump(t, root, "A", "2021-01-15",
		rate("A", "2021-01-15", "Orb1", "10"),
		inverse("A", "2021-01-15", "Orb1", "0.1"),
		rate("A", "2021-01-16", "Orb1", "12"),
	)
	writeDump(t, root, "B", "2021-04-16",
		rate("B", "2021-04-16", "Orb1", "5"),
		rate("B", "2021-04-16", "Orb2", "1"),
		rate("B", "2021-04-18", "Orb1", "7"),
		rate("B", "2021-04-18", "Orb2", "3"),
	)
	return root
}
