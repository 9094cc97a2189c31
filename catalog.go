package leagues

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/leagues/date"
)

// DumpMarker is the substring a dump filename must contain to be cataloged.
const DumpMarker = "currency"

// DumpFile is a market dump file, identified by the league and the date read from its name.
type DumpFile struct {
	League string    `json:"league"`
	Date   date.Date `json:"date"`
	Path   string    `json:"path"`
}

// Catalog is a list of dump files, most recent first.
//
// A league may appear several times, once per dated snapshot.
type Catalog []DumpFile

// NewCatalog returns a Catalog made of files sorted by date, most recent first.
// Files with the same date keep their relative order.
func NewCatalog(files ...DumpFile) Catalog {
	c := slices.Clone(Catalog(files))
	slices.SortStableFunc(c, func(a, b DumpFile) int { return b.Date.Compare(a.Date) })
	return c
}

// ParseFilename parses a path whose base name is "<league>.<date>.<ext>".
//
// Anything after the date is ignored.
func ParseFilename(path string) (DumpFile, error) {
	base := filepath.Base(path)
	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return DumpFile{}, &FilenameError{Path: path, Reason: "want <league>.<date>.<ext>"}
	}
	league := strings.TrimSpace(parts[0])
	if league == "" {
		return DumpFile{}, &FilenameError{Path: path, Reason: "empty league name"}
	}
	on, err := date.Parse(parts[1])
	if err != nil {
		return DumpFile{}, &FilenameError{Path: path, Reason: fmt.Sprintf("second segment %q is not a date", parts[1])}
	}
	return DumpFile{League: league, Date: on, Path: path}, nil
}

// Discover walks root and catalogs every file whose name contains DumpMarker
// and ends with ext.
//
// It returns ErrNoDumps if nothing matches, and fails on the first filename
// that cannot be parsed.
func Discover(root, ext string) (Catalog, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	var files []DumpFile
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.Contains(name, DumpMarker) || filepath.Ext(name) != ext {
			return nil
		}
		f, err := ParseFilename(p)
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot catalog dumps in %q: %w", root, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q with extension %q", ErrNoDumps, root, ext)
	}
	return NewCatalog(files...), nil
}

// Leagues returns the league of each file, in catalog order.
func (c Catalog) Leagues() []string {
	names := make([]string, 0, len(c))
	for _, f := range c {
		names = append(names, f.League)
	}
	return names
}

// Latest returns the single most recent dump file.
//
// The catalog does not need to be sorted. Several files sharing the most
// recent date is an ErrAmbiguousLatest.
func (c Catalog) Latest() (DumpFile, error) {
	if len(c) == 0 {
		return DumpFile{}, ErrNoDumps
	}
	latest := c[0]
	for _, f := range c[1:] {
		if f.Date.After(latest.Date) {
			latest = f
		}
	}
	var candidates []string
	for _, f := range c {
		if f.Date == latest.Date {
			candidates = append(candidates, f.Path)
		}
	}
	if len(candidates) > 1 {
		return DumpFile{}, fmt.Errorf("%w: %d dumps dated %v: %q", ErrAmbiguousLatest, len(candidates), latest.Date, candidates)
	}
	return latest, nil
}
