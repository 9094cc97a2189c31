package leagues

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDumps is returned when no dump file matches the discovery criteria.
	ErrNoDumps = errors.New("no currency dump found")

	// ErrMalformedFilename is wrapped by FilenameError.
	ErrMalformedFilename = errors.New("malformed dump filename")

	// ErrAmbiguousLatest is returned when several dumps share the most recent date,
	// and the canonical currencies cannot be taken from a single league.
	ErrAmbiguousLatest = errors.New("ambiguous latest dump")

	// ErrEmptyExtraction is returned by a Builder configured to fail on dumps
	// without any base currency rate.
	ErrEmptyExtraction = errors.New("no base currency rate in dump")

	// ErrDuplicateColumn is returned when two tables to join share a (currency, league) column.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrMissingColumn is returned when a dump header lacks a required column.
	ErrMissingColumn = errors.New("missing column")
)

// FilenameError reports a dump filename that cannot be parsed into a league and a date.
type FilenameError struct {
	Path   string
	Reason string
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrMalformedFilename, e.Path, e.Reason)
}

func (e *FilenameError) Unwrap() error { return ErrMalformedFilename }
