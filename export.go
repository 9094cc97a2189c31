package leagues

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/leagues/date"
	"github.com/xuri/excelize/v2"
)

// this file contains functions to export a build into flat tables for spreadsheets.
// A combined table is exported with one line per row and one column per (currency, league),
// headed "currency/league". Missing cells are left empty.

const (
	headerRow  = "row"
	headerDays = "days"
)

func exportHeader(r *BuildResult) []string {
	header := []string{headerRow, headerDays}
	for _, k := range r.Combined.Columns() {
		header = append(header, k.String())
	}
	return header
}

// ExportCSV writes the combined table of r to w as a ';' separated file.
func ExportCSV(w io.Writer, r *BuildResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	if err := cw.Write(exportHeader(r)); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	keys := r.Combined.Columns()
	record := make([]string, 0, len(keys)+2)
	for i := range r.Combined.Len() {
		record = record[:0]
		record = append(record, strconv.Itoa(i), strconv.Itoa(date.Days(r.Combined.Elapsed(i))))
		for _, k := range keys {
			c := r.Combined.Cell(i, k)
			if !c.Valid {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.FormatFloat(c.Value, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

const (
	sheetCombined = "combined"
	sheetCatalog  = "catalog"
)

// ExportXLSX writes r to w as a workbook with a sheet for the combined table
// and a sheet for the catalog.
func ExportXLSX(w io.Writer, r *BuildResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetCombined); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", sheetCombined, err)
	}
	header := exportHeader(r)
	if err := setRow(f, sheetCombined, 1, header); err != nil {
		return err
	}
	keys := r.Combined.Columns()
	for i := range r.Combined.Len() {
		line := make([]any, 0, len(header))
		line = append(line, i, date.Days(r.Combined.Elapsed(i)))
		for _, k := range keys {
			c := r.Combined.Cell(i, k)
			if !c.Valid {
				line = append(line, nil)
				continue
			}
			line = append(line, c.Value)
		}
		if err := setRow(f, sheetCombined, i+2, line); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetCatalog); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", sheetCatalog, err)
	}
	if err := setRow(f, sheetCatalog, 1, []string{"league", "date", "path"}); err != nil {
		return err
	}
	for i, d := range r.Catalog {
		if err := setRow(f, sheetCatalog, i+2, []string{d.League, d.Date.String(), d.Path}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

func setRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("cannot write %s!%s: %w", sheet, cell, err)
	}
	return nil
}
