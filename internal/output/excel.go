// internal/output/excel.go
package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ozcomp/compintake/internal/extract"
)

// ExcelWriter produces a review spreadsheet: one row per imported record,
// with the issues list in the final column for the reviewer to work through.
type ExcelWriter struct {
	filename string
	file     *excelize.File
	sheet    string
	nextRow  int
}

// NewExcelWriter creates a new Excel writer.
func NewExcelWriter(filename string) (*ExcelWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("excel output filename is required")
	}

	f := excelize.NewFile()
	const sheet = "Competitions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	w := &ExcelWriter{
		filename: filename,
		file:     f,
		sheet:    sheet,
		nextRow:  1,
	}
	if err := w.writeHeader(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *ExcelWriter) writeHeader() error {
	for i, column := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, column); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	w.nextRow = 2
	return nil
}

// Write appends one row per record.
func (w *ExcelWriter) Write(records []extract.Competition) error {
	for _, record := range records {
		for i, value := range rowValues(record) {
			cell, err := excelize.CoordinatesToCellName(i+1, w.nextRow)
			if err != nil {
				return err
			}
			if err := w.file.SetCellValue(w.sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", w.nextRow, err)
			}
		}
		w.nextRow++
	}
	return nil
}

// Close saves the workbook to disk.
func (w *ExcelWriter) Close() error {
	if w.file == nil {
		return nil
	}
	saveErr := w.file.SaveAs(w.filename)
	closeErr := w.file.Close()
	w.file = nil
	if saveErr != nil {
		return fmt.Errorf("failed to save workbook: %w", saveErr)
	}
	return closeErr
}
