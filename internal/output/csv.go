// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ozcomp/compintake/internal/extract"
)

// CSVWriter writes records in CSV form with a fixed header.
type CSVWriter struct {
	filename string
	file     *os.File
	writer   *csv.Writer
	wroteHdr bool
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(filename string) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &CSVWriter{
		filename: filename,
		file:     file,
		writer:   csv.NewWriter(file),
	}, nil
}

// Write writes records to the CSV file, emitting the header once.
func (w *CSVWriter) Write(records []extract.Competition) error {
	if len(records) == 0 {
		return nil
	}

	if !w.wroteHdr {
		if err := w.writer.Write(columns); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		w.wroteHdr = true
	}

	for _, record := range records {
		if err := w.writer.Write(rowValues(record)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the CSV writer.
func (w *CSVWriter) Close() error {
	if w.writer != nil {
		w.writer.Flush()
		w.writer = nil
	}
	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
