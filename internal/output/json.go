// internal/output/json.go
package output

import (
	"encoding/json"
	"os"

	"github.com/ozcomp/compintake/internal/extract"
)

// JSONWriter appends records to a JSON file, one indented array per write.
type JSONWriter struct {
	filename string
	file     *os.File
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(filename string) (*JSONWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		filename: filename,
		file:     file,
	}, nil
}

// Write writes records to the JSON file.
func (w *JSONWriter) Write(records []extract.Competition) error {
	encoder := json.NewEncoder(w.file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// Close closes the JSON writer.
func (w *JSONWriter) Close() error {
	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
