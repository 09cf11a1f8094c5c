package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/statement-extractor/internal/models"
)

// JSONWriter writes the statement as a structured document nesting the
// metadata and the transaction sequence.
type JSONWriter struct {
	Indent bool
}

// WriteToFile writes the statement to a JSON file at path.
func (w *JSONWriter) WriteToFile(path string, st *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()
	return w.Write(f, st)
}

// Write encodes the statement as JSON to out.
func (w *JSONWriter) Write(out io.Writer, st *models.Statement) error {
	enc := json.NewEncoder(out)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
