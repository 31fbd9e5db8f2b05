package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write serializes t as comma-separated UTF-8 text with a header row.
// Null cells are written as empty fields.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(t.columns))
	for i, row := range t.rows {
		for j, v := range row {
			record[j] = v.Text()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes t to path, replacing any existing file.
func WriteFile(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, t); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}
