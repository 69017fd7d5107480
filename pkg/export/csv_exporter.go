package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

// Dataset defines tabular export content. Each row holds one cell per header.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Validate reports ragged rows or a missing header line.
func (d Dataset) Validate() error {
	if len(d.Headers) == 0 {
		return errors.New("dataset has no headers")
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(d.Headers))
		}
	}
	return nil
}

// CSVExporter writes datasets as RFC 4180 CSV. Cells that a spreadsheet would
// evaluate as formulas are prefixed with a single quote.
type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := make([][]string, 0, len(data.Rows)+1)
	records = append(records, data.Headers)
	for _, row := range data.Rows {
		safe := make([]string, len(row))
		for i, cell := range row {
			safe[i] = escapeFormula(cell)
		}
		records = append(records, safe)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: write: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeFormula(cell string) string {
	if cell == "" {
		return cell
	}
	if strings.ContainsRune("=+-@", rune(cell[0])) {
		return "'" + cell
	}
	return cell
}
