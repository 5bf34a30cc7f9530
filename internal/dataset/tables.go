package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/platform"
)

// SummaryHeader is the header of the flexural summary table
var SummaryHeader = []string{model.SummaryColumnFilename, model.SummaryColumnStrength, model.SummaryColumnModulus}

// ResultsHeader is the header of the manual modulus results table
var ResultsHeader = []string{model.ResultColumnFilename, model.ResultColumnStrainMin, model.ResultColumnStrainMax, model.ResultColumnModulus}

// SummaryTable converts summary rows into cells. A missing modulus is nil.
func SummaryTable(rows []model.SummaryRow) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		var modulus any
		if r.HasModulus {
			modulus = r.Modulus
		}
		out[i] = []any{r.Filename, r.Strength, modulus}
	}
	return out
}

// ResultsTable converts modulus results into cells
func ResultsTable(results []model.ModulusResult) [][]any {
	out := make([][]any, len(results))
	for i, r := range results {
		out[i] = []any{r.Filename, r.StrainMin, r.StrainMax, r.Modulus}
	}
	return out
}

// WriteSummary writes the flexural summary CSV, creating the parent directory
func WriteSummary(path string, rows []model.SummaryRow) error {
	return writeCSVFile(path, SummaryHeader, SummaryTable(rows))
}

// WriteModulusResults writes the accepted manual fits as CSV
func WriteModulusResults(path string, results []model.ModulusResult) error {
	return writeCSVFile(path, ResultsHeader, ResultsTable(results))
}

func writeCSVFile(path string, header []string, rows [][]any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, header, rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// WriteCSV writes a header and rows. nil cells are written empty.
func WriteCSV(w io.Writer, header []string, rows [][]any) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = formatCell(row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

// ReadSummary reads a flexural summary CSV. Filename and strength columns
// are required; the modulus column is optional and may hold empty cells.
func ReadSummary(path string) ([]model.SummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s is corrupted: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}

	index, err := columnIndex(records[0], []string{model.SummaryColumnFilename, model.SummaryColumnStrength})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	modIdx := -1
	for i, h := range records[0] {
		if strings.TrimSpace(strings.TrimPrefix(h, utf8BOM)) == model.SummaryColumnModulus {
			modIdx = i
			break
		}
	}

	rows := make([]model.SummaryRow, 0, len(records)-1)
	for n, rec := range records[1:] {
		nameIdx, strIdx := index[model.SummaryColumnFilename], index[model.SummaryColumnStrength]
		if nameIdx >= len(rec) || strIdx >= len(rec) {
			return nil, fmt.Errorf("%s: row %d is short", path, n+2)
		}
		strength, err := strconv.ParseFloat(strings.TrimSpace(rec[strIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: invalid strength %q", path, n+2, rec[strIdx])
		}
		row := model.SummaryRow{Filename: rec[nameIdx], Strength: strength}
		if modIdx >= 0 && modIdx < len(rec) {
			if cell := strings.TrimSpace(rec[modIdx]); cell != "" {
				if m, err := strconv.ParseFloat(cell, 64); err == nil {
					row.Modulus, row.HasModulus = m, true
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
