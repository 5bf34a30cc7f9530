package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/platform"
)

// Workbook sheet names
const (
	SheetSummary = "Summary"
	SheetModulus = "Modulus"
)

// WriteWorkbook writes a single-sheet xlsx file with a header row
func WriteWorkbook(path, sheet string, header []string, rows [][]any) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// WriteSummaryWorkbook writes the flexural summary as xlsx
func WriteSummaryWorkbook(path string, rows []model.SummaryRow) error {
	return WriteWorkbook(path, SheetSummary, SummaryHeader, SummaryTable(rows))
}

// WriteModulusWorkbook writes the accepted manual fits as xlsx
func WriteModulusWorkbook(path string, results []model.ModulusResult) error {
	return WriteWorkbook(path, SheetModulus, ResultsHeader, ResultsTable(results))
}
