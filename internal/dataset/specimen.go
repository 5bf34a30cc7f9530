package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/flexlab/internal/model"
)

var (
	// ErrEmptyFile is returned for files without a header row
	ErrEmptyFile = errors.New("file is empty")
	// ErrMissingColumn is returned when a required column is absent
	ErrMissingColumn = errors.New("missing required column")
)

const utf8BOM = "\ufeff"

// ReadSpecimen reads a full specimen export. Every column in
// model.SpecimenColumns is required; rows with a non-numeric or infinite
// value in any of them are dropped.
func ReadSpecimen(path string) (*model.Specimen, error) {
	cols, err := readColumnsFile(path, model.SpecimenColumns)
	if err != nil {
		return nil, err
	}
	return &model.Specimen{
		Name:         filepath.Base(path),
		Load:         cols[model.ColumnLoad],
		Time:         cols[model.ColumnTime],
		Displacement: cols[model.ColumnDisplacement],
		Stress:       cols[model.ColumnStress],
		Strain:       cols[model.ColumnStrain],
	}, nil
}

// ReadCurve reads only strain and stress, which is all the interactive
// review needs. Rows where either is not a finite number are dropped.
func ReadCurve(path string) (*model.Curve, error) {
	cols, err := readColumnsFile(path, model.CurveColumns)
	if err != nil {
		return nil, err
	}
	return &model.Curve{
		Name:   filepath.Base(path),
		Strain: cols[model.ColumnStrain],
		Stress: cols[model.ColumnStress],
	}, nil
}

func readColumnsFile(path string, required []string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	cols, err := ReadColumns(f, required)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return cols, nil
}

// ReadColumns parses CSV with a header row and returns the required columns
// as floats. Cells that do not parse become NaN and +-Inf is treated as NaN;
// any row with a NaN in a required column is dropped.
func ReadColumns(r io.Reader, required []string) (map[string][]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index, err := columnIndex(header, required)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]float64, len(required))
	row := make([]float64, len(required))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		keep := true
		for i, name := range required {
			v := math.NaN()
			if idx := index[name]; idx < len(record) {
				v = parseNumber(record[idx])
			}
			if math.IsNaN(v) {
				keep = false
				break
			}
			row[i] = v
		}
		if !keep {
			continue
		}
		for i, name := range required {
			out[name] = append(out[name], row[i])
		}
	}

	for _, name := range required {
		if out[name] == nil {
			out[name] = []float64{}
		}
	}
	return out, nil
}

func columnIndex(header []string, required []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

// parseNumber converts a cell to float, yielding NaN for anything that is
// not a finite number
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
