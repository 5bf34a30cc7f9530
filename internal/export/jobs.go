package export

import (
	"context"
	"fmt"
	"os"

	"github.com/ytget/flexlab/internal/analysis"
	"github.com/ytget/flexlab/internal/dataset"
	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/render"
)

// ModulusResultsJob writes accepted modulus results as CSV or XLSX
func ModulusResultsJob(kind model.ExportKind, results []model.ModulusResult) (Job, error) {
	results = append([]model.ModulusResult(nil), results...)
	switch kind {
	case model.ExportModulusCSV:
		return func(ctx context.Context, path string) error {
			return dataset.WriteModulusResults(path, results)
		}, nil
	case model.ExportModulusXLSX:
		return func(ctx context.Context, path string) error {
			return dataset.WriteModulusWorkbook(path, results)
		}, nil
	}
	return nil, fmt.Errorf("unsupported results export: %s", kind)
}

// SummaryJob writes summary rows as CSV, XLSX or one of the bar charts
func SummaryJob(kind model.ExportKind, rows []model.SummaryRow, opts render.BarOptions) (Job, error) {
	rows = append([]model.SummaryRow(nil), rows...)
	switch kind {
	case model.ExportSummaryCSV:
		return func(ctx context.Context, path string) error {
			return dataset.WriteSummary(path, rows)
		}, nil
	case model.ExportSummaryXLSX:
		return func(ctx context.Context, path string) error {
			return dataset.WriteSummaryWorkbook(path, rows)
		}, nil
	case model.ExportStrengthPlot:
		return func(ctx context.Context, path string) error {
			return render.SaveStrengthPlot(path, rows, opts)
		}, nil
	case model.ExportModulusPlot:
		return func(ctx context.Context, path string) error {
			return render.SaveModulusPlot(path, rows, opts)
		}, nil
	}
	return nil, fmt.Errorf("unsupported summary export: %s", kind)
}

// CurveJob writes the stress-strain chart of a specimen as PNG
func CurveJob(curve *model.Curve, fit *analysis.WindowFit, markers render.Markers, opts render.CurveOptions) Job {
	return func(ctx context.Context, path string) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if _, err := render.WriteStressStrain(f, curve, fit, markers, opts); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}
