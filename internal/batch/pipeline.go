package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/config"
	"github.com/ytget/flexlab/internal/dataset"
	"github.com/ytget/flexlab/internal/platform"
)

// Report describes the outputs of a processing run
type Report struct {
	Files       int
	Processed   int
	Failed      int
	SummaryPath string
	Workbook    string
}

// ProcessDirectory runs the batch over params.RawDataDir and writes the
// summary CSV (and the workbook when enabled) to params.ProcessedDir.
func ProcessDirectory(ctx context.Context, p Processor, params config.Params, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	batch, err := p.Run(ctx, params.RawDataDir)
	if err != nil {
		return nil, err
	}

	if err := platform.CreateDirectoryIfNotExists(params.ProcessedDir); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", params.ProcessedDir, err)
	}

	rows := batch.SummaryRows()
	report := &Report{
		Files:       len(batch.Tasks),
		Processed:   len(rows),
		Failed:      len(batch.GetFailedTasks()),
		SummaryPath: params.SummaryPath(),
	}

	if err := dataset.WriteSummary(report.SummaryPath, rows); err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("Summary exported to %s", report.SummaryPath))

	if params.Workbook {
		report.Workbook = strings.TrimSuffix(report.SummaryPath, filepath.Ext(report.SummaryPath)) + ".xlsx"
		if err := dataset.WriteSummaryWorkbook(report.Workbook, rows); err != nil {
			return nil, err
		}
		logger.Info(fmt.Sprintf("Workbook exported to %s", report.Workbook))
	}

	if batch.HasErrors() {
		logger.Warn(fmt.Sprintf("%d files could not be processed", report.Failed))
	}
	logger.Info(fmt.Sprintf("Total files processed: %d", report.Files),
		zap.Int("succeeded", report.Processed), zap.Int("failed", report.Failed))
	return report, nil
}
