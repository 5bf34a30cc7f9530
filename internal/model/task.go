package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ProcessTask represents the reduction of a single specimen file
type ProcessTask struct {
	ID         string
	FilePath   string
	Status     TaskStatus
	LastError  string      // last error message if any
	Result     *SummaryRow // set once the task completed
	StartedAt  time.Time
	FinishedAt time.Time
}

// ExportKind selects the output format of an export task
type ExportKind string

const (
	ExportModulusCSV   ExportKind = "modulus-csv"
	ExportModulusXLSX  ExportKind = "modulus-xlsx"
	ExportSummaryCSV   ExportKind = "summary-csv"
	ExportSummaryXLSX  ExportKind = "summary-xlsx"
	ExportStrengthPlot ExportKind = "strength-png"
	ExportModulusPlot  ExportKind = "modulus-png"
	ExportCurvePlot    ExportKind = "curve-png"
)

// ExportTask represents a single background export
type ExportTask struct {
	ID         string
	Kind       ExportKind
	OutputPath string
	Status     TaskStatus
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayName returns the specimen file name without directory and extension
func (pt *ProcessTask) GetDisplayName() string {
	if pt.FilePath == "" {
		return ""
	}
	name := filepath.Base(pt.FilePath)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// GetElapsedString returns the processing time formatted as mm:ss.mmm, or "—" if unknown
func (pt *ProcessTask) GetElapsedString() string {
	if pt.StartedAt.IsZero() || pt.FinishedAt.IsZero() || pt.FinishedAt.Before(pt.StartedAt) {
		return "—"
	}
	return formatElapsed(pt.FinishedAt.Sub(pt.StartedAt))
}

// GetElapsedString returns the export time formatted as mm:ss.mmm, or "—" if unknown
func (et *ExportTask) GetElapsedString() string {
	if et.StartedAt.IsZero() || et.FinishedAt.IsZero() || et.FinishedAt.Before(et.StartedAt) {
		return "—"
	}
	return formatElapsed(et.FinishedAt.Sub(et.StartedAt))
}

func formatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
