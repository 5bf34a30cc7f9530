package export

import (
	"github.com/ytget/flexlab/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	StartExport(kind model.ExportKind, outputPath string, job Job) (*model.ExportTask, error)
	StopExport(taskID string) error
	GetTask(taskID string) (*model.ExportTask, bool)
	Wait(taskID string) (*model.ExportTask, error)
}
