package batch

import (
	"context"

	"github.com/ytget/flexlab/internal/model"
)

// Processor defines the interface for the batch processing service.
type Processor interface {
	SetUpdateCallback(func(*model.ProcessTask))
	Run(ctx context.Context, dir string) (*model.Batch, error)
	GetTask(id string) (*model.ProcessTask, bool)
	GetAllTasks() []*model.ProcessTask

	// SetMaxParallel sets the maximum number of files processed at once
	SetMaxParallel(max int)

	// SetRegionSize sets the decimal strain limit of the initial fit region
	SetRegionSize(size float64)
}
