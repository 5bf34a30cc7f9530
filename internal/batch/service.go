package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/flexlab/internal/analysis"
	"github.com/ytget/flexlab/internal/config"
	"github.com/ytget/flexlab/internal/dataset"
	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/platform"
)

// TaskIDPrefix prefixes generated task IDs
const TaskIDPrefix = "task-"

// Service handles batch processing of specimen files
type Service struct {
	tasks       map[string]*model.ProcessTask
	tasksMutex  sync.RWMutex
	maxParallel int
	regionSize  float64
	logger      *zap.Logger
	onUpdate    func(*model.ProcessTask) // callback for UI updates
}

// NewService creates a new batch service
func NewService(maxParallel int, regionSize float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if regionSize <= 0 {
		regionSize = analysis.DefaultRegionSize
	}
	return &Service{
		tasks:       make(map[string]*model.ProcessTask),
		maxParallel: config.ClampParallel(maxParallel),
		regionSize:  regionSize,
		logger:      logger,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ProcessTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetMaxParallel sets the maximum number of files processed at once
func (s *Service) SetMaxParallel(max int) {
	s.tasksMutex.Lock()
	s.maxParallel = config.ClampParallel(max)
	s.tasksMutex.Unlock()
}

// SetRegionSize sets the decimal strain limit of the initial fit region
func (s *Service) SetRegionSize(size float64) {
	if size <= 0 {
		return
	}
	s.tasksMutex.Lock()
	s.regionSize = size
	s.tasksMutex.Unlock()
}

// GetTask returns a copy of a task by ID
func (s *Service) GetTask(id string) (*model.ProcessTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns copies of all tasks
func (s *Service) GetAllTasks() []*model.ProcessTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ProcessTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	return tasks
}

// Run processes every CSV file in dir. A failing file is logged and marked
// as an error task; it does not abort the batch. The returned batch keeps
// the sorted discovery order of the files.
func (s *Service) Run(ctx context.Context, dir string) (*model.Batch, error) {
	files, err := platform.ListCSVFiles(dir)
	if err != nil {
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("Found %d CSV files to process", len(files)), zap.String("dir", dir))

	batch := model.NewBatch(dir)
	batch.ID = uuid.NewString()

	s.tasksMutex.Lock()
	for _, path := range files {
		task := &model.ProcessTask{
			ID:       generateTaskID(),
			FilePath: path,
			Status:   model.TaskStatusPending,
		}
		s.tasks[task.ID] = task
		batch.AddTask(task)
	}
	limit := s.maxParallel
	regionSize := s.regionSize
	s.tasksMutex.Unlock()

	batch.UpdateStatus(model.BatchStatusRunning)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, task := range batch.Tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				s.finishTask(task, nil, err)
				return err
			}
			s.startTask(task)
			row, err := ProcessFile(task.FilePath, regionSize)
			s.finishTask(task, row, err)
			return nil
		})
	}
	waitErr := g.Wait()

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	if waitErr != nil {
		batch.Error = waitErr.Error()
		batch.UpdateStatus(model.BatchStatusError)
		return batch, waitErr
	}
	batch.UpdateStatus(model.BatchStatusCompleted)
	return batch, nil
}

// ProcessFile reduces one specimen file to its summary row
func ProcessFile(path string, regionSize float64) (*model.SummaryRow, error) {
	spec, err := dataset.ReadSpecimen(path)
	if err != nil {
		return nil, err
	}

	strength, err := analysis.FlexuralStrength(spec.Stress)
	if err != nil {
		return nil, fmt.Errorf("flexural strength: %w", err)
	}

	modulus, ok, err := analysis.InitialModulus(spec.Stress, spec.Strain, regionSize)
	if err != nil {
		return nil, fmt.Errorf("flexural modulus: %w", err)
	}

	return &model.SummaryRow{
		Filename:   spec.Name,
		Strength:   strength,
		Modulus:    modulus,
		HasModulus: ok,
	}, nil
}

func (s *Service) startTask(task *model.ProcessTask) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusRunning
	task.StartedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) finishTask(task *model.ProcessTask, row *model.SummaryRow, err error) {
	s.tasksMutex.Lock()
	task.FinishedAt = time.Now()
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		task.Status = model.TaskStatusStopped
		task.LastError = err.Error()
	case err != nil:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	default:
		task.Status = model.TaskStatusCompleted
		task.Result = row
	}
	s.tasksMutex.Unlock()

	switch {
	case task.Status == model.TaskStatusStopped:
		s.logger.Warn("Processing cancelled", zap.String("file", task.FilePath))
	case err != nil:
		s.logger.Error(fmt.Sprintf("Error processing %s", task.FilePath),
			zap.String("file", task.FilePath), zap.Error(err))
	case row.HasModulus:
		s.logger.Info(fmt.Sprintf("Successfully processed %s. Strength: %.2f MPa, Modulus: %.2f MPa",
			row.Filename, row.Strength, row.Modulus))
	default:
		s.logger.Warn(fmt.Sprintf("Processed %s without modulus. Strength: %.2f MPa", row.Filename, row.Strength),
			zap.String("file", task.FilePath),
			zap.String("reason", "no usable linear fit in the initial region"))
	}

	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback with a snapshot of the task
func (s *Service) notifyUpdate(task *model.ProcessTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&snapshot)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}
