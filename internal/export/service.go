package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/platform"
)

const (
	TaskIDPrefix = "export-"
	// staged output is written next to the target under this prefix
	partialPrefix = ".partial-"
)

// Job writes one export to path. It should give up when ctx is done.
type Job func(ctx context.Context, path string) error

// Service handles export operations
type Service struct {
	tasks      map[string]*exportEntry
	tasksMutex sync.RWMutex
	logger     *zap.Logger
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

type exportEntry struct {
	task   *model.ExportTask
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new export service
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		tasks:  make(map[string]*exportEntry),
		logger: logger,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// StartExport starts writing outputPath with job in the background
func (s *Service) StartExport(kind model.ExportKind, outputPath string, job Job) (*model.ExportTask, error) {
	if job == nil {
		return nil, errors.New("export job is nil")
	}
	if outputPath == "" {
		return nil, errors.New("export path is empty")
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check if an export to the same file is already in progress
	for _, entry := range s.tasks {
		if entry.task.OutputPath == outputPath && entry.task.Status.IsActive() {
			return nil, fmt.Errorf("export already in progress for file: %s", outputPath)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	entry := &exportEntry{
		task: &model.ExportTask{
			ID:         generateTaskID(),
			Kind:       kind,
			OutputPath: outputPath,
			Status:     model.TaskStatusPending,
			StartedAt:  time.Now(),
		},
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.tasks[entry.task.ID] = entry

	// Start export in background
	go s.runExport(ctx, entry, job)

	snapshot := *entry.task
	return &snapshot, nil
}

// StopExport stops a running export task
func (s *Service) StopExport(taskID string) error {
	s.tasksMutex.Lock()
	entry, exists := s.tasks[taskID]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("export task not found: %s", taskID)
	}
	if entry.task.Status.IsFinished() || entry.task.Status == model.TaskStatusStopping {
		status := entry.task.Status
		s.tasksMutex.Unlock()
		return fmt.Errorf("export task is not active: %s", status)
	}

	// Set stopping status
	entry.task.Status = model.TaskStatusStopping
	s.tasksMutex.Unlock()

	entry.cancel()
	s.notifyUpdate(entry)
	return nil
}

// GetTask returns a copy of an export task by ID
func (s *Service) GetTask(taskID string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	entry, exists := s.tasks[taskID]
	if !exists {
		return nil, false
	}
	snapshot := *entry.task
	return &snapshot, true
}

// Wait blocks until the task finishes and returns its final state. The
// returned error is the export failure, if any.
func (s *Service) Wait(taskID string) (*model.ExportTask, error) {
	s.tasksMutex.RLock()
	entry, exists := s.tasks[taskID]
	s.tasksMutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("export task not found: %s", taskID)
	}

	<-entry.done
	task, _ := s.GetTask(taskID)
	switch task.Status {
	case model.TaskStatusError:
		return task, errors.New(task.LastError)
	case model.TaskStatusStopped:
		return task, context.Canceled
	}
	return task, nil
}

// runExport performs the actual export
func (s *Service) runExport(ctx context.Context, entry *exportEntry, job Job) {
	defer close(entry.done)
	defer entry.cancel()

	s.tasksMutex.Lock()
	if entry.task.Status == model.TaskStatusStopping {
		entry.task.Status = model.TaskStatusStopped
		entry.task.FinishedAt = time.Now()
		s.tasksMutex.Unlock()
		s.notifyUpdate(entry)
		return
	}
	entry.task.Status = model.TaskStatusRunning
	outputPath := entry.task.OutputPath
	s.tasksMutex.Unlock()
	s.notifyUpdate(entry)

	err := writeStaged(ctx, outputPath, job)

	s.tasksMutex.Lock()
	switch {
	case err != nil && ctx.Err() != nil:
		entry.task.Status = model.TaskStatusStopped
	case err != nil:
		entry.task.Status = model.TaskStatusError
		entry.task.LastError = err.Error()
	default:
		entry.task.Status = model.TaskStatusCompleted
	}
	entry.task.FinishedAt = time.Now()
	task := *entry.task
	s.tasksMutex.Unlock()

	switch task.Status {
	case model.TaskStatusCompleted:
		s.logger.Info("Export finished",
			zap.String("kind", string(task.Kind)),
			zap.String("path", task.OutputPath),
			zap.String("elapsed", task.GetElapsedString()))
	case model.TaskStatusStopped:
		s.logger.Warn("Export stopped", zap.String("path", task.OutputPath))
	default:
		s.logger.Error("Export failed", zap.String("path", task.OutputPath), zap.Error(err))
	}
	s.notifyUpdate(entry)
}

// writeStaged runs job against a staging file and moves it into place only
// when the job succeeded
func writeStaged(ctx context.Context, outputPath string, job Job) error {
	dir := filepath.Dir(outputPath)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	staged := filepath.Join(dir, partialPrefix+filepath.Base(outputPath))

	if err := job(ctx, staged); err != nil {
		// Remove partial output file
		os.Remove(staged)
		return err
	}
	if err := ctx.Err(); err != nil {
		os.Remove(staged)
		return err
	}
	if err := os.Rename(staged, outputPath); err != nil {
		os.Remove(staged)
		return fmt.Errorf("failed to move export into place: %w", err)
	}
	return nil
}

// notifyUpdate calls the update callback with a snapshot of the task
func (s *Service) notifyUpdate(entry *exportEntry) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *entry.task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&snapshot)
	}
}

// generateTaskID generates a time-ordered unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
