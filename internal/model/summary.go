package model

import (
	"time"
)

// Summary file headers
const (
	SummaryColumnFilename = "Filename"
	SummaryColumnStrength = "Flexural Strength (MPa)"
	SummaryColumnModulus  = "Flexural Modulus (MPa)"
)

// Modulus results headers
const (
	ResultColumnFilename  = "filename"
	ResultColumnStrainMin = "strain_min"
	ResultColumnStrainMax = "strain_max"
	ResultColumnModulus   = "modulus"
)

// SummaryRow is one line of the flexural summary
type SummaryRow struct {
	Filename   string
	Strength   float64 // MPa
	Modulus    float64 // MPa, meaningful only when HasModulus
	HasModulus bool
}

// ModulusResult is an accepted manual modulus fit
type ModulusResult struct {
	Filename  string
	StrainMin float64 // percent
	StrainMax float64 // percent
	Modulus   float64 // MPa
}

// BatchStatus represents the current status of a processing batch
type BatchStatus string

const (
	BatchStatusReady     BatchStatus = "ready"
	BatchStatusRunning   BatchStatus = "running"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusError     BatchStatus = "error"
)

// Batch groups the per-file tasks of one processing run. Task order is the
// discovery order of the input files.
type Batch struct {
	ID        string
	Dir       string
	Tasks     []*ProcessTask
	Status    BatchStatus
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBatch creates a new batch for the given input directory
func NewBatch(dir string) *Batch {
	now := time.Now()
	return &Batch{
		Dir:       dir,
		Status:    BatchStatusReady,
		Tasks:     make([]*ProcessTask, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddTask adds a task to the batch
func (b *Batch) AddTask(task *ProcessTask) {
	b.Tasks = append(b.Tasks, task)
	b.UpdatedAt = time.Now()
}

// UpdateStatus updates the batch status
func (b *Batch) UpdateStatus(status BatchStatus) {
	b.Status = status
	b.UpdatedAt = time.Now()
}

// GetFailedTasks returns all tasks that ended with an error
func (b *Batch) GetFailedTasks() []*ProcessTask {
	return b.tasksWithStatus(TaskStatusError)
}

func (b *Batch) tasksWithStatus(status TaskStatus) []*ProcessTask {
	var out []*ProcessTask
	for _, task := range b.Tasks {
		if task.Status == status {
			out = append(out, task)
		}
	}
	return out
}

// HasErrors checks if any task failed
func (b *Batch) HasErrors() bool {
	return len(b.GetFailedTasks()) > 0
}

// SummaryRows returns the results of completed tasks in task order
func (b *Batch) SummaryRows() []SummaryRow {
	rows := make([]SummaryRow, 0, len(b.Tasks))
	for _, task := range b.Tasks {
		if task.Status == TaskStatusCompleted && task.Result != nil {
			rows = append(rows, *task.Result)
		}
	}
	return rows
}
