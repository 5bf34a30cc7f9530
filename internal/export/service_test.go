package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/render"
)

func writeFileJob(content string) Job {
	return func(ctx context.Context, path string) error {
		return os.WriteFile(path, []byte(content), 0o644)
	}
}

// blockingJob waits until release is closed or the context is cancelled
func blockingJob(started chan<- struct{}, release <-chan struct{}) Job {
	return func(ctx context.Context, path string) error {
		close(started)
		select {
		case <-release:
			return os.WriteFile(path, []byte("late"), 0o644)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func TestNewService(t *testing.T) {
	service := NewService(nil)

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}
}

func TestStartExport_Invalid(t *testing.T) {
	service := NewService(nil)

	if _, err := service.StartExport(model.ExportModulusCSV, "out.csv", nil); err == nil {
		t.Error("Expected error for nil job, got nil")
	}
	if _, err := service.StartExport(model.ExportModulusCSV, "", writeFileJob("x")); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestStartExport_Completes(t *testing.T) {
	service := NewService(nil)
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	task, err := service.StartExport(model.ExportModulusCSV, path, writeFileJob("a,b\n"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if task.Status != model.TaskStatusPending {
		t.Errorf("Expected status to be Pending, got %s", task.Status)
	}

	final, err := service.Wait(task.ID)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if final.Status != model.TaskStatusCompleted {
		t.Errorf("Expected Completed, got %s", final.Status)
	}
	if final.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if string(data) != "a,b\n" {
		t.Errorf("Unexpected content %q", data)
	}

	// no staging file left behind
	if _, err := os.Stat(filepath.Join(filepath.Dir(path), partialPrefix+"out.csv")); !os.IsNotExist(err) {
		t.Errorf("Staging file should be removed, stat err = %v", err)
	}
}

func TestStartExport_JobError(t *testing.T) {
	service := NewService(nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	task, err := service.StartExport(model.ExportModulusCSV, path, func(ctx context.Context, p string) error {
		if err := os.WriteFile(p, []byte("partial"), 0o644); err != nil {
			return err
		}
		return errors.New("disk full")
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	final, err := service.Wait(task.ID)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Expected 'disk full' error, got: %v", err)
	}
	if final.Status != model.TaskStatusError {
		t.Errorf("Expected Error status, got %s", final.Status)
	}
	if final.LastError != "disk full" {
		t.Errorf("LastError = %q", final.LastError)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Output should not exist after a failed export")
	}
}

func TestStartExport_DuplicateAndStop(t *testing.T) {
	service := NewService(nil)
	path := filepath.Join(t.TempDir(), "out.csv")

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	task, err := service.StartExport(model.ExportModulusCSV, path, blockingJob(started, release))
	if err != nil {
		t.Fatalf("Expected no error for first export, got: %v", err)
	}
	<-started

	_, err = service.StartExport(model.ExportModulusCSV, path, writeFileJob("x"))
	if err == nil || !strings.Contains(err.Error(), "already in progress") {
		t.Errorf("Expected 'already in progress' error, got: %v", err)
	}

	if err := service.StopExport(task.ID); err != nil {
		t.Fatalf("StopExport() error = %v", err)
	}
	final, err := service.Wait(task.ID)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if final.Status != model.TaskStatusStopped {
		t.Errorf("Expected Stopped, got %s", final.Status)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Output should not exist after a stopped export")
	}

	if err := service.StopExport(task.ID); err == nil {
		t.Error("Expected error stopping a finished task")
	}
	if err := service.StopExport("missing"); err == nil {
		t.Error("Expected error for unknown task")
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService(nil)

	var mu sync.Mutex
	var statuses []model.TaskStatus
	service.SetUpdateCallback(func(task *model.ExportTask) {
		mu.Lock()
		statuses = append(statuses, task.Status)
		mu.Unlock()
	})

	task, err := service.StartExport(model.ExportSummaryCSV, filepath.Join(t.TempDir(), "s.csv"), writeFileJob("x"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := service.Wait(task.ID); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []model.TaskStatus{model.TaskStatusRunning, model.TaskStatusCompleted}
	if len(statuses) != len(want) {
		t.Fatalf("Expected %d updates, got %v", len(want), statuses)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("Update %d: expected %s, got %s", i, want[i], statuses[i])
		}
	}
}

func TestWait_Unknown(t *testing.T) {
	service := NewService(nil)
	if _, err := service.Wait("nope"); err == nil {
		t.Error("Expected error for unknown task")
	}
}

func TestJobs(t *testing.T) {
	dir := t.TempDir()
	service := NewService(nil)

	results := []model.ModulusResult{{Filename: "a.csv", StrainMin: 0.01, StrainMax: 0.2, Modulus: 3000}}
	rows := []model.SummaryRow{{Filename: "a.csv", Strength: 60, Modulus: 3000, HasModulus: true}}

	tests := []struct {
		kind model.ExportKind
		name string
		job  func() (Job, error)
	}{
		{model.ExportModulusCSV, "modulus_results.csv", func() (Job, error) { return ModulusResultsJob(model.ExportModulusCSV, results) }},
		{model.ExportModulusXLSX, "modulus_results.xlsx", func() (Job, error) { return ModulusResultsJob(model.ExportModulusXLSX, results) }},
		{model.ExportSummaryCSV, "summary.csv", func() (Job, error) { return SummaryJob(model.ExportSummaryCSV, rows, render.BarOptions{}) }},
		{model.ExportSummaryXLSX, "summary.xlsx", func() (Job, error) { return SummaryJob(model.ExportSummaryXLSX, rows, render.BarOptions{}) }},
		{model.ExportStrengthPlot, "strength.png", func() (Job, error) {
			return SummaryJob(model.ExportStrengthPlot, rows, render.BarOptions{DPI: 40})
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			job, err := tt.job()
			if err != nil {
				t.Fatalf("job error = %v", err)
			}
			path := filepath.Join(dir, tt.name)
			task, err := service.StartExport(tt.kind, path, job)
			if err != nil {
				t.Fatalf("StartExport() error = %v", err)
			}
			if _, err := service.Wait(task.ID); err != nil {
				t.Fatalf("Wait() error = %v", err)
			}
			if info, err := os.Stat(path); err != nil || info.Size() == 0 {
				t.Errorf("Expected non-empty %s, err = %v", path, err)
			}
		})
	}

	if _, err := ModulusResultsJob(model.ExportSummaryCSV, results); err == nil {
		t.Error("Expected error for wrong results kind")
	}
	if _, err := SummaryJob(model.ExportModulusCSV, rows, render.BarOptions{}); err == nil {
		t.Error("Expected error for wrong summary kind")
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	time.Sleep(1 * time.Millisecond) // Ensure different timestamp
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", TaskIDPrefix, id1)
	}
}
