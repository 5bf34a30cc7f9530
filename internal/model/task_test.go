package model

import (
	"testing"
	"time"
)

func TestProcessTask_GetElapsedString(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		started  time.Time
		finished time.Time
		expected string
	}{
		{time.Time{}, time.Time{}, "—"},
		{start, time.Time{}, "—"},
		{start, start.Add(-time.Second), "—"},
		{start, start.Add(250 * time.Millisecond), "00:00.250"},
		{start, start.Add(90 * time.Second), "01:30.000"},
		{start, start.Add(61*time.Minute + 1500*time.Millisecond), "61:01.500"},
	}

	for _, test := range tests {
		task := &ProcessTask{StartedAt: test.started, FinishedAt: test.finished}
		result := task.GetElapsedString()
		if result != test.expected {
			t.Errorf("GetElapsedString() = %s, expected %s", result, test.expected)
		}
	}
}

func TestProcessTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"raw_data/PLA_01.csv", "PLA_01"},
		{"/lab/raw_data/specimen.2.csv", "specimen.2"},
		{"noext", "noext"},
		{"", ""},
	}

	for _, test := range tests {
		task := &ProcessTask{FilePath: test.path}
		result := task.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with path='%s' = '%s', expected '%s'", test.path, result, test.expected)
		}
	}
}

func TestBatch_ErrorsAndRows(t *testing.T) {
	batch := NewBatch("raw_data")
	if batch.Status != BatchStatusReady {
		t.Errorf("Expected status ready, got %s", batch.Status)
	}
	if batch.HasErrors() {
		t.Error("Expected no errors for empty batch")
	}

	batch.AddTask(&ProcessTask{ID: "a", Status: TaskStatusCompleted, Result: &SummaryRow{Filename: "a.csv", Strength: 80}})
	batch.AddTask(&ProcessTask{ID: "b", Status: TaskStatusError, LastError: "bad"})
	batch.AddTask(&ProcessTask{ID: "c", Status: TaskStatusPending})
	batch.AddTask(&ProcessTask{ID: "d", Status: TaskStatusCompleted, Result: &SummaryRow{Filename: "d.csv", Strength: 95}})

	if !batch.HasErrors() {
		t.Error("Expected batch to report errors")
	}
	if got := len(batch.GetFailedTasks()); got != 1 {
		t.Errorf("Expected 1 failed task, got %d", got)
	}

	rows := batch.SummaryRows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 summary rows, got %d", len(rows))
	}
	if rows[0].Filename != "a.csv" || rows[1].Filename != "d.csv" {
		t.Errorf("Rows out of task order: %+v", rows)
	}
}

func TestCurve_Bounds(t *testing.T) {
	c := &Curve{Strain: []float64{0.5, 0, 2}, Stress: []float64{10, -1, 40}}
	smin, smax, tmin, tmax, ok := c.Bounds()
	if !ok {
		t.Fatal("Expected bounds for non-empty curve")
	}
	if smin != 0 || smax != 2 || tmin != -1 || tmax != 40 {
		t.Errorf("Unexpected bounds %v %v %v %v", smin, smax, tmin, tmax)
	}

	empty := &Curve{}
	if _, _, _, _, ok := empty.Bounds(); ok {
		t.Error("Expected ok=false for empty curve")
	}
}
