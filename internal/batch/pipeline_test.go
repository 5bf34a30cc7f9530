package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/flexlab/internal/config"
)

func TestProcessDirectory(t *testing.T) {
	raw := fixtureDir(t)
	out := filepath.Join(t.TempDir(), "processed_data")

	params := config.DefaultParams()
	params.RawDataDir = raw
	params.ProcessedDir = out
	params.Workbook = true

	report, err := ProcessDirectory(context.Background(), NewService(2, params.RegionSize, nil), params, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if report.Files != 3 || report.Processed != 2 || report.Failed != 1 {
		t.Errorf("Unexpected report: %+v", report)
	}

	data, err := os.ReadFile(filepath.Join(out, "flexural_strength_summary.csv"))
	if err != nil {
		t.Fatalf("Summary not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "a.csv,60,") {
		t.Errorf("Unexpected first row: %s", lines[1])
	}
	if lines[2] != "b.csv,50," {
		t.Errorf("Expected empty modulus cell for b.csv, got %s", lines[2])
	}

	if _, err := os.Stat(report.Workbook); err != nil {
		t.Errorf("Workbook not written: %v", err)
	}
}
