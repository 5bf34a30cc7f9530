package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParams_Defaults(t *testing.T) {
	wd, _ := os.Getwd()
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	p, err := LoadParams("")
	if err != nil {
		t.Fatalf("Expected defaults without a params file, got %v", err)
	}
	if p != DefaultParams() {
		t.Errorf("Expected default params, got %+v", p)
	}
}

func TestLoadParams_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flexlab.yaml")
	content := "raw_data_dir: specimens\nregion_size: 0.01\nstrain_min: 0.4\nstrain_max: 0.1\nmax_parallel: 40\nworkbook: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if p.RawDataDir != "specimens" {
		t.Errorf("Expected raw dir 'specimens', got %s", p.RawDataDir)
	}
	if p.ProcessedDir != DefaultProcessedDir {
		t.Errorf("Unset keys should keep defaults, got %s", p.ProcessedDir)
	}
	if p.RegionSize != 0.01 {
		t.Errorf("Expected region size 0.01, got %g", p.RegionSize)
	}
	if p.StrainMin != 0.1 || p.StrainMax != 0.4 {
		t.Errorf("Expected swapped window 0.1..0.4, got %g..%g", p.StrainMin, p.StrainMax)
	}
	if p.MaxParallel != 10 {
		t.Errorf("Expected clamped max parallel 10, got %d", p.MaxParallel)
	}
	if !p.Workbook {
		t.Error("Expected workbook export enabled")
	}
	if p.SummaryPath() != filepath.Join(DefaultProcessedDir, DefaultSummaryFile) {
		t.Errorf("Unexpected summary path %s", p.SummaryPath())
	}
}

func TestLoadParams_Errors(t *testing.T) {
	if _, err := LoadParams(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for explicit missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("region_size: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(path); err == nil {
		t.Error("Expected validation error for negative region size")
	}

	path = filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("region_size: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(path); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}
