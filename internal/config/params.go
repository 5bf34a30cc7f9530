package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultParamsFile is looked up in the working directory when no file is given
const DefaultParamsFile = "flexlab.yaml"

// Params holds the analysis parameters used by the command line tools
type Params struct {
	RawDataDir   string  `yaml:"raw_data_dir"`
	ProcessedDir string  `yaml:"processed_data_dir"`
	LogsDir      string  `yaml:"logs_dir"`
	RegionSize   float64 `yaml:"region_size"` // decimal strain
	StrainMin    float64 `yaml:"strain_min"`  // percent
	StrainMax    float64 `yaml:"strain_max"`  // percent
	DPI          float64 `yaml:"dpi"`
	MaxParallel  int     `yaml:"max_parallel"`
	Workbook     bool    `yaml:"workbook"`
}

// DefaultParams returns the parameters used when nothing is configured
func DefaultParams() Params {
	return Params{
		RawDataDir:   DefaultRawDataDir,
		ProcessedDir: DefaultProcessedDir,
		LogsDir:      DefaultLogsDir,
		RegionSize:   DefaultRegionSize,
		StrainMin:    DefaultStrainMin,
		StrainMax:    DefaultStrainMax,
		DPI:          DefaultDPI,
		MaxParallel:  DefaultMaxParallel,
	}
}

// LoadParams reads parameters from a YAML file on top of the defaults.
// A missing file is not an error when path is the default file name.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	explicit := path != ""
	if !explicit {
		path = DefaultParamsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return p, nil
		}
		return p, fmt.Errorf("failed to read params %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse params %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid params %s: %w", path, err)
	}
	return p, nil
}

// Validate checks parameter ranges and normalises the strain window
func (p *Params) Validate() error {
	if p.RegionSize <= 0 {
		return fmt.Errorf("region_size must be positive, got %g", p.RegionSize)
	}
	if p.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %g", p.DPI)
	}
	if p.StrainMin > p.StrainMax {
		p.StrainMin, p.StrainMax = p.StrainMax, p.StrainMin
	}
	p.MaxParallel = ClampParallel(p.MaxParallel)
	if p.RawDataDir == "" {
		p.RawDataDir = DefaultRawDataDir
	}
	if p.ProcessedDir == "" {
		p.ProcessedDir = DefaultProcessedDir
	}
	if p.LogsDir == "" {
		p.LogsDir = DefaultLogsDir
	}
	return nil
}

// SummaryPath returns the summary CSV location
func (p Params) SummaryPath() string {
	return filepath.Join(p.ProcessedDir, DefaultSummaryFile)
}

// StrengthPlotPath returns the strength bar chart location
func (p Params) StrengthPlotPath() string {
	return filepath.Join(p.ProcessedDir, DefaultStrengthPlotFile)
}

// ModulusPlotPath returns the modulus bar chart location
func (p Params) ModulusPlotPath() string {
	return filepath.Join(p.ProcessedDir, DefaultModulusPlotFile)
}
