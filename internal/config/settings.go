package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyRawDataDir         = "raw_data_directory"
	KeyProcessedDir       = "processed_data_directory"
	KeyStrainMin          = "strain_min"
	KeyStrainMax          = "strain_max"
	KeyDragTolerance      = "drag_tolerance"
	KeyMaxParallel        = "max_parallel_files"
	KeyLanguage           = "app_language"
	KeyAutoRevealExported = "auto_reveal_on_export"
)

// Default values
const (
	DefaultRawDataDir         = "raw_data"
	DefaultProcessedDir       = "processed_data"
	DefaultLogsDir            = "logs"
	DefaultStrainMin          = 0.01
	DefaultStrainMax          = 0.2
	DefaultRegionSize         = 0.02
	DefaultDragTolerance      = 0.1
	DefaultMaxParallel        = 2
	DefaultDPI                = 300
	DefaultLanguage           = "system"
	DefaultAutoRevealExported = false

	DefaultSummaryFile      = "flexural_strength_summary.csv"
	DefaultStrengthPlotFile = "flexural_strength_plot.png"
	DefaultModulusPlotFile  = "flexural_modulus_plot.png"
	DefaultResultsFile      = "modulus_results.csv"
)

// Settings manages GUI configuration stored in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetRawDataDirectory returns the directory holding specimen CSV files
func (s *Settings) GetRawDataDirectory() string {
	dir := s.app.Preferences().String(KeyRawDataDir)
	if dir == "" {
		s.SetRawDataDirectory(DefaultRawDataDir)
		return DefaultRawDataDir
	}
	return dir
}

// SetRawDataDirectory sets the raw data directory
func (s *Settings) SetRawDataDirectory(dir string) {
	if dir == "" {
		dir = DefaultRawDataDir
	}
	s.app.Preferences().SetString(KeyRawDataDir, dir)
}

// GetProcessedDirectory returns the output directory for summaries and plots
func (s *Settings) GetProcessedDirectory() string {
	dir := s.app.Preferences().String(KeyProcessedDir)
	if dir == "" {
		s.SetProcessedDirectory(DefaultProcessedDir)
		return DefaultProcessedDir
	}
	return dir
}

// SetProcessedDirectory sets the output directory
func (s *Settings) SetProcessedDirectory(dir string) {
	if dir == "" {
		dir = DefaultProcessedDir
	}
	s.app.Preferences().SetString(KeyProcessedDir, dir)
}

// GetStrainWindow returns the initial fit window in percent strain
func (s *Settings) GetStrainWindow() (float64, float64) {
	lo := s.app.Preferences().FloatWithFallback(KeyStrainMin, DefaultStrainMin)
	hi := s.app.Preferences().FloatWithFallback(KeyStrainMax, DefaultStrainMax)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// SetStrainWindow stores the initial fit window; bounds are ordered
func (s *Settings) SetStrainWindow(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	s.app.Preferences().SetFloat(KeyStrainMin, lo)
	s.app.Preferences().SetFloat(KeyStrainMax, hi)
}

// GetDragTolerance returns how close (in percent strain) a press must be to grab a marker
func (s *Settings) GetDragTolerance() float64 {
	value := s.app.Preferences().Float(KeyDragTolerance)
	if value <= 0 {
		s.SetDragTolerance(DefaultDragTolerance)
		return DefaultDragTolerance
	}
	return value
}

// SetDragTolerance sets the marker grab tolerance
func (s *Settings) SetDragTolerance(tol float64) {
	if tol <= 0 {
		tol = DefaultDragTolerance
	}
	s.app.Preferences().SetFloat(KeyDragTolerance, tol)
}

// GetMaxParallel returns the maximum number of files processed at once
func (s *Settings) GetMaxParallel() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallel(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallel sets the maximum number of files processed at once
func (s *Settings) SetMaxParallel(count int) {
	s.app.Preferences().SetInt(KeyMaxParallel, ClampParallel(count))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnExport returns whether exported files are revealed in the file manager
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExported, DefaultAutoRevealExported)
}

// SetAutoRevealOnExport sets whether exported files are revealed in the file manager
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExported, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ClampParallel bounds a worker count to 1..10
func ClampParallel(count int) int {
	if count < 1 {
		return 1
	}
	if count > 10 {
		return 10
	}
	return count
}
