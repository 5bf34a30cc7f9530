package review

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/analysis"
	"github.com/ytget/flexlab/internal/dataset"
	"github.com/ytget/flexlab/internal/model"
)

var (
	ErrNoFit       = errors.New("no valid modulus fit for the current window")
	ErrNoResults   = errors.New("no results to export")
	ErrNoFile      = errors.New("no file selected")
	ErrUnknownFile = errors.New("file is not in the list")
)

// Loader reads the curve of a specimen file
type Loader func(path string) (*model.Curve, error)

// Session is an interactive review over the CSV files of one directory.
// It is not safe for concurrent use.
type Session struct {
	dir    string
	files  []string
	index  int
	window analysis.Window
	loader Loader
	logger *zap.Logger

	curve   *model.Curve
	fit     *analysis.WindowFit
	loadErr error

	results []model.ModulusResult
}

// NewSession creates a session over files (base names inside dir) and loads
// the first one
func NewSession(dir string, files []string, window analysis.Window, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		dir:    dir,
		files:  slices.Clone(files),
		window: window.Normalize(),
		loader: dataset.ReadCurve,
		logger: logger,
	}
	if len(s.files) > 0 {
		s.load()
	}
	return s
}

// SetLoader replaces the curve reader and reloads the current file
func (s *Session) SetLoader(loader Loader) {
	if loader == nil {
		return
	}
	s.loader = loader
	if !s.Done() {
		s.load()
	}
}

// Dir returns the directory the files live in
func (s *Session) Dir() string {
	return s.dir
}

// Files returns the file names
func (s *Session) Files() []string {
	return slices.Clone(s.files)
}

// Index returns the current file position. It equals len(Files()) once the
// last file was accepted.
func (s *Session) Index() int {
	return s.index
}

// Current returns the current file name, or "" when done
func (s *Session) Current() string {
	if s.Done() {
		return ""
	}
	return s.files[s.index]
}

// Done reports whether every file has been passed
func (s *Session) Done() bool {
	return s.index >= len(s.files)
}

// Progress returns "File i of n"
func (s *Session) Progress() string {
	n := len(s.files)
	return fmt.Sprintf("File %d of %d", min(s.index+1, n), n)
}

// Curve returns the loaded curve of the current file
func (s *Session) Curve() *model.Curve {
	return s.curve
}

// LoadError returns the error of the last load, if any
func (s *Session) LoadError() error {
	return s.loadErr
}

// Window returns the current strain window in percent
func (s *Session) Window() analysis.Window {
	return s.window
}

// Fit returns the fit of the current window, nil when there is none
func (s *Session) Fit() *analysis.WindowFit {
	return s.fit
}

// Modulus returns the modulus of the current fit
func (s *Session) Modulus() (float64, bool) {
	if s.fit == nil {
		return 0, false
	}
	return s.fit.Modulus, true
}

// ModulusText returns the modulus label
func (s *Session) ModulusText() string {
	if m, ok := s.Modulus(); ok {
		return fmt.Sprintf("Modulus: %.0f MPa", m)
	}
	return "Modulus: --"
}

// Select makes name the current file and loads it
func (s *Session) Select(name string) error {
	i := slices.Index(s.files, name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownFile, name)
	}
	s.index = i
	return s.load()
}

// SetWindow sets the strain window, in either order, and refits
func (s *Session) SetWindow(lo, hi float64) {
	s.window = analysis.NewWindow(lo, hi)
	s.refit()
}

// Accept records the current fit and moves to the next file
func (s *Session) Accept() (model.ModulusResult, error) {
	if s.Done() {
		return model.ModulusResult{}, ErrNoFile
	}
	if s.fit == nil {
		return model.ModulusResult{}, ErrNoFit
	}

	res := model.ModulusResult{
		Filename:  s.files[s.index],
		StrainMin: s.window.Lo,
		StrainMax: s.window.Hi,
		Modulus:   s.fit.Modulus,
	}
	if i := slices.IndexFunc(s.results, func(r model.ModulusResult) bool { return r.Filename == res.Filename }); i >= 0 {
		s.results = slices.Delete(s.results, i, i+1)
	}
	s.results = append(s.results, res)
	s.logger.Info("Accepted modulus",
		zap.String("file", res.Filename),
		zap.Float64("strain_min", res.StrainMin),
		zap.Float64("strain_max", res.StrainMax),
		zap.Float64("modulus", res.Modulus))

	s.index++
	if s.Done() {
		s.curve, s.fit, s.loadErr = nil, nil, nil
		s.logger.Info("All files processed", zap.Int("results", len(s.results)))
	} else {
		s.load()
	}
	return res, nil
}

// Results returns the accepted results in acceptance order
func (s *Session) Results() []model.ModulusResult {
	return slices.Clone(s.results)
}

// Export writes the accepted results as CSV
func (s *Session) Export(path string) error {
	if len(s.results) == 0 {
		return ErrNoResults
	}
	if err := dataset.WriteModulusResults(path, s.results); err != nil {
		return err
	}
	s.logger.Info("Results exported", zap.String("path", path), zap.Int("count", len(s.results)))
	return nil
}

// Refresh replaces the file list, keeping the current file when it is still
// listed. A finished session resumes at the first file without a result.
func (s *Session) Refresh(files []string) {
	current := s.Current()
	wasDone := s.Done() && len(s.files) > 0
	s.files = slices.Clone(files)

	if current != "" {
		if i := slices.Index(s.files, current); i >= 0 {
			s.index = i
			return
		}
	}
	s.index = 0
	if wasDone {
		// continue with the first file that has no result yet
		s.index = len(s.files)
		for i, name := range s.files {
			if !slices.ContainsFunc(s.results, func(r model.ModulusResult) bool { return r.Filename == name }) {
				s.index = i
				break
			}
		}
		if s.Done() {
			return
		}
	}
	s.curve, s.fit, s.loadErr = nil, nil, nil
	if len(s.files) > 0 {
		s.load()
	}
}

// load reads the current file and refits
func (s *Session) load() error {
	s.curve, s.fit = nil, nil
	path := filepath.Join(s.dir, s.files[s.index])
	curve, err := s.loader(path)
	if err != nil {
		s.loadErr = fmt.Errorf("failed to load %s: %w", s.files[s.index], err)
		s.logger.Error("Failed to load file", zap.String("file", path), zap.Error(err))
		return s.loadErr
	}
	s.loadErr = nil
	s.curve = curve
	s.refit()
	return nil
}

func (s *Session) refit() {
	s.fit = nil
	if s.curve == nil {
		return
	}
	fit, ok, err := analysis.WindowModulus(s.curve.Strain, s.curve.Stress, s.window)
	if err != nil {
		s.logger.Warn("Fit failed", zap.String("file", s.curve.Name), zap.Error(err))
		return
	}
	if !ok {
		s.logger.Debug("Too few points in window",
			zap.String("file", s.curve.Name),
			zap.Float64("strain_min", s.window.Lo),
			zap.Float64("strain_max", s.window.Hi))
		return
	}
	s.fit = fit
	s.logger.Debug("Window fit",
		zap.String("file", s.curve.Name),
		zap.Int("points", fit.Fit.N),
		zap.Float64("strain_min", fit.StrainMin),
		zap.Float64("strain_max", fit.StrainMax),
		zap.Float64("stress_min", fit.StressMin),
		zap.Float64("stress_max", fit.StressMax),
		zap.Float64("modulus", fit.Modulus))
}
