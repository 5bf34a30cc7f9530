package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDirectories(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetRawDataDirectory(); dir != DefaultRawDataDir {
		t.Errorf("Expected default raw dir %s, got %s", DefaultRawDataDir, dir)
	}
	if dir := settings.GetProcessedDirectory(); dir != DefaultProcessedDir {
		t.Errorf("Expected default processed dir %s, got %s", DefaultProcessedDir, dir)
	}

	settings.SetRawDataDirectory("/lab/bend/raw")
	if dir := settings.GetRawDataDirectory(); dir != "/lab/bend/raw" {
		t.Errorf("Expected raw dir /lab/bend/raw, got %s", dir)
	}

	settings.SetProcessedDirectory("")
	if dir := settings.GetProcessedDirectory(); dir != DefaultProcessedDir {
		t.Errorf("Empty processed dir should default to %s, got %s", DefaultProcessedDir, dir)
	}
}

func TestStrainWindow(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	lo, hi := settings.GetStrainWindow()
	if lo != DefaultStrainMin || hi != DefaultStrainMax {
		t.Errorf("Expected default window %g..%g, got %g..%g", DefaultStrainMin, DefaultStrainMax, lo, hi)
	}

	settings.SetStrainWindow(0.5, 0.05)
	lo, hi = settings.GetStrainWindow()
	if lo != 0.05 || hi != 0.5 {
		t.Errorf("Expected ordered window 0.05..0.5, got %g..%g", lo, hi)
	}
}

func TestDragTolerance(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if tol := settings.GetDragTolerance(); tol != DefaultDragTolerance {
		t.Errorf("Expected default tolerance %g, got %g", DefaultDragTolerance, tol)
	}

	settings.SetDragTolerance(0.25)
	if tol := settings.GetDragTolerance(); tol != 0.25 {
		t.Errorf("Expected tolerance 0.25, got %g", tol)
	}

	settings.SetDragTolerance(-1)
	if tol := settings.GetDragTolerance(); tol != DefaultDragTolerance {
		t.Errorf("Negative tolerance should reset to default, got %g", tol)
	}
}

func TestMaxParallel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if maxParallel := settings.GetMaxParallel(); maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	settings.SetMaxParallel(5)
	if settings.GetMaxParallel() != 5 {
		t.Errorf("Expected max parallel 5, got %d", settings.GetMaxParallel())
	}

	settings.SetMaxParallel(0) // Should be clamped to 1
	if settings.GetMaxParallel() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallel(15) // Should be clamped to 10
	if settings.GetMaxParallel() != 10 {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestAutoRevealOnExport(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnExport() != DefaultAutoRevealExported {
		t.Error("Expected default auto reveal value")
	}
	settings.SetAutoRevealOnExport(true)
	if !settings.GetAutoRevealOnExport() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
