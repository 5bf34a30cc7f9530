package ui

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flexlab/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	rawDirEntry       *widget.Entry
	processedDirEntry *widget.Entry
	strainMinEntry    *widget.Entry
	strainMaxEntry    *widget.Entry
	toleranceEntry    *widget.Entry
	maxParallelEntry  *widget.Entry
	languageSelect    *widget.Select
	autoRevealCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.rawDirEntry = widget.NewEntry()
	sd.rawDirEntry.SetPlaceHolder(config.DefaultRawDataDir)
	rawDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(IconFolder+" "+text(KeyBrowse), func() { sd.browseInto(sd.rawDirEntry) }), sd.rawDirEntry)

	sd.processedDirEntry = widget.NewEntry()
	sd.processedDirEntry.SetPlaceHolder(config.DefaultProcessedDir)
	processedDirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton(IconFolder+" "+text(KeyBrowse), func() { sd.browseInto(sd.processedDirEntry) }), sd.processedDirEntry)

	sd.strainMinEntry = widget.NewEntry()
	sd.strainMaxEntry = widget.NewEntry()
	windowRow := container.NewGridWithColumns(2, sd.strainMinEntry, sd.strainMaxEntry)

	sd.toleranceEntry = widget.NewEntry()
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-10")

	languageOptions := make([]string, 0)
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(text(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyRawDataDirectory)),
		rawDirRow,
		widget.NewLabel(text(KeyProcessedDirectory)),
		processedDirRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyDefaultWindow)),
		windowRow,
		widget.NewLabel(text(KeyDragTolerance)),
		sd.toleranceEntry,
		widget.NewLabel(text(KeyMaxParallel)),
		sd.maxParallelEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	lo, hi := sd.settings.GetStrainWindow()

	sd.rawDirEntry.SetText(sd.settings.GetRawDataDirectory())
	sd.processedDirEntry.SetText(sd.settings.GetProcessedDirectory())
	sd.strainMinEntry.SetText(formatFloat(lo))
	sd.strainMaxEntry.SetText(formatFloat(hi))
	sd.toleranceEntry.SetText(formatFloat(sd.settings.GetDragTolerance()))
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallel()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnExport())
}

// browseInto lets the user pick a directory for entry
func (sd *SettingsDialog) browseInto(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings. Invalid numbers keep the stored value.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.rawDirEntry.Text); dir != "" {
		sd.settings.SetRawDataDirectory(dir)
	}
	if dir := strings.TrimSpace(sd.processedDirEntry.Text); dir != "" {
		sd.settings.SetProcessedDirectory(dir)
	}

	lo, errLo := parseFloat(sd.strainMinEntry.Text)
	hi, errHi := parseFloat(sd.strainMaxEntry.Text)
	if errLo == nil && errHi == nil {
		sd.settings.SetStrainWindow(lo, hi)
	}
	if tol, err := parseFloat(sd.toleranceEntry.Text); err == nil {
		sd.settings.SetDragTolerance(tol)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(sd.maxParallelEntry.Text)); err == nil {
		sd.settings.SetMaxParallel(n)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetAutoRevealOnExport(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// formatFloat renders a number for an entry field
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, EntryFloatFormat, -1, 64)
}

// parseFloat reads a finite number from an entry field
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
