package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/flexlab/internal/analysis"
	"github.com/ytget/flexlab/internal/batch"
	"github.com/ytget/flexlab/internal/config"
	"github.com/ytget/flexlab/internal/dataset"
	"github.com/ytget/flexlab/internal/export"
	"github.com/ytget/flexlab/internal/model"
	"github.com/ytget/flexlab/internal/platform"
	"github.com/ytget/flexlab/internal/render"
	"github.com/ytget/flexlab/internal/review"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	exportSvc export.Exporter
	batchSvc  batch.Processor

	session *review.Session
	drag    *review.Drag
	results []model.ModulusResult

	// Parameters given on the command line take precedence over the stored
	// settings until the settings dialog is saved
	override *config.Params

	watcher     *platform.DirWatcher
	stopWatcher context.CancelFunc

	// Controls
	chart         *ChartView
	fileSelect    *widget.Select
	progressLabel *widget.Label
	minLabel      *widget.Label
	maxLabel      *widget.Label
	minEntry      *windowEntry
	maxEntry      *windowEntry
	modulusLabel  *widget.Label
	acceptBtn     *widget.Button
	exportBtn     *widget.Button
	resultsLabel  *widget.Label
	resultList    *widget.List

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	revealBtn             *widget.Button
	copyPathBtn           *widget.Button
	notificationPath      string
	notificationSeq       int

	updatingSelect bool
	processing     bool
	lastDragRender time.Time
}

// NewRootUI creates and initializes the main UI. A non-nil params replaces
// the stored directories, strain window and batch parameters.
func NewRootUI(window fyne.Window, app fyne.App, exportSvc export.Exporter, batchSvc batch.Processor, params *config.Params, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		exportSvc:    exportSvc,
		batchSvc:     batchSvc,
		override:     params,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Service updates arrive on worker goroutines
	ui.exportSvc.SetUpdateCallback(ui.onExportUpdate)
	ui.batchSvc.SetUpdateCallback(ui.onProcessUpdate)

	ui.setupUI()
	ui.loadDirectory()
	ui.startWatcher()

	logger.Debug("UI setup completed")
	return ui
}

// Session returns the current review session
func (ui *RootUI) Session() *review.Session {
	return ui.session
}

// Close stops background watchers
func (ui *RootUI) Close() {
	ui.stopDirWatcher()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	text := ui.localization.GetText

	ui.chart = NewChartView()
	ui.chart.OnPress = ui.onChartPress
	ui.chart.OnDrag = ui.onChartDrag
	ui.chart.OnRelease = ui.onChartRelease

	ui.fileSelect = widget.NewSelect(nil, ui.onFileSelected)
	ui.progressLabel = widget.NewLabel("")

	ui.minLabel = widget.NewLabel(text(KeyStrainMin))
	ui.minEntry = newWindowEntry(ui.onApplyWindow, ui.onWindowEdited)
	ui.maxLabel = widget.NewLabel(text(KeyStrainMax))
	ui.maxEntry = newWindowEntry(ui.onApplyWindow, ui.onWindowEdited)

	ui.modulusLabel = widget.NewLabel("")
	ui.modulusLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.acceptBtn = widget.NewButton(text(KeyAccept), ui.onAccept)
	ui.acceptBtn.Importance = widget.HighImportance
	ui.exportBtn = widget.NewButton(text(KeyExportData), ui.onExportData)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	reloadBtn := widget.NewButton(IconReload, ui.loadDirectory)
	reloadBtn.Importance = widget.LowImportance

	ui.resultsLabel = widget.NewLabel("")
	ui.resultList = widget.NewList(
		func() int { return len(ui.results) },
		func() fyne.CanvasObject { return NewResultRow(ui.localization) },
		ui.updateResultItem,
	)

	// Notification panel on top (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.revealBtn = widget.NewButton(IconFolder+" "+text(KeyReveal), func() {
		if err := platform.OpenFileInManager(ui.notificationPath); err != nil {
			dialog.ShowError(err, ui.window)
		}
	})
	ui.revealBtn.Importance = widget.LowImportance
	ui.copyPathBtn = widget.NewButton(IconCopy+" "+text(KeyCopyPath), func() {
		fyne.CurrentApp().Clipboard().SetContent(ui.notificationPath)
		ui.showNotification(text(KeyPathCopied), false)
	})
	ui.copyPathBtn.Importance = widget.LowImportance
	ui.revealBtn.Hide()
	ui.copyPathBtn.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner,
		container.NewHBox(ui.revealBtn, ui.copyPathBtn), ui.notificationLabel)
	ui.notificationContainer.Hide()

	logo := ui.logoImage()
	header := container.NewBorder(nil, nil, logo, container.NewHBox(reloadBtn, settingsBtn), ui.fileSelect)

	controls := container.NewVBox(
		header,
		ui.progressLabel,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, ui.minLabel, ui.minEntry),
		container.NewGridWithColumns(2, ui.maxLabel, ui.maxEntry),
		ui.modulusLabel,
		ui.acceptBtn,
		ui.exportBtn,
		widget.NewSeparator(),
		ui.resultsLabel,
	)

	// Fix the panel width using a transparent rectangle underneath
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(ControlPanelWidth, 0))
	panel := container.NewStack(spacer, container.NewBorder(controls, nil, nil, nil, ui.resultList))

	content := container.NewBorder(
		ui.notificationContainer, // top
		nil,                      // bottom
		panel,                    // left
		nil,                      // right
		ui.chart,                 // center
	)
	ui.window.SetContent(content)

	// Enter anywhere outside the entries accepts the current fit
	ui.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyReturn || ev.Name == fyne.KeyEnter {
			ui.onAccept()
		}
	})
}

// logoImage returns the small application logo, or an empty object
func (ui *RootUI) logoImage() fyne.CanvasObject {
	logo, err := LoadLogoResource()
	if err != nil {
		return canvas.NewRectangle(color.Transparent)
	}
	img := canvas.NewImageFromResource(logo)
	img.SetMinSize(fyne.NewSize(24, 24))
	img.FillMode = canvas.ImageFillContain
	return img
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	fileMenu := fyne.NewMenu(text(KeyFile),
		fyne.NewMenuItem(text(KeyProcessDirectory), ui.onProcessDirectory),
		fyne.NewMenuItem(text(KeyReloadFiles), ui.loadDirectory),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeyExportData), ui.onExportData),
		fyne.NewMenuItem(text(KeyExportWorkbook), ui.onExportWorkbook),
		fyne.NewMenuItem(text(KeySummaryPlots), ui.onSummaryPlots),
		fyne.NewMenuItem(text(KeySaveChart), ui.onSaveChart),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for _, code := range []string{"en", "ru", "pt"} {
		item := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(code)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText
	ui.window.SetTitle(text(KeyAppTitle))
	ui.minLabel.SetText(text(KeyStrainMin))
	ui.maxLabel.SetText(text(KeyStrainMax))
	ui.acceptBtn.SetText(text(KeyAccept))
	ui.exportBtn.SetText(text(KeyExportData))
	ui.revealBtn.SetText(IconFolder + " " + text(KeyReveal))
	ui.copyPathBtn.SetText(IconCopy + " " + text(KeyCopyPath))
	ui.refreshView()
}

// loadDirectory starts a new review session over the raw data directory
func (ui *RootUI) loadDirectory() {
	dir := ui.rawDataDir()
	files, err := platform.ListCSVFiles(dir)
	if err != nil {
		ui.logger.Error("Failed to list files", zap.String("dir", dir), zap.Error(err))
		dialog.ShowError(err, ui.window)
	}

	lo, hi := ui.strainWindow()
	ui.session = review.NewSession(dir, platform.BaseNames(files), analysis.NewWindow(lo, hi), ui.logger)
	ui.drag = review.NewDrag(ui.session.Window(), ui.settings.GetDragTolerance())
	ui.logger.Info("Loaded directory", zap.String("dir", dir), zap.Int("files", len(files)))

	if len(files) == 0 {
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyNoFiles), dir), false)
	}
	ui.refreshView()
}

func (ui *RootUI) rawDataDir() string {
	if ui.override != nil {
		return ui.override.RawDataDir
	}
	return ui.settings.GetRawDataDirectory()
}

func (ui *RootUI) strainWindow() (float64, float64) {
	if ui.override != nil {
		return ui.override.StrainMin, ui.override.StrainMax
	}
	return ui.settings.GetStrainWindow()
}

// startWatcher follows the raw data directory for added or removed files
func (ui *RootUI) startWatcher() {
	ui.stopDirWatcher()

	dir := ui.session.Dir()
	watcher, err := platform.NewDirWatcher(dir, func(paths []string) {
		names := platform.BaseNames(paths)
		fyne.Do(func() { ui.onFilesChanged(names) })
	}, ui.logger)
	if err != nil {
		ui.logger.Warn("Directory watcher unavailable", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := watcher.Start(ctx); err != nil {
		cancel()
		watcher.Stop()
		ui.logger.Warn("Failed to watch directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	ui.watcher = watcher
	ui.stopWatcher = cancel
}

func (ui *RootUI) stopDirWatcher() {
	if ui.watcher == nil {
		return
	}
	ui.stopWatcher()
	ui.watcher.Stop()
	ui.watcher = nil
	ui.stopWatcher = nil
}

// onFilesChanged applies a new file list from the watcher
func (ui *RootUI) onFilesChanged(names []string) {
	ui.logger.Info("Raw data directory changed", zap.Int("files", len(names)))
	current := ui.session.Current()
	ui.session.Refresh(names)
	if ui.session.Current() != current {
		ui.drag.Reset(ui.session.Window())
	}
	ui.refreshView()
}

// refreshView syncs every control with the session
func (ui *RootUI) refreshView() {
	s := ui.session
	w := s.Window()

	ui.minEntry.SetText(formatFloat(w.Lo))
	ui.maxEntry.SetText(formatFloat(w.Hi))
	ui.progressLabel.SetText(s.Progress())
	ui.modulusLabel.SetText(s.ModulusText())

	ui.updatingSelect = true
	ui.fileSelect.SetOptions(s.Files())
	if current := s.Current(); current != "" {
		ui.fileSelect.SetSelected(current)
	} else {
		ui.fileSelect.ClearSelected()
	}
	ui.updatingSelect = false

	if s.Done() {
		ui.acceptBtn.Disable()
	} else {
		ui.acceptBtn.Enable()
	}

	ui.results = s.Results()
	ui.resultsLabel.SetText(fmt.Sprintf("%s (%d)", ui.localization.GetText(KeyResults), len(ui.results)))
	ui.resultList.Refresh()

	if err := s.LoadError(); err != nil {
		ui.showNotification(err.Error(), false)
	}
	ui.renderChart()
}

// renderChart draws the current curve, fit and markers
func (ui *RootUI) renderChart() {
	left, right := ui.drag.Markers()
	img, geom, err := render.StressStrain(ui.session.Curve(), ui.session.Fit(),
		render.Markers{Left: left, Right: right},
		render.CurveOptions{Width: ChartWidth, Height: ChartHeight})
	if err != nil {
		ui.logger.Warn("Failed to render chart", zap.Error(err))
	}
	ui.chart.SetChart(img, geom)
	ui.lastDragRender = time.Now()
}

// updateResultItem fills a result row
func (ui *RootUI) updateResultItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.results) {
		return
	}
	if row, ok := item.(*ResultRow); ok {
		row.SetCallbacks(ui.onViewResult)
		row.UpdateResult(ui.results[id])
	}
}

// onViewResult jumps back to an accepted file
func (ui *RootUI) onViewResult(filename string) {
	ui.selectFile(filename)
}

// onFileSelected handles a pick from the file selector
func (ui *RootUI) onFileSelected(name string) {
	if ui.updatingSelect || name == "" || name == ui.session.Current() {
		return
	}
	ui.selectFile(name)
}

func (ui *RootUI) selectFile(name string) {
	if err := ui.session.Select(name); err != nil && !errors.Is(err, review.ErrUnknownFile) {
		ui.logger.Warn("Failed to select file", zap.String("file", name), zap.Error(err))
	}
	ui.drag.Reset(ui.session.Window())
	ui.refreshView()
}

// onApplyWindow applies the strain window typed into the entries
func (ui *RootUI) onApplyWindow() {
	lo, err := parseFloat(ui.minEntry.Text)
	if err != nil {
		dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyInvalidNumber), ui.minEntry.Text), ui.window)
		return
	}
	hi, err := parseFloat(ui.maxEntry.Text)
	if err != nil {
		dialog.ShowError(fmt.Errorf(ui.localization.GetText(KeyInvalidNumber), ui.maxEntry.Text), ui.window)
		return
	}

	ui.session.SetWindow(lo, hi)
	ui.drag.Reset(ui.session.Window())
	ui.refreshView()
}

// onWindowEdited applies the entries when they leave focus. Unparsable or
// unchanged values are left alone.
func (ui *RootUI) onWindowEdited() {
	lo, errLo := parseFloat(ui.minEntry.Text)
	hi, errHi := parseFloat(ui.maxEntry.Text)
	if errLo != nil || errHi != nil {
		return
	}
	if analysis.NewWindow(lo, hi) == ui.session.Window() {
		return
	}
	ui.session.SetWindow(lo, hi)
	ui.drag.Reset(ui.session.Window())
	ui.refreshView()
}

// onChartPress grabs a marker
func (ui *RootUI) onChartPress(strain float64) {
	if m := ui.drag.Press(strain); m != review.MarkerNone {
		ui.logger.Debug("Marker grabbed", zap.Stringer("marker", m), zap.Float64("strain", strain))
	}
}

// onChartDrag moves the grabbed marker and mirrors it into its entry
func (ui *RootUI) onChartDrag(strain float64) {
	m, ok := ui.drag.Move(strain)
	if !ok {
		return
	}
	if m == review.MarkerLeft {
		ui.minEntry.SetText(formatFloat(strain))
	} else {
		ui.maxEntry.SetText(formatFloat(strain))
	}
	if time.Since(ui.lastDragRender) >= DragRenderInterval {
		ui.renderChart()
	}
}

// onChartRelease refits with the window between the markers
func (ui *RootUI) onChartRelease() {
	w, dragged := ui.drag.Release()
	if !dragged {
		return
	}
	ui.session.SetWindow(w.Lo, w.Hi)
	ui.drag.Reset(ui.session.Window())
	ui.refreshView()
}

// onAccept records the current fit and advances to the next file
func (ui *RootUI) onAccept() {
	text := ui.localization.GetText

	_, err := ui.session.Accept()
	switch {
	case errors.Is(err, review.ErrNoFit):
		dialog.ShowInformation(text(KeyNoData), text(KeyNoFit), ui.window)
		return
	case errors.Is(err, review.ErrNoFile):
		dialog.ShowInformation(text(KeyComplete), text(KeyAllProcessed), ui.window)
		return
	case err != nil:
		dialog.ShowError(err, ui.window)
		return
	}

	ui.drag.Reset(ui.session.Window())
	ui.refreshView()
	if ui.session.Done() {
		dialog.ShowInformation(text(KeyComplete), text(KeyAllProcessed), ui.window)
	}
}

// onExportData writes the accepted results next to the working directory
func (ui *RootUI) onExportData() {
	results := ui.session.Results()
	if len(results) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyNoData), ui.localization.GetText(KeyNoResults), ui.window)
		return
	}
	job, err := export.ModulusResultsJob(model.ExportModulusCSV, results)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.startExport(model.ExportModulusCSV, config.DefaultResultsFile, job)
}

// onExportWorkbook saves the accepted results as xlsx
func (ui *RootUI) onExportWorkbook() {
	results := ui.session.Results()
	if len(results) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyNoData), ui.localization.GetText(KeyNoResults), ui.window)
		return
	}
	name := strings.TrimSuffix(config.DefaultResultsFile, filepath.Ext(config.DefaultResultsFile)) + ".xlsx"
	ui.showSaveDialog(name, func(path string) {
		job, err := export.ModulusResultsJob(model.ExportModulusXLSX, results)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.startExport(model.ExportModulusXLSX, path, job)
	})
}

// onSaveChart saves the current chart as PNG
func (ui *RootUI) onSaveChart() {
	curve := ui.session.Curve()
	if curve == nil || curve.Len() == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyNoData), ui.localization.GetText(KeyNoFit), ui.window)
		return
	}
	left, right := ui.drag.Markers()
	job := export.CurveJob(curve, ui.session.Fit(), render.Markers{Left: left, Right: right},
		render.CurveOptions{Width: ChartWidth, Height: ChartHeight})

	name := strings.TrimSuffix(curve.Name, filepath.Ext(curve.Name)) + "_curve.png"
	ui.showSaveDialog(name, func(path string) {
		ui.startExport(model.ExportCurvePlot, path, job)
	})
}

// onSummaryPlots renders the bar charts of the processed summary
func (ui *RootUI) onSummaryPlots() {
	params := ui.params()
	rows, err := dataset.ReadSummary(params.SummaryPath())
	if err != nil {
		ui.logger.Warn("Summary unavailable", zap.String("path", params.SummaryPath()), zap.Error(err))
		ui.showNotification(ui.localization.GetText(KeySummaryMissing), false)
		return
	}

	opts := render.BarOptions{DPI: params.DPI}
	plots := []struct {
		kind model.ExportKind
		path string
	}{
		{model.ExportStrengthPlot, params.StrengthPlotPath()},
		{model.ExportModulusPlot, params.ModulusPlotPath()},
	}
	for _, p := range plots {
		if p.kind == model.ExportModulusPlot && len(render.ModulusBars(rows)) == 0 {
			continue
		}
		job, err := export.SummaryJob(p.kind, rows, opts)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.startExport(p.kind, p.path, job)
	}
}

// params builds batch parameters from the settings
func (ui *RootUI) params() config.Params {
	if ui.override != nil {
		return *ui.override
	}
	params := config.DefaultParams()
	params.RawDataDir = ui.settings.GetRawDataDirectory()
	params.ProcessedDir = ui.settings.GetProcessedDirectory()
	params.MaxParallel = ui.settings.GetMaxParallel()
	params.StrainMin, params.StrainMax = ui.settings.GetStrainWindow()
	return params
}

// onProcessDirectory runs the batch reduction in the background
func (ui *RootUI) onProcessDirectory() {
	if ui.processing {
		return
	}
	ui.processing = true

	params := ui.params()
	ui.batchSvc.SetMaxParallel(params.MaxParallel)
	ui.batchSvc.SetRegionSize(params.RegionSize)
	ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyProcessing), params.RawDataDir), true)

	go func() {
		report, err := batch.ProcessDirectory(context.Background(), ui.batchSvc, params, ui.logger)
		fyne.Do(func() {
			ui.processing = false
			if err != nil {
				ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyProcessingFailed), err), false)
				return
			}
			path := absPath(report.SummaryPath)
			ui.showPathNotification(fmt.Sprintf(ui.localization.GetText(KeyProcessingDone), report.Processed, report.Files), path, false)
			ui.reveal(path)
		})
	}()
}

// onProcessUpdate shows which file is being processed
func (ui *RootUI) onProcessUpdate(task *model.ProcessTask) {
	if task.Status != model.TaskStatusRunning {
		return
	}
	ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyProcessing), task.GetDisplayName()), true)
}

// startExport hands a job to the export service
func (ui *RootUI) startExport(kind model.ExportKind, path string, job export.Job) {
	task, err := ui.exportSvc.StartExport(kind, path, job)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.logger.Debug("Export started", zap.String("id", task.ID), zap.String("path", path))
}

// onExportUpdate reports finished exports
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		path := absPath(task.OutputPath)
		ui.showPathNotification(fmt.Sprintf(ui.localization.GetText(KeyExported), path), path, false)
		fyne.Do(func() { ui.reveal(path) })
	case model.TaskStatusError:
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyExportFailed), task.LastError), false)
	}
}

// reveal opens the file manager at path when enabled in the settings
func (ui *RootUI) reveal(path string) {
	if !ui.settings.GetAutoRevealOnExport() {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		ui.logger.Warn("Failed to reveal file", zap.String("path", path), zap.Error(err))
	}
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// showSaveDialog asks for an output path
func (ui *RootUI) showSaveDialog(defaultName string, onPath func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		onPath(path)
	}, ui.window)
	d.SetFileName(defaultName)
	d.Show()
}

// showNotification displays a message in the notification panel. When
// spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.showPathNotification(message, "", spinning)
}

// showPathNotification is showNotification with reveal and copy actions for path
func (ui *RootUI) showPathNotification(message, path string, spinning bool) {
	fyne.Do(func() {
		ui.notificationSeq++
		seq := ui.notificationSeq

		ui.notificationPath = path
		if path != "" {
			ui.revealBtn.Show()
			ui.copyPathBtn.Show()
		} else {
			ui.revealBtn.Hide()
			ui.copyPathBtn.Hide()
		}
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()

		if !spinning {
			time.AfterFunc(NotificationAutoHide, func() {
				fyne.Do(func() {
					if ui.notificationSeq == seq {
						ui.notificationContainer.Hide()
					}
				})
			})
		}
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	before := ui.rawDataDir()
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.override = nil
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.drag.SetTolerance(ui.settings.GetDragTolerance())
		ui.refreshUITexts()
		ui.createMenu()
		if ui.rawDataDir() != before {
			ui.loadDirectory()
			ui.startWatcher()
		}
	}).Show()
}
