package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flexlab/internal/model"
)

// ResultRow shows one accepted modulus fit
type ResultRow struct {
	widget.BaseWidget

	result       model.ModulusResult
	localization *Localization

	// UI components
	nameLabel    *widget.Label
	windowLabel  *widget.Label
	modulusLabel *widget.Label
	viewBtn      *widget.Button

	// Callbacks
	onView func(filename string)
}

// NewResultRow creates a new result row widget
func NewResultRow(localization *Localization) *ResultRow {
	rr := &ResultRow{localization: localization}
	rr.ExtendBaseWidget(rr)
	rr.createUI()
	return rr
}

// SetCallbacks sets the action callbacks
func (rr *ResultRow) SetCallbacks(onView func(filename string)) {
	rr.onView = onView
}

// UpdateResult updates the row with new result data
func (rr *ResultRow) UpdateResult(result model.ModulusResult) {
	rr.result = result
	rr.nameLabel.SetText(result.Filename)
	rr.windowLabel.SetText(FormatWindow(result.StrainMin, result.StrainMax))
	rr.modulusLabel.SetText(fmt.Sprintf(ModulusLabelFormat, result.Modulus))
	rr.viewBtn.SetText(rr.localization.GetText(KeyView))
}

// FormatWindow formats a strain window for display
func FormatWindow(lo, hi float64) string {
	return fmt.Sprintf(WindowLabelFormat, lo, hi)
}

func (rr *ResultRow) createUI() {
	rr.nameLabel = widget.NewLabel(DashPlaceholder)
	rr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	rr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	rr.windowLabel = widget.NewLabel("")
	rr.windowLabel.TextStyle = fyne.TextStyle{Monospace: true}
	rr.modulusLabel = widget.NewLabel("")
	rr.modulusLabel.Alignment = fyne.TextAlignTrailing

	rr.viewBtn = widget.NewButton(rr.localization.GetText(KeyView), func() {
		if rr.onView != nil && rr.result.Filename != "" {
			rr.onView(rr.result.Filename)
		}
	})
	rr.viewBtn.Importance = widget.LowImportance
}

// CreateRenderer creates the widget renderer
func (rr *ResultRow) CreateRenderer() fyne.WidgetRenderer {
	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	details := container.NewHBox(
		fixedWidth(WindowLabelWidth, rr.windowLabel),
		fixedWidth(ModulusLabelWidth, rr.modulusLabel),
	)
	right := container.NewBorder(nil, nil, nil, rr.viewBtn, details)
	row := container.NewVBox(
		container.NewBorder(nil, nil, nil, right, rr.nameLabel),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(row)
}

// MinSize keeps rows readable in narrow panels
func (rr *ResultRow) MinSize() fyne.Size {
	size := rr.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}
