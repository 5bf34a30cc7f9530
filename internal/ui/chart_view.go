package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/flexlab/internal/render"
)

// ChartView shows a rendered stress-strain chart and reports pointer
// presses, drags and releases in strain units. Events outside the data area
// are not reported.
type ChartView struct {
	widget.BaseWidget

	image *canvas.Image
	geom  render.Geometry
	imgW  int
	imgH  int

	// Callbacks
	OnPress   func(strain float64)
	OnDrag    func(strain float64)
	OnRelease func()

	pressed bool
}

var (
	_ desktop.Mouseable  = (*ChartView)(nil)
	_ desktop.Cursorable = (*ChartView)(nil)
	_ fyne.Draggable     = (*ChartView)(nil)
)

// NewChartView creates an empty chart view
func NewChartView() *ChartView {
	blank := render.Blank(ChartWidth, ChartHeight)
	cv := &ChartView{
		image: canvas.NewImageFromImage(blank),
		imgW:  ChartWidth,
		imgH:  ChartHeight,
	}
	cv.image.FillMode = canvas.ImageFillContain
	cv.image.ScaleMode = canvas.ImageScaleSmooth
	cv.image.SetMinSize(fyne.NewSize(ChartWidth/2, ChartHeight/2))
	cv.ExtendBaseWidget(cv)
	return cv
}

// SetChart replaces the displayed image and its plot geometry
func (cv *ChartView) SetChart(img image.Image, geom render.Geometry) {
	if img == nil {
		img = render.Blank(ChartWidth, ChartHeight)
		geom = render.Geometry{}
	}
	b := img.Bounds()
	cv.imgW, cv.imgH = b.Dx(), b.Dy()
	cv.geom = geom
	cv.image.Image = img
	cv.image.Refresh()
}

// Image returns the displayed image
func (cv *ChartView) Image() image.Image {
	return cv.image.Image
}

// ToStrain maps a position inside the widget to strain. ok is false outside
// the data area of the chart.
func (cv *ChartView) ToStrain(pos fyne.Position) (strain float64, ok bool) {
	size := cv.Size()
	x, y, _, _, scale := render.ContainRect(float32(cv.imgW), float32(cv.imgH), size.Width, size.Height)
	if scale <= 0 {
		return 0, false
	}
	px := float64((pos.X - x) / scale)
	py := float64((pos.Y - y) / scale)
	if !cv.geom.InPlot(px, py) {
		return 0, false
	}
	return cv.geom.PixelToX(px), true
}

// MouseDown grabs a marker near the pointer
func (cv *ChartView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	strain, ok := cv.ToStrain(ev.Position)
	if !ok {
		return
	}
	cv.pressed = true
	if cv.OnPress != nil {
		cv.OnPress(strain)
	}
}

// MouseUp ends a drag
func (cv *ChartView) MouseUp(*desktop.MouseEvent) {
	cv.release()
}

// Dragged moves the grabbed marker
func (cv *ChartView) Dragged(ev *fyne.DragEvent) {
	if !cv.pressed {
		return
	}
	strain, ok := cv.ToStrain(ev.Position)
	if !ok {
		return
	}
	if cv.OnDrag != nil {
		cv.OnDrag(strain)
	}
}

// DragEnd ends a drag
func (cv *ChartView) DragEnd() {
	cv.release()
}

// Cursor shows a crosshair over the chart
func (cv *ChartView) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (cv *ChartView) release() {
	if !cv.pressed {
		return
	}
	cv.pressed = false
	if cv.OnRelease != nil {
		cv.OnRelease()
	}
}

// CreateRenderer creates the widget renderer
func (cv *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cv.image)
}
