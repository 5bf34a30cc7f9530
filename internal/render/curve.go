package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ytget/flexlab/internal/analysis"
	"github.com/ytget/flexlab/internal/model"
)

// Default curve chart size in pixels
const (
	DefaultCurveWidth  = 1000
	DefaultCurveHeight = 700
)

// Axis names
const (
	AxisStrain   = "Strain (%)"
	AxisStress   = "Stress (MPa)"
	AxisStrength = "Flexural Strength (MPa)"
	AxisModulus  = "Flexural Modulus (MPa)"
	AxisSample   = "Sample"
)

// CurveOptions controls a curve chart
type CurveOptions struct {
	Width, Height int
	DPI           float64
}

// Markers are the two draggable strain positions, left and right, in percent
type Markers struct {
	Left, Right float64
}

// CurveTitle returns the title of a curve chart
func CurveTitle(name string) string {
	return fmt.Sprintf("Stress-Strain Curve: %s", name)
}

// FitLabel returns the legend label of a fit line
func FitLabel(modulus float64) string {
	return fmt.Sprintf("Fit (Modulus = %.0f MPa)", modulus)
}

// WriteStressStrain renders a stress-strain chart as PNG. fit may be nil. The fit window is
// shaded between the markers and the markers are drawn as dashed lines.
func WriteStressStrain(w io.Writer, curve *model.Curve, fit *analysis.WindowFit, markers Markers, opts CurveOptions) (Geometry, error) {
	ch, geom := curveChart(curve, fit, markers, opts)
	if ch == nil {
		return Geometry{}, errors.New("curve has no points")
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return Geometry{}, fmt.Errorf("failed to render curve: %w", err)
	}
	return *geom, nil
}

// StressStrain renders a stress-strain chart to an image. Empty curves produce a blank
// image and an invalid geometry.
func StressStrain(curve *model.Curve, fit *analysis.WindowFit, markers Markers, opts CurveOptions) (image.Image, Geometry, error) {
	opts = opts.withDefaults()
	ch, geom := curveChart(curve, fit, markers, opts)
	if ch == nil {
		return Blank(opts.Width, opts.Height), Geometry{}, nil
	}

	collector := &chart.ImageWriter{}
	if err := ch.Render(chart.PNG, collector); err != nil {
		return Blank(opts.Width, opts.Height), Geometry{}, fmt.Errorf("failed to render curve: %w", err)
	}
	img, err := collector.Image()
	if err != nil {
		return Blank(opts.Width, opts.Height), Geometry{}, err
	}
	return img, *geom, nil
}

func (o CurveOptions) withDefaults() CurveOptions {
	if o.Width <= 0 {
		o.Width = DefaultCurveWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultCurveHeight
	}
	if o.DPI <= 0 {
		o.DPI = chart.DefaultDPI
	}
	return o
}

func curveChart(curve *model.Curve, fit *analysis.WindowFit, markers Markers, opts CurveOptions) (*chart.Chart, *Geometry) {
	opts = opts.withDefaults()
	if curve == nil {
		return nil, nil
	}
	xmin, xmax, ymin, ymax, ok := curve.Bounds()
	if !ok {
		return nil, nil
	}
	xmin = math.Min(xmin, math.Min(markers.Left, markers.Right))
	xmax = math.Max(xmax, math.Max(markers.Left, markers.Right))
	xmin, xmax = padRange(xmin, xmax)
	ymin, ymax = padRange(ymin, ymax)

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Data",
			XValues: curve.Strain,
			YValues: curve.Stress,
			Style:   chart.Style{StrokeColor: ColorData, StrokeWidth: 1.5},
		},
	}
	if fit != nil && len(fit.StrainPct) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    FitLabel(fit.Modulus),
			XValues: fit.StrainPct,
			YValues: fit.Line(),
			Style:   chart.Style{StrokeColor: ColorFit, StrokeWidth: 2},
		})
	}

	geom := &Geometry{Width: opts.Width, Height: opts.Height, XMin: xmin, XMax: xmax}
	ch := &chart.Chart{
		Title:      CurveTitle(curve.Name),
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        opts.DPI,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           AxisStrain,
			Range:          &chart.ContinuousRange{Min: xmin, Max: xmax},
			GridMajorStyle: chart.Style{StrokeColor: ColorGrid, StrokeWidth: 1},
		},
		YAxis: chart.YAxis{
			Name:           AxisStress,
			Range:          &chart.ContinuousRange{Min: ymin, Max: ymax},
			GridMajorStyle: chart.Style{StrokeColor: ColorGrid, StrokeWidth: 1},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{
		windowOverlay(markers, geom),
		chart.Legend(ch),
	}
	return ch, geom
}

// windowOverlay shades the window between the markers, draws the markers
// and records the final data area into geom
func windowOverlay(markers Markers, geom *Geometry) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		geom.Plot = box
		if !geom.Valid() {
			return
		}
		left := int(math.Round(geom.XToPixel(markers.Left)))
		right := int(math.Round(geom.XToPixel(markers.Right)))
		lo, hi := clampInt(min(left, right), box.Left, box.Right), clampInt(max(left, right), box.Left, box.Right)

		if hi > lo {
			r.ResetStyle()
			r.SetFillColor(ColorHighlight)
			r.MoveTo(lo, box.Top)
			r.LineTo(hi, box.Top)
			r.LineTo(hi, box.Bottom)
			r.LineTo(lo, box.Bottom)
			r.Close()
			r.Fill()
		}

		for _, x := range []int{left, right} {
			if x < box.Left || x > box.Right {
				continue
			}
			r.ResetStyle()
			r.SetStrokeColor(ColorMarker)
			r.SetStrokeWidth(1.5)
			r.SetStrokeDashArray([]float64{6, 4})
			r.MoveTo(x, box.Top)
			r.LineTo(x, box.Bottom)
			r.Stroke()
		}
		r.ResetStyle()
	}
}

func padRange(lo, hi float64) (float64, float64) {
	if hi <= lo {
		d := math.Max(math.Abs(lo)*0.05, 1)
		return lo - d, hi + d
	}
	d := (hi - lo) * 0.05
	return lo - d, hi + d
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Blank returns a white placeholder image
func Blank(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	return img
}
