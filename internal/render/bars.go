package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ytget/flexlab/internal/model"
)

// Bar chart titles
const (
	TitleStrength = "Flexural Strength by Sample"
	TitleModulus  = "Flexural Modulus by Sample"
)

// Bar chart page size in inches
const (
	BarWidthInches  = 12
	BarHeightInches = 6
	DefaultBarDPI   = 300
)

// ErrNoBars is returned when there is nothing to plot
var ErrNoBars = errors.New("no values to plot")

// BarOptions controls a bar chart
type BarOptions struct {
	DPI float64
}

// Size returns the pixel size of the chart
func (o BarOptions) Size() (int, int) {
	dpi := o.dpi()
	return int(BarWidthInches * dpi), int(BarHeightInches * dpi)
}

func (o BarOptions) dpi() float64 {
	if o.DPI <= 0 {
		return DefaultBarDPI
	}
	return o.DPI
}

// Bar is one labelled value
type Bar struct {
	Label string
	Value float64
}

// StrengthBars returns the strength bars of the summary rows
func StrengthBars(rows []model.SummaryRow) []Bar {
	bars := make([]Bar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, Bar{Label: row.Filename, Value: row.Strength})
	}
	return bars
}

// ModulusBars returns the modulus bars of the summary rows, skipping rows
// without a modulus
func ModulusBars(rows []model.SummaryRow) []Bar {
	bars := make([]Bar, 0, len(rows))
	for _, row := range rows {
		if !row.HasModulus {
			continue
		}
		bars = append(bars, Bar{Label: row.Filename, Value: row.Modulus})
	}
	return bars
}

// WriteBars renders a bar chart as PNG
func WriteBars(w io.Writer, title, axis string, bars []Bar, opts BarOptions) error {
	if len(bars) == 0 {
		return ErrNoBars
	}
	bc := barChart(title, axis, bars, opts)
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %q: %w", title, err)
	}
	return nil
}

// SaveBars renders a bar chart into a PNG file, creating its directory
func SaveBars(path, title, axis string, bars []Bar, opts BarOptions) error {
	if len(bars) == 0 {
		return ErrNoBars
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteBars(f, title, axis, bars, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveStrengthPlot writes the strength bar chart of rows
func SaveStrengthPlot(path string, rows []model.SummaryRow, opts BarOptions) error {
	return SaveBars(path, TitleStrength, AxisStrength, StrengthBars(rows), opts)
}

// SaveModulusPlot writes the modulus bar chart of rows
func SaveModulusPlot(path string, rows []model.SummaryRow, opts BarOptions) error {
	return SaveBars(path, TitleModulus, AxisModulus, ModulusBars(rows), opts)
}

func barChart(title, axis string, bars []Bar, opts BarOptions) chart.BarChart {
	width, height := opts.Size()
	palette := Viridis(len(bars))

	lo, hi := 0.0, 0.0
	values := make([]chart.Value, len(bars))
	for i, b := range bars {
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
		values[i] = chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{FillColor: palette[i], StrokeColor: palette[i], StrokeWidth: 1},
		}
	}
	if hi <= lo {
		hi = lo + 1
	}

	dpi := opts.dpi()
	// leave room for rotated labels below the bars
	bottom := int(1.4 * dpi)
	left := int(0.3 * dpi)
	plotWidth := width - left - int(1.2*dpi)
	barWidth := max(plotWidth/len(bars)*7/10, 1)
	spacing := max(plotWidth/len(bars)-barWidth, 1)

	return chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      width,
		Height:     height,
		DPI:        dpi,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: int(0.6 * dpi), Left: left, Right: int(0.3 * dpi), Bottom: bottom}},
		XAxis:      chart.Style{TextRotationDegrees: 45, FontSize: 8},
		YAxis: chart.YAxis{
			Name:  axis,
			Range: &chart.ContinuousRange{Min: lo, Max: hi * 1.1},
		},
		Bars: values,
	}
}
