package review

import (
	"math"

	"github.com/ytget/flexlab/internal/analysis"
)

// Marker identifies one of the two window markers
type Marker int

const (
	MarkerNone Marker = iota
	MarkerLeft
	MarkerRight
)

// String returns a readable marker name
func (m Marker) String() string {
	switch m {
	case MarkerLeft:
		return "left"
	case MarkerRight:
		return "right"
	default:
		return "none"
	}
}

// Drag tracks the two vertical window markers and which one is being
// dragged. Positions are strain in percent.
type Drag struct {
	left, right float64
	tolerance   float64
	grabbed     Marker
}

// NewDrag creates a drag state with markers at the window bounds
func NewDrag(w analysis.Window, tolerance float64) *Drag {
	d := &Drag{tolerance: tolerance}
	d.Reset(w)
	return d
}

// Reset moves the markers to the window bounds and drops any grab
func (d *Drag) Reset(w analysis.Window) {
	w = w.Normalize()
	d.left, d.right = w.Lo, w.Hi
	d.grabbed = MarkerNone
}

// SetTolerance sets the grab distance in strain percent
func (d *Drag) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		d.tolerance = tolerance
	}
}

// Tolerance returns the grab distance
func (d *Drag) Tolerance() float64 {
	return d.tolerance
}

// Markers returns the left and right marker positions
func (d *Drag) Markers() (left, right float64) {
	return d.left, d.right
}

// Dragging reports whether a marker is grabbed
func (d *Drag) Dragging() bool {
	return d.grabbed != MarkerNone
}

// Press grabs the marker within tolerance of x. The left marker is checked
// first.
func (d *Drag) Press(x float64) Marker {
	switch {
	case math.Abs(x-d.left) < d.tolerance:
		d.grabbed = MarkerLeft
	case math.Abs(x-d.right) < d.tolerance:
		d.grabbed = MarkerRight
	default:
		d.grabbed = MarkerNone
	}
	return d.grabbed
}

// Move places the grabbed marker at x. ok is false when nothing is grabbed.
func (d *Drag) Move(x float64) (m Marker, ok bool) {
	switch d.grabbed {
	case MarkerLeft:
		d.left = x
	case MarkerRight:
		d.right = x
	default:
		return MarkerNone, false
	}
	return d.grabbed, true
}

// Release ends the drag and returns the normalised window between the
// markers. dragged is false when no marker was grabbed.
func (d *Drag) Release() (w analysis.Window, dragged bool) {
	dragged = d.grabbed != MarkerNone
	d.grabbed = MarkerNone
	return analysis.NewWindow(d.left, d.right), dragged
}
