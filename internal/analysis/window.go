package analysis

import (
	"errors"
	"math"
)

// Window is an inclusive strain range in percent. Lo <= Hi after Normalize.
type Window struct {
	Lo float64
	Hi float64
}

// NewWindow builds a normalised window from two bounds in any order
func NewWindow(a, b float64) Window {
	return Window{Lo: a, Hi: b}.Normalize()
}

// Normalize orders the bounds
func (w Window) Normalize() Window {
	if w.Lo > w.Hi {
		w.Lo, w.Hi = w.Hi, w.Lo
	}
	return w
}

// Contains reports whether strain (percent) lies inside the window
func (w Window) Contains(strainPct float64) bool {
	return strainPct >= w.Lo && strainPct <= w.Hi
}

// WindowFit is the outcome of fitting a strain window
type WindowFit struct {
	Window  Window
	Fit     Fit     // stress against decimal strain
	Modulus float64 // MPa, equal to Fit.Slope

	StrainMin, StrainMax float64 // decimal strain range of the fitted points
	StressMin, StressMax float64 // MPa range of the fitted points

	// Strain (percent) of the fitted points, for drawing the fit line
	StrainPct []float64
}

// Line returns the fitted stress for every fitted point
func (wf *WindowFit) Line() []float64 {
	out := make([]float64, len(wf.StrainPct))
	for i, s := range wf.StrainPct {
		out[i] = wf.Fit.At(s / 100)
	}
	return out
}

// WindowModulus fits stress against decimal strain for the points whose
// strain (percent) lies inside w, bounds included. ok is false when fewer
// than two points fall into the window or they share one strain value.
func WindowModulus(strainPct, stress []float64, w Window) (*WindowFit, bool, error) {
	if len(stress) != len(strainPct) {
		return nil, false, ErrLengthMismatch
	}
	w = w.Normalize()

	res := &WindowFit{
		Window:    w,
		StrainMin: math.Inf(1), StrainMax: math.Inf(-1),
		StressMin: math.Inf(1), StressMax: math.Inf(-1),
	}
	var xs, ys []float64
	for i, s := range strainPct {
		if math.IsNaN(s) || math.IsNaN(stress[i]) || !w.Contains(s) {
			continue
		}
		d := s / 100
		xs = append(xs, d)
		ys = append(ys, stress[i])
		res.StrainPct = append(res.StrainPct, s)
		res.StrainMin = math.Min(res.StrainMin, d)
		res.StrainMax = math.Max(res.StrainMax, d)
		res.StressMin = math.Min(res.StressMin, stress[i])
		res.StressMax = math.Max(res.StressMax, stress[i])
	}
	if len(xs) < 2 {
		return nil, false, nil
	}

	fit, err := LinearFit(xs, ys)
	if err != nil {
		if errors.Is(err, ErrDegenerate) {
			return nil, false, nil
		}
		return nil, false, err
	}
	res.Fit = fit
	res.Modulus = fit.Slope
	return res, true, nil
}
