package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// DefaultRegionSize is the decimal strain limit of the initial linear region
const DefaultRegionSize = 0.02

var (
	// ErrEmpty is returned when a calculation gets no samples
	ErrEmpty = errors.New("no samples")
	// ErrTooFewPoints is returned when a fit has fewer than two points
	ErrTooFewPoints = errors.New("need at least 2 points for a linear fit")
	// ErrDegenerate is returned when all fit abscissae coincide
	ErrDegenerate = errors.New("strain values do not vary")
	// ErrLengthMismatch is returned when paired slices differ in length
	ErrLengthMismatch = errors.New("stress and strain lengths differ")
)

// Fit is a first-degree least-squares polynomial y = Slope*x + Intercept
type Fit struct {
	Slope     float64
	Intercept float64
	N         int
}

// At evaluates the fitted line at x
func (f Fit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// FlexuralStrength returns the peak stress. NaN samples are skipped.
func FlexuralStrength(stress []float64) (float64, error) {
	peak := math.Inf(-1)
	found := false
	for _, v := range stress {
		if math.IsNaN(v) {
			continue
		}
		if v > peak {
			peak = v
		}
		found = true
	}
	if !found {
		return 0, ErrEmpty
	}
	return peak, nil
}

// LinearFit fits y against x by ordinary least squares
func LinearFit(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, ErrLengthMismatch
	}
	if len(x) < 2 {
		return Fit{}, ErrTooFewPoints
	}
	varies := false
	for _, v := range x[1:] {
		if v != x[0] {
			varies = true
			break
		}
	}
	if !varies {
		return Fit{}, ErrDegenerate
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return Fit{}, fmt.Errorf("regression did not converge: slope=%v", slope)
	}
	return Fit{Slope: slope, Intercept: intercept, N: len(x)}, nil
}

// InitialModulus fits the initial region of the curve: points whose decimal
// strain (strainPct/100) is at most regionSize. The slope is the modulus in
// MPa. ok is false when the region holds fewer than two usable points or
// all of them share one strain value.
func InitialModulus(stress, strainPct []float64, regionSize float64) (modulus float64, ok bool, err error) {
	if len(stress) != len(strainPct) {
		return 0, false, ErrLengthMismatch
	}
	if regionSize <= 0 {
		regionSize = DefaultRegionSize
	}

	var xs, ys []float64
	for i, s := range strainPct {
		d := s / 100
		if math.IsNaN(d) || math.IsNaN(stress[i]) || d > regionSize {
			continue
		}
		xs = append(xs, d)
		ys = append(ys, stress[i])
	}
	if len(xs) < 2 {
		return 0, false, nil
	}

	fit, err := LinearFit(xs, ys)
	if err != nil {
		if errors.Is(err, ErrDegenerate) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return fit.Slope, true, nil
}
