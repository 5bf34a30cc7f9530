package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_Normalize(t *testing.T) {
	w := NewWindow(0.2, 0.01)
	assert.Equal(t, Window{Lo: 0.01, Hi: 0.2}, w)
	assert.True(t, w.Contains(0.01))
	assert.True(t, w.Contains(0.2))
	assert.False(t, w.Contains(0.21))
}

func TestWindowModulus(t *testing.T) {
	strain := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.3, math.NaN()}
	stress := make([]float64, len(strain))
	for i, s := range strain {
		stress[i] = 2500 * s / 100
	}
	stress[5] = 0 // outside the window, must not pull the slope

	wf, ok, err := WindowModulus(strain, stress, NewWindow(0.01, 0.2))
	require.NoError(t, err)
	require.True(t, ok)

	assert.InDelta(t, 2500, wf.Modulus, 1e-6)
	assert.Equal(t, 4, wf.Fit.N)
	assert.InDelta(t, 0.0005, wf.StrainMin, 1e-12)
	assert.InDelta(t, 0.002, wf.StrainMax, 1e-12)
	assert.InDelta(t, 1.25, wf.StressMin, 1e-9)
	assert.InDelta(t, 5, wf.StressMax, 1e-9)

	line := wf.Line()
	require.Len(t, line, 4)
	assert.InDelta(t, 5, line[3], 1e-9)
}

func TestWindowModulus_SwappedBounds(t *testing.T) {
	strain := []float64{0.1, 0.2, 0.3}
	stress := []float64{1, 2, 3}

	a, ok, err := WindowModulus(strain, stress, Window{Lo: 0.3, Hi: 0.1})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Window{Lo: 0.1, Hi: 0.3}, a.Window)
	assert.InDelta(t, 1000, a.Modulus, 1e-9)
}

func TestWindowModulus_NoFit(t *testing.T) {
	strain := []float64{0, 0.5, 1}
	stress := []float64{0, 5, 10}

	wf, ok, err := WindowModulus(strain, stress, NewWindow(0.4, 0.6))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, wf)

	// Repeated strain samples cannot define a slope
	wf, ok, err = WindowModulus([]float64{0.5, 0.5}, []float64{1, 2}, NewWindow(0, 1))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, wf)

	_, _, err = WindowModulus([]float64{1}, nil, NewWindow(0, 1))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
