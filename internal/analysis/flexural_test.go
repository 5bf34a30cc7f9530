package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexuralStrength(t *testing.T) {
	peak, err := FlexuralStrength([]float64{12.5, math.NaN(), 88.1, 40})
	require.NoError(t, err)
	assert.Equal(t, 88.1, peak)

	peak, err = FlexuralStrength([]float64{-3, -1, -2})
	require.NoError(t, err)
	assert.Equal(t, -1.0, peak)

	_, err = FlexuralStrength(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FlexuralStrength([]float64{math.NaN()})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLinearFit(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	fit, err := LinearFit(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 1e-12)
	assert.InDelta(t, 1.0, fit.Intercept, 1e-12)
	assert.Equal(t, 4, fit.N)
	assert.InDelta(t, 11.0, fit.At(5), 1e-12)
}

func TestLinearFit_LeastSquares(t *testing.T) {
	// Noisy samples around y = x
	fit, err := LinearFit([]float64{0, 1, 2, 3}, []float64{0.1, 0.9, 2.1, 2.9})
	require.NoError(t, err)
	assert.InDelta(t, 0.96, fit.Slope, 1e-9)
	assert.InDelta(t, 0.06, fit.Intercept, 1e-9)
}

func TestLinearFit_Errors(t *testing.T) {
	_, err := LinearFit([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = LinearFit([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = LinearFit([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestInitialModulus(t *testing.T) {
	strain := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}
	stress := make([]float64, len(strain))
	for i, s := range strain {
		stress[i] = 3000*s/100 + 1
	}
	// Beyond the initial region the curve bends over
	stress[5] = 20
	stress[6] = 10

	modulus, ok, err := InitialModulus(stress, strain, DefaultRegionSize)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 3000, modulus, 1e-6)
}

func TestInitialModulus_NotEnoughPoints(t *testing.T) {
	modulus, ok, err := InitialModulus([]float64{5, 50}, []float64{1, 5}, 0.02)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, modulus)
}

func TestInitialModulus_ConstantStrain(t *testing.T) {
	modulus, ok, err := InitialModulus([]float64{1, 2, 60, 80}, []float64{0, 0, 3, 4}, 0.02)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, modulus)
}

func TestInitialModulus_DefaultRegion(t *testing.T) {
	strain := []float64{0, 1, 2, 4}
	stress := []float64{0, 10, 20, 0}
	modulus, ok, err := InitialModulus(stress, strain, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1000, modulus, 1e-9)
}
