package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specimenCSV = `Load (N),Time (s),Displacement (mm),Stress (MPa),Strain (%),Comment
0,0,0,0,0,start
10,0.1,0.01,5.5,0.1,
20,0.2,0.02,inf,0.2,
30,0.3,0.03,n/a,0.3,
40,0.4,0.04,22,0.4,
50,0.5,,27.5,0.5,
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSpecimen(t *testing.T) {
	path := writeFixture(t, "PLA_01.csv", specimenCSV)

	spec, err := ReadSpecimen(path)
	require.NoError(t, err)

	assert.Equal(t, "PLA_01.csv", spec.Name)
	// inf, n/a and the empty displacement rows are dropped
	assert.Equal(t, []float64{0, 5.5, 22}, spec.Stress)
	assert.Equal(t, []float64{0, 0.1, 0.4}, spec.Strain)
	assert.Equal(t, []float64{0, 10, 40}, spec.Load)
	assert.Equal(t, 3, spec.Len())
}

func TestReadCurve_KeepsRowsWithOtherGaps(t *testing.T) {
	path := writeFixture(t, "PLA_01.csv", specimenCSV)

	curve, err := ReadCurve(path)
	require.NoError(t, err)

	// The missing displacement does not matter for the curve
	assert.Equal(t, []float64{0, 5.5, 22, 27.5}, curve.Stress)
	assert.Equal(t, []float64{0, 0.1, 0.4, 0.5}, curve.Strain)
}

func TestReadColumns_BOMAndSpaces(t *testing.T) {
	in := "\ufeffStrain (%), Stress (MPa)\n0.1, 2\n0.2,4\n"
	cols, err := ReadColumns(strings.NewReader(in), []string{"Strain (%)", "Stress (MPa)"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, cols["Strain (%)"])
	assert.Equal(t, []float64{2, 4}, cols["Stress (MPa)"])
}

func TestReadColumns_Errors(t *testing.T) {
	_, err := ReadColumns(strings.NewReader(""), []string{"Stress (MPa)"})
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ReadColumns(strings.NewReader("Load (N)\n1\n"), []string{"Stress (MPa)", "Strain (%)"})
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Stress (MPa), Strain (%)")

	_, err = ReadSpecimen(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadColumns_HeaderOnly(t *testing.T) {
	cols, err := ReadColumns(strings.NewReader("Strain (%),Stress (MPa)\n"), []string{"Strain (%)", "Stress (MPa)"})
	require.NoError(t, err)
	assert.NotNil(t, cols["Strain (%)"])
	assert.Empty(t, cols["Strain (%)"])
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1.5, parseNumber(" 1.5 "))
	assert.Equal(t, -2e3, parseNumber("-2e3"))
	assert.True(t, math.IsNaN(parseNumber("")))
	assert.True(t, math.IsNaN(parseNumber("abc")))
	assert.True(t, math.IsNaN(parseNumber("-Inf")))
}
