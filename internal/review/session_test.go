package review

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/flexlab/internal/analysis"
	"github.com/ytget/flexlab/internal/model"
)

// writeCurve writes a linear specimen with the given modulus in MPa
func writeCurve(t *testing.T, dir, name string, modulus float64) {
	t.Helper()
	var b strings.Builder
	b.WriteString("Strain (%),Stress (MPa)\n")
	for i := 0; i <= 20; i++ {
		strain := float64(i) * 0.05
		fmt.Fprintf(&b, "%g,%g\n", strain, modulus*strain/100)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o644))
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	writeCurve(t, dir, "a.csv", 3000)
	writeCurve(t, dir, "b.csv", 2000)
	return NewSession(dir, []string{"a.csv", "b.csv"}, analysis.NewWindow(0.01, 0.2), nil)
}

func TestSessionStart(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "a.csv", s.Current())
	assert.Equal(t, "File 1 of 2", s.Progress())
	assert.False(t, s.Done())
	require.NotNil(t, s.Curve())
	assert.NoError(t, s.LoadError())

	m, ok := s.Modulus()
	require.True(t, ok)
	assert.InDelta(t, 3000, m, 1e-6)
	assert.Equal(t, "Modulus: 3000 MPa", s.ModulusText())
}

func TestSessionSetWindow(t *testing.T) {
	s := newTestSession(t)

	s.SetWindow(5, 6)
	_, ok := s.Modulus()
	assert.False(t, ok)
	assert.Equal(t, "Modulus: --", s.ModulusText())

	_, err := s.Accept()
	assert.ErrorIs(t, err, ErrNoFit)
	assert.Equal(t, "a.csv", s.Current(), "a failed accept must not advance")

	s.SetWindow(0.5, 0.1)
	assert.Equal(t, analysis.Window{Lo: 0.1, Hi: 0.5}, s.Window())
	_, ok = s.Modulus()
	assert.True(t, ok)
}

func TestSessionAcceptAdvances(t *testing.T) {
	s := newTestSession(t)

	res, err := s.Accept()
	require.NoError(t, err)
	assert.Equal(t, "a.csv", res.Filename)
	assert.Equal(t, 0.01, res.StrainMin)
	assert.Equal(t, 0.2, res.StrainMax)
	assert.InDelta(t, 3000, res.Modulus, 1e-6)

	assert.Equal(t, "b.csv", s.Current())
	assert.Equal(t, "File 2 of 2", s.Progress())
	assert.Equal(t, "Modulus: 2000 MPa", s.ModulusText())

	_, err = s.Accept()
	require.NoError(t, err)
	assert.True(t, s.Done())
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, "", s.Current())
	assert.Equal(t, "File 2 of 2", s.Progress())
	assert.Nil(t, s.Curve())

	_, err = s.Accept()
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Len(t, s.Results(), 2)
}

func TestSessionReacceptReplaces(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Accept()
	require.NoError(t, err)
	_, err = s.Accept()
	require.NoError(t, err)

	require.NoError(t, s.Select("a.csv"))
	s.SetWindow(0.3, 0.6)
	_, err = s.Accept()
	require.NoError(t, err)

	results := s.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "b.csv", results[0].Filename)
	assert.Equal(t, "a.csv", results[1].Filename)
	assert.Equal(t, 0.3, results[1].StrainMin)
}

func TestSessionSelectUnknown(t *testing.T) {
	s := newTestSession(t)
	err := s.Select("zzz.csv")
	assert.ErrorIs(t, err, ErrUnknownFile)
	assert.Equal(t, "a.csv", s.Current())
}

func TestSessionExport(t *testing.T) {
	s := newTestSession(t)
	path := filepath.Join(t.TempDir(), "modulus_results.csv")

	assert.ErrorIs(t, s.Export(path), ErrNoResults)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = s.Accept()
	require.NoError(t, err)
	require.NoError(t, s.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "filename,strain_min,strain_max,modulus", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "a.csv,0.01,0.2,"), lines[1])
}

func TestSessionLoadError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"), []byte("Load (N)\n1\n"), 0o644))
	writeCurve(t, dir, "good.csv", 1000)

	s := NewSession(dir, []string{"bad.csv", "good.csv"}, analysis.NewWindow(0.01, 0.2), nil)
	assert.Error(t, s.LoadError())
	assert.Nil(t, s.Curve())
	assert.Equal(t, "Modulus: --", s.ModulusText())

	require.NoError(t, s.Select("good.csv"))
	assert.NoError(t, s.LoadError())
}

func TestSessionSetLoader(t *testing.T) {
	s := NewSession("data", []string{"x.csv"}, analysis.NewWindow(0, 1), nil)
	require.Error(t, s.LoadError())

	var loaded []string
	s.SetLoader(func(path string) (*model.Curve, error) {
		loaded = append(loaded, path)
		if filepath.Base(path) == "y.csv" {
			return nil, errors.New("boom")
		}
		return &model.Curve{Name: filepath.Base(path), Strain: []float64{0, 1}, Stress: []float64{0, 10}}, nil
	})
	assert.Equal(t, []string{filepath.Join("data", "x.csv")}, loaded)
	m, ok := s.Modulus()
	require.True(t, ok)
	assert.InDelta(t, 1000, m, 1e-9)
}

func TestSessionRefresh(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Accept()
	require.NoError(t, err)
	require.Equal(t, "b.csv", s.Current())

	// current file kept at its new position
	writeCurve(t, s.Dir(), "0.csv", 1000)
	s.Refresh([]string{"0.csv", "a.csv", "b.csv"})
	assert.Equal(t, "b.csv", s.Current())
	assert.Equal(t, "File 3 of 3", s.Progress())

	// current file removed: start over
	s.Refresh([]string{"0.csv", "a.csv"})
	assert.Equal(t, "0.csv", s.Current())
	assert.Equal(t, "Modulus: 1000 MPa", s.ModulusText())

	s.Refresh(nil)
	assert.True(t, s.Done())
	assert.Nil(t, s.Curve())
}

func TestSessionRefreshWhenDone(t *testing.T) {
	s := newTestSession(t)
	_, err := s.Accept()
	require.NoError(t, err)
	_, err = s.Accept()
	require.NoError(t, err)
	require.True(t, s.Done())

	s.Refresh([]string{"a.csv", "b.csv"})
	assert.True(t, s.Done())

	writeCurve(t, s.Dir(), "c.csv", 1500)
	s.Refresh([]string{"a.csv", "b.csv", "c.csv"})
	assert.Equal(t, "c.csv", s.Current())
	assert.Equal(t, "Modulus: 1500 MPa", s.ModulusText())
}
