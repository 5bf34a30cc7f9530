package model

// Column headers of a specimen export from the test frame
const (
	ColumnLoad         = "Load (N)"
	ColumnTime         = "Time (s)"
	ColumnDisplacement = "Displacement (mm)"
	ColumnStress       = "Stress (MPa)"
	ColumnStrain       = "Strain (%)"
)

// SpecimenColumns lists the numeric columns a specimen file must carry
var SpecimenColumns = []string{ColumnLoad, ColumnTime, ColumnDisplacement, ColumnStress, ColumnStrain}

// CurveColumns lists the columns needed to draw a stress-strain curve
var CurveColumns = []string{ColumnStrain, ColumnStress}

// Specimen holds one cleaned specimen record. All slices have equal length.
type Specimen struct {
	Name         string
	Load         []float64
	Time         []float64
	Displacement []float64
	Stress       []float64 // MPa
	Strain       []float64 // percent
}

// Len returns the number of samples
func (s *Specimen) Len() int {
	return len(s.Stress)
}

// Curve returns the stress-strain view of the specimen
func (s *Specimen) Curve() *Curve {
	return &Curve{Name: s.Name, Strain: s.Strain, Stress: s.Stress}
}

// Curve is a stress-strain curve. Strain is in percent, stress in MPa.
type Curve struct {
	Name   string
	Strain []float64
	Stress []float64
}

// Len returns the number of points
func (c *Curve) Len() int {
	return len(c.Strain)
}

// Bounds returns the min/max of strain and stress, ok=false for an empty curve
func (c *Curve) Bounds() (strainMin, strainMax, stressMin, stressMax float64, ok bool) {
	if c.Len() == 0 {
		return 0, 0, 0, 0, false
	}
	strainMin, strainMax = c.Strain[0], c.Strain[0]
	stressMin, stressMax = c.Stress[0], c.Stress[0]
	for i := 1; i < c.Len(); i++ {
		strainMin = min(strainMin, c.Strain[i])
		strainMax = max(strainMax, c.Strain[i])
		stressMin = min(stressMin, c.Stress[i])
		stressMax = max(stressMax, c.Stress[i])
	}
	return strainMin, strainMax, stressMin, stressMax, true
}
