package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Fixed colours of the curve chart
var (
	ColorData      = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	ColorFit       = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	ColorMarker    = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	ColorHighlight = drawing.Color{R: 255, G: 221, B: 0, A: 56}
	ColorGrid      = drawing.Color{R: 220, G: 220, B: 220, A: 255}
)

// viridis anchor colours at 0, 0.25, 0.5, 0.75 and 1
var viridisStops = []drawing.Color{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 59, G: 82, B: 139, A: 255},
	{R: 33, G: 145, B: 140, A: 255},
	{R: 94, G: 201, B: 98, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

// Viridis returns n colours sampled evenly along the viridis colour map
func Viridis(n int) []drawing.Color {
	if n <= 0 {
		return nil
	}
	out := make([]drawing.Color, n)
	for i := range out {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = viridisAt(t)
	}
	return out
}

func viridisAt(t float64) drawing.Color {
	if t <= 0 {
		return viridisStops[0]
	}
	if t >= 1 {
		return viridisStops[len(viridisStops)-1]
	}
	pos := t * float64(len(viridisStops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := viridisStops[i], viridisStops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*frac + 0.5)
	}
	return drawing.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
