package render

import (
	"github.com/wcharczuk/go-chart/v2"
)

// Geometry describes where the data area of a rendered curve chart lies in
// image pixels and which strain range it spans.
type Geometry struct {
	Width, Height int       // image size in pixels
	Plot          chart.Box // data area in image pixels
	XMin, XMax    float64   // strain range (percent) across the data area
}

// Valid reports whether the geometry can be used for mapping
func (g Geometry) Valid() bool {
	return g.Plot.Width() > 0 && g.Plot.Height() > 0 && g.XMax > g.XMin
}

// PixelToX maps an image x coordinate to strain
func (g Geometry) PixelToX(px float64) float64 {
	if !g.Valid() {
		return 0
	}
	return g.XMin + (px-float64(g.Plot.Left))/float64(g.Plot.Width())*(g.XMax-g.XMin)
}

// XToPixel maps strain to an image x coordinate
func (g Geometry) XToPixel(x float64) float64 {
	if !g.Valid() {
		return 0
	}
	return float64(g.Plot.Left) + (x-g.XMin)/(g.XMax-g.XMin)*float64(g.Plot.Width())
}

// InPlot reports whether an image pixel lies inside the data area
func (g Geometry) InPlot(px, py float64) bool {
	if !g.Valid() {
		return false
	}
	return px >= float64(g.Plot.Left) && px <= float64(g.Plot.Right) &&
		py >= float64(g.Plot.Top) && py <= float64(g.Plot.Bottom)
}

// ContainRect computes where an image of size imgW x imgH is drawn inside a
// view of size viewW x viewH when scaled to fit while keeping aspect ratio.
func ContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	scale = viewW / imgW
	if s := viewH / imgH; s < scale {
		scale = s
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}
