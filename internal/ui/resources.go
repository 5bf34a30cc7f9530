package ui

import (
	"bytes"
	"image"
	"image/png"

	"fyne.io/fyne/v2"

	"github.com/ytget/flexlab/internal/render"
)

const (
	AppIcon     = "flexlab.png"
	appIconSize = 64
)

// LoadLogoResource loads the logo from file path, falling back to a
// generated icon
func LoadLogoResource() (fyne.Resource, error) {
	if res, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		return res, nil
	}
	return GeneratedIcon()
}

// GeneratedIcon draws a small bar chart icon in the viridis palette
func GeneratedIcon() (fyne.Resource, error) {
	img := image.NewRGBA(image.Rect(0, 0, appIconSize, appIconSize))
	palette := render.Viridis(4)
	barWidth := appIconSize / len(palette)
	for i, c := range palette {
		height := appIconSize * (i + 1) / len(palette)
		for x := i * barWidth; x < (i+1)*barWidth-2; x++ {
			for y := appIconSize - height; y < appIconSize; y++ {
				img.Set(x, y, c)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return fyne.NewStaticResource(AppIcon, buf.Bytes()), nil
}
