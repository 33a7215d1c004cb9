package main

import (
	"flag"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"billboardgen/pkg/icons"
)

// billboardshow renders the built-in icons in a window so silhouettes can be
// checked without writing files or opening an image editor.
func main() {
	size := flag.Int("size", icons.DefaultSize, "icon size in pixels")
	flag.Parse()

	a := app.New()
	w := a.NewWindow("billboard preview")

	shipImg := canvas.NewImageFromImage(icons.Ship(*size))
	shipImg.FillMode = canvas.ImageFillOriginal
	missileImg := canvas.NewImageFromImage(icons.Missile(*size))
	missileImg.FillMode = canvas.ImageFillOriginal

	grid := container.NewGridWithColumns(2,
		container.NewVBox(shipImg, widget.NewLabel(icons.ShipFilename)),
		container.NewVBox(missileImg, widget.NewLabel(icons.MissileFilename)),
	)
	w.SetContent(grid)
	w.Resize(fyne.NewSize(float32(*size*2+40), float32(*size+60)))

	w.ShowAndRun()
}
