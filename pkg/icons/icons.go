package icons

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

const (
	// DefaultSize is the canvas size used for the shipped billboard assets.
	DefaultSize = 256

	// OutlineWidth is the stroke width for silhouette outlines, in pixels.
	OutlineWidth = 2.0

	ShipFilename    = "ship_icon.png"
	MissileFilename = "missile_icon.png"
)

// Palette pairs a silhouette's fill color with its outline color.
type Palette struct {
	Fill    color.RGBA
	Outline color.RGBA
}

var (
	// ShipPalette is the blue used for ship silhouettes (#4488FF with a darker outline).
	ShipPalette = Palette{
		Fill:    color.RGBA{68, 136, 255, 255},
		Outline: color.RGBA{40, 90, 180, 255},
	}

	// MissilePalette is the red used for missile silhouettes (#FF4444 with a darker outline).
	MissilePalette = Palette{
		Fill:    color.RGBA{255, 68, 68, 255},
		Outline: color.RGBA{180, 40, 40, 255},
	}
)

// Polygon is an ordered list of vertices in pixel coordinates.
type Polygon []image.Point

// Renderer draws silhouettes onto a square transparent canvas.
type Renderer struct {
	context *gg.Context
	size    int
}

// NewRenderer creates a renderer with a size x size canvas.
// The canvas starts fully transparent.
func NewRenderer(size int) *Renderer {
	return &Renderer{context: gg.NewContext(size, size), size: size}
}

// Size returns the canvas size in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// FillPolygon fills the polygon with the given color.
func (r *Renderer) FillPolygon(poly Polygon, c color.RGBA) {
	r.tracePath(poly)
	r.setColor(c)
	r.context.Fill()
}

// StrokePolygon outlines the polygon with the given color at OutlineWidth.
func (r *Renderer) StrokePolygon(poly Polygon, c color.RGBA) {
	r.tracePath(poly)
	r.setColor(c)
	r.context.SetLineWidth(OutlineWidth)
	r.context.Stroke()
}

func (r *Renderer) tracePath(poly Polygon) {
	if len(poly) == 0 {
		return
	}
	r.context.NewSubPath()
	r.context.MoveTo(float64(poly[0].X), float64(poly[0].Y))
	for _, pt := range poly[1:] {
		r.context.LineTo(float64(pt.X), float64(pt.Y))
	}
	r.context.ClosePath()
}

func (r *Renderer) setColor(c color.RGBA) {
	r.context.SetRGBA(
		float64(c.R)/255.0,
		float64(c.G)/255.0,
		float64(c.B)/255.0,
		float64(c.A)/255.0,
	)
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return SavePNG(r.Image(), path)
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
