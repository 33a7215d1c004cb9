package visualtest

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Result contains the outcome of an image comparison.
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest per-channel difference found
}

// Options configures an image comparison.
type Options struct {
	// Tolerance is the maximum allowed difference per color channel (0-255).
	// Use 0 for exact matches; 2-5 absorbs minor rasterization differences.
	Tolerance int

	// MaxDifferentPercent, if > 0, lets a comparison pass when the share of
	// differing pixels stays at or below this percentage.
	MaxDifferentPercent float64

	// DiffImagePath, if set, saves an image highlighting differing pixels in
	// red (matching pixels are rendered grayscale) when the comparison fails.
	DiffImagePath string
}

// DefaultOptions returns sensible defaults for comparing generated icons.
func DefaultOptions() Options {
	return Options{Tolerance: 2}
}

// Compare compares two images pixel by pixel.
func Compare(actual, expected image.Image, opts Options) (*Result, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &Result{Match: false}, fmt.Errorf(
			"image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	result := &Result{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}

	var diffImg *image.RGBA
	if opts.DiffImagePath != "" {
		diffImg = image.NewRGBA(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			diff := pixelDiff(actual.At(x, y), expected.At(x, y))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			if diff > opts.Tolerance {
				result.Match = false
				result.DifferentPixels++
				if diffImg != nil {
					diffImg.Set(x, y, color.RGBA{255, 0, 0, 255})
				}
			} else if diffImg != nil {
				r, _, _, _ := actual.At(x, y).RGBA()
				gray := uint8(r >> 8)
				diffImg.Set(x, y, color.RGBA{gray, gray, gray, 255})
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	if diffImg != nil && !result.Match {
		if err := savePNG(diffImg, opts.DiffImagePath); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}

	return result, nil
}

// CompareFiles compares two PNG files pixel by pixel.
func CompareFiles(actualPath, expectedPath string, opts Options) (*Result, error) {
	actual, err := loadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expected, err := loadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}
	return Compare(actual, expected, opts)
}

// pixelDiff returns the largest per-channel difference between two colors,
// in 8-bit channel units.
func pixelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()

	diff := 0
	for _, d := range []int{
		int(ar>>8) - int(br>>8),
		int(ag>>8) - int(bg>>8),
		int(ab>>8) - int(bb>>8),
		int(aa>>8) - int(ba>>8),
	} {
		if d < 0 {
			d = -d
		}
		if d > diff {
			diff = d
		}
	}
	return diff
}

func loadPNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return png.Decode(file)
}

func savePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
