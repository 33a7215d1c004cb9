package icons

import (
	"image"
	"image/png"
	"os"
	"testing"
)

func loadTestPNG(t *testing.T, path string) (image.Image, error) {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return png.Decode(file)
}
