package icons

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Downscale resamples src to a size x size square using CatmullRom
// filtering, preserving transparency. Intended for producing smaller LOD
// variants of a base icon.
func Downscale(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// MipmapName returns the filename for a downscaled variant of base,
// e.g. MipmapName("ship_icon.png", 64) == "ship_icon_64.png".
func MipmapName(base string, size int) string {
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), size, ext)
}
