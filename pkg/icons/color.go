package icons

import (
	"fmt"
	"image/color"
	"strconv"
)

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: missing '#'", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		// Expand shorthand: #48F -> #4488FF
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: expected 3 or 6 digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
