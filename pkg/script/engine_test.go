package script

import (
	"image"
	"strings"
	"testing"
)

func renderScript(t *testing.T, src string, size int) image.Image {
	t.Helper()
	img, err := New().Render("test.js", src, size)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return img
}

func pixelAt(img image.Image, x, y int) (r, g, b, a uint8) {
	pr, pg, pb, pa := img.At(x, y).RGBA()
	return uint8(pr >> 8), uint8(pg >> 8), uint8(pb >> 8), uint8(pa >> 8)
}

func TestRenderTriangle(t *testing.T) {
	img := renderScript(t, `
		canvas.polygon([[16, 4], [4, 28], [28, 28]], "#4488FF", "#285AB4");
	`, 32)

	if img.Bounds().Dx() != 32 {
		t.Fatalf("expected 32px canvas, got %d", img.Bounds().Dx())
	}

	r, g, b, a := pixelAt(img, 16, 22)
	if r != 68 || g != 136 || b != 255 || a != 255 {
		t.Errorf("expected fill color inside triangle, got (%d,%d,%d,%d)", r, g, b, a)
	}

	if _, _, _, a := pixelAt(img, 1, 1); a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
}

func TestRenderUsesSizeGlobal(t *testing.T) {
	img := renderScript(t, `
		canvas.polygon([[0, 0], [size, 0], [size, size], [0, size]], "#FF4444");
	`, 16)

	r, _, _, a := pixelAt(img, 8, 8)
	if r != 255 || a != 255 {
		t.Errorf("expected solid fill at center, got r=%d a=%d", r, a)
	}
}

func TestRenderOutlineOptional(t *testing.T) {
	// No outline argument: only the fill is painted.
	img := renderScript(t, `
		canvas.polygon([[0, 8], [16, 8], [16, 16], [0, 16]], "#00FF00");
	`, 16)

	_, g, _, a := pixelAt(img, 8, 12)
	if g != 255 || a != 255 {
		t.Errorf("expected green fill, got g=%d a=%d", g, a)
	}
}

func TestRenderScriptError(t *testing.T) {
	_, err := New().Render("broken.js", `throw new Error("boom");`, 16)
	if err == nil {
		t.Fatal("expected error from throwing script")
	}
	if !strings.Contains(err.Error(), "broken.js") {
		t.Errorf("expected script name in error, got: %v", err)
	}
}

func TestRenderBadArguments(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing args", `canvas.polygon([[0, 0], [1, 0], [1, 1]]);`},
		{"bad fill color", `canvas.polygon([[0, 0], [1, 0], [1, 1]], "notacolor");`},
		{"bad outline color", `canvas.polygon([[0, 0], [1, 0], [1, 1]], "#FFF", "nope");`},
		{"too few points", `canvas.polygon([[0, 0], [1, 1]], "#FFF");`},
		{"not point pairs", `canvas.polygon([[0, 0, 0], [1, 1, 1], [2, 2, 2]], "#FFF");`},
	}
	for _, tt := range tests {
		if _, err := New().Render("test.js", tt.src, 16); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestConsoleAvailable(t *testing.T) {
	img := renderScript(t, `
		console.log("drawing", 1, "shape");
		console.warn("low contrast");
		canvas.polygon([[0, 0], [8, 0], [4, 8]], "#112233");
	`, 8)

	r, g, b, _ := pixelAt(img, 4, 2)
	if r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("expected #112233 fill, got (%d,%d,%d)", r, g, b)
	}
}
