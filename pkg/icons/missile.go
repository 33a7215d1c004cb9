package icons

import "image"

// Missile renders the missile billboard: a red upward arrow silhouette
// (shaft, head, and tail fins) on a transparent background.
func Missile(size int) image.Image {
	r := NewRenderer(size)
	r.DrawMissile()
	return r.Image()
}

// DrawMissile draws the missile silhouette onto the canvas.
func (r *Renderer) DrawMissile() {
	s := r.size
	cx := s / 2
	shaftTop := s / 8
	shaftBottom := s * 3 / 4
	shaftWidth := s / 6

	shaft := Polygon{
		{cx - shaftWidth/2, shaftTop},
		{cx + shaftWidth/2, shaftTop},
		{cx + shaftWidth/2, shaftBottom},
		{cx - shaftWidth/2, shaftBottom},
	}
	head := Polygon{
		{cx, s / 16}, // tip
		{cx - shaftWidth, shaftTop},
		{cx + shaftWidth, shaftTop},
	}
	tail := Polygon{
		{cx, s * 7 / 8}, // bottom point
		{cx - shaftWidth, shaftBottom},
		{cx + shaftWidth, shaftBottom},
	}

	// All fills first, then all outlines, so outlines stay on top where the
	// head and fins overlap the shaft.
	shapes := []Polygon{shaft, head, tail}
	for _, poly := range shapes {
		r.FillPolygon(poly, MissilePalette.Fill)
	}
	for _, poly := range shapes {
		r.StrokePolygon(poly, MissilePalette.Outline)
	}
}
