package icons

import "image"

// Ship renders the ship billboard: a blue triangle silhouette on a
// transparent background.
func Ship(size int) image.Image {
	r := NewRenderer(size)
	r.DrawShip()
	return r.Image()
}

// DrawShip draws the ship silhouette onto the canvas. Vertex positions are
// proportional to the canvas size, using truncating integer division so the
// shape is stable across sizes.
func (r *Renderer) DrawShip() {
	s := r.size
	triangle := Polygon{
		{s / 2, s / 5},         // nose
		{s / 5, s * 4 / 5},     // bottom left
		{s * 4 / 5, s * 4 / 5}, // bottom right
	}

	r.FillPolygon(triangle, ShipPalette.Fill)
	r.StrokePolygon(triangle, ShipPalette.Outline)
}
