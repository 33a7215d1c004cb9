// Package script renders icons defined by small JavaScript files, for teams
// that need billboard silhouettes beyond the built-in ship and missile.
//
// A script draws through the global canvas API onto a transparent square
// canvas; coordinates are pixels and the canvas size is exposed as `size`:
//
//	canvas.polygon([[size/2, size/5], [size/5, size*4/5], [size*4/5, size*4/5]],
//		"#4488FF", "#285AB4");
package script

import (
	"fmt"
	"image"

	"github.com/dop251/goja"

	"billboardgen/pkg/icons"
)

// Engine executes icon scripts on a goja runtime.
type Engine struct {
	vm *goja.Runtime
}

// New creates an engine with a fresh runtime and the console API registered.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}
	registerConsole(vm)
	return e
}

// Render executes src and returns the icon it drew. name is used in error
// messages and stack traces.
func (e *Engine) Render(name, src string, size int) (image.Image, error) {
	r := icons.NewRenderer(size)
	e.registerCanvas(r)
	e.vm.Set("size", size)

	if _, err := e.vm.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return r.Image(), nil
}

// registerCanvas sets up the global `canvas` object targeting r.
func (e *Engine) registerCanvas(r *icons.Renderer) {
	canvas := e.vm.NewObject()
	canvas.Set("polygon", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("canvas.polygon: points and fill color required"))
		}

		poly, err := e.exportPolygon(call.Arguments[0])
		if err != nil {
			panic(e.vm.NewTypeError("canvas.polygon: %v", err))
		}

		fill, err := icons.ParseHexColor(call.Arguments[1].String())
		if err != nil {
			panic(e.vm.NewTypeError("canvas.polygon: %v", err))
		}
		r.FillPolygon(poly, fill)

		// Outline is optional.
		if len(call.Arguments) > 2 {
			outline, err := icons.ParseHexColor(call.Arguments[2].String())
			if err != nil {
				panic(e.vm.NewTypeError("canvas.polygon: %v", err))
			}
			r.StrokePolygon(poly, outline)
		}
		return goja.Undefined()
	})
	e.vm.Set("canvas", canvas)
}

// exportPolygon converts a JS array of [x, y] pairs into a Polygon.
func (e *Engine) exportPolygon(v goja.Value) (icons.Polygon, error) {
	var raw [][]int
	if err := e.vm.ExportTo(v, &raw); err != nil {
		return nil, fmt.Errorf("points must be an array of [x, y] pairs: %w", err)
	}

	poly := make(icons.Polygon, 0, len(raw))
	for i, pt := range raw {
		if len(pt) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 2", i, len(pt))
		}
		poly = append(poly, image.Point{X: pt[0], Y: pt[1]})
	}
	if len(poly) < 3 {
		return nil, fmt.Errorf("need at least 3 points, got %d", len(poly))
	}
	return poly, nil
}
