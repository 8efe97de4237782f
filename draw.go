package turtle

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

const (
	// turtleSize is the length of the turtle arrow in pixels.
	turtleSize = 14
	// markerRadius is the radius of the stroke start markers in pixels.
	markerRadius = 3
)

var markerColor = color.NRGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xc0}

// drawTurtle draws the classic turtle arrow at the cursor position, pointing
// along its heading.
func (g *Gui) drawTurtle(ops *op.Ops, tr Transform, origin image.Point, s Snapshot) {
	tip := g.point(tr, origin, s.Position)

	// Pixel space is flipped vertically, so is the heading.
	a := -radians(s.Heading)
	fwd := f32.Pt(float32(math.Cos(a)), float32(math.Sin(a)))
	side := f32.Pt(-fwd.Y, fwd.X)

	back := tip.Sub(fwd.Mul(turtleSize))
	left := back.Add(side.Mul(turtleSize / 2.5))
	right := back.Sub(side.Mul(turtleSize / 2.5))
	notch := tip.Sub(fwd.Mul(turtleSize * 0.7))

	var path clip.Path
	path.Begin(ops)
	path.MoveTo(tip)
	path.LineTo(left)
	path.LineTo(notch)
	path.LineTo(right)
	path.Close()

	col := s.Color
	if col.A == 0 {
		col = InkColor
	}
	paint.FillShape(ops, col, clip.Outline{Path: path.End()}.Op())
}

// drawStrokeStarts marks the first point of every stroke with a circle.
func (g *Gui) drawStrokeStarts(ops *op.Ops, tr Transform, origin image.Point, d *Drawing) {
	for i := range d.Strokes {
		g.drawCircle(ops, g.point(tr, origin, d.Strokes[i].Start()), markerRadius)
	}
}

// drawCircle draws a filled circle centered on c with the provided radius.
func (g *Gui) drawCircle(ops *op.Ops, c f32.Point, radius float32) {
	var (
		orig = c.Sub(f32.Pt(radius, 0))
		f    = f32.Pt(radius, 0)
		path clip.Path
	)

	path.Begin(ops)
	path.MoveTo(orig)
	path.Arc(f, f, 2*math.Pi)
	path.Close()

	paint.FillShape(ops, markerColor, clip.Outline{Path: path.End()}.Op())
}

// point converts a world point to a Gio f32.Point inside the drawing square.
func (g *Gui) point(tr Transform, origin image.Point, p Point) f32.Point {
	x, y := tr.Apply(p)
	return f32.Point{
		X: float32(x) + float32(origin.X),
		Y: float32(y) + float32(origin.Y),
	}
}
