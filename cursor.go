package turtle

import "image/color"

// DefaultPenWidth is the stroke thickness of a fresh cursor.
const DefaultPenWidth = 1

// Cursor is a stateful 2D pen. It starts at the origin heading along +x with
// the pen up, and records every stroke traced while the pen is down.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	pos     Point
	heading float64
	down    bool
	width   float64
	color   color.NRGBA
	visible bool

	strokes []Stroke
	// open is true while the last stroke can be extended.
	open bool
}

// NewCursor returns a cursor at (0,0), heading 0, pen up.
func NewCursor() *Cursor {
	return &Cursor{
		width:   DefaultPenWidth,
		color:   color.NRGBA{A: 0xff},
		visible: true,
	}
}

// Position returns the current position.
func (c *Cursor) Position() Point { return c.pos }

// Heading returns the current heading in degrees, in the [0, 360) interval.
func (c *Cursor) Heading() float64 { return c.heading }

// IsDown reports whether motion leaves a stroke.
func (c *Cursor) IsDown() bool { return c.down }

// Width returns the pen width applied to new strokes.
func (c *Cursor) Width() float64 { return c.width }

// PenColor returns the stroke color.
func (c *Cursor) PenColor() color.NRGBA { return c.color }

// PenUp lifts the pen.
func (c *Cursor) PenUp() {
	c.down = false
	c.open = false
}

// PenDown lowers the pen. The next motion starts a new stroke.
func (c *Cursor) PenDown() {
	if !c.down {
		c.open = false
	}
	c.down = true
}

// PenSize sets the width of subsequent strokes. Non-positive widths are ignored.
func (c *Cursor) PenSize(w float64) {
	if w <= 0 || w == c.width {
		return
	}
	c.width = w
	c.open = false
}

// Color sets the stroke color of subsequent strokes.
func (c *Cursor) Color(col color.NRGBA) {
	if col == c.color {
		return
	}
	c.color = col
	c.open = false
}

// HideTurtle hides the cursor icon. It has no effect on the strokes.
func (c *Cursor) HideTurtle() { c.visible = false }

// ShowTurtle shows the cursor icon.
func (c *Cursor) ShowTurtle() { c.visible = true }

// Teleport jumps to (x, y) without drawing, whatever the pen state.
// A stroke being drawn ends here; the pen stays as it was.
func (c *Cursor) Teleport(x, y float64) {
	c.pos = Pt(x, y)
	c.open = false
}

// Home teleports to the origin and resets the heading to 0.
func (c *Cursor) Home() {
	c.Teleport(0, 0)
	c.heading = 0
}

// SetHeading sets the absolute heading in degrees.
func (c *Cursor) SetHeading(deg float64) {
	c.heading = normalize(deg)
}

// Left turns counterclockwise by deg degrees.
func (c *Cursor) Left(deg float64) {
	c.heading = normalize(c.heading + deg)
}

// Right turns clockwise by deg degrees.
func (c *Cursor) Right(deg float64) {
	c.heading = normalize(c.heading - deg)
}

// Forward moves d units along the heading.
func (c *Cursor) Forward(d float64) {
	c.lineTo(c.pos.Add(dir(c.heading).Mul(d)))
}

// Backward moves d units against the heading. The heading is unchanged.
func (c *Cursor) Backward(d float64) {
	c.Forward(-d)
}

// Goto moves to (x, y) in a straight line, drawing if the pen is down.
// The heading is unchanged.
func (c *Cursor) Goto(x, y float64) {
	c.lineTo(Pt(x, y))
}

// SetX moves horizontally to x, keeping y.
func (c *Cursor) SetX(x float64) {
	c.Goto(x, c.pos.Y)
}

// SetY moves vertically to y, keeping x.
func (c *Cursor) SetY(y float64) {
	c.Goto(c.pos.X, y)
}

// Circle traces an arc of the given radius sweeping extent degrees. The
// center lies radius units to the left of the cursor: a positive radius
// curves counterclockwise, a negative one clockwise. The heading changes by
// the signed sweep. A zero radius turns in place.
func (c *Cursor) Circle(radius, extent float64) {
	sweep := arcSweep(radius, extent)
	if radius == 0 {
		c.heading = normalize(c.heading + sweep)
		return
	}

	center := arcCenter(c.pos, c.heading, radius)
	from := c.pos
	to := center.Add(from.Sub(center).Rotate(sweep))
	c.heading = normalize(c.heading + sweep)
	c.pos = to

	if !c.down || extent == 0 {
		return
	}
	rel := from.Sub(center)
	c.emit(Segment{
		Kind:   ArcSegment,
		From:   from,
		To:     to,
		Center: center,
		Radius: rel.Len(),
		Start:  degrees(atan2(rel)),
		Sweep:  sweep,
	})
}

// FullCircle traces a whole circle of the given radius.
func (c *Cursor) FullCircle(radius float64) {
	c.Circle(radius, 360)
}

// Snapshot returns a copy of the cursor state.
func (c *Cursor) Snapshot() Snapshot {
	return Snapshot{
		Position: c.pos,
		Heading:  c.heading,
		PenDown:  c.down,
		Width:    c.width,
		Color:    c.color,
		Visible:  c.visible,
	}
}

// Drawing returns the strokes traced so far together with the cursor state.
// The returned value does not share memory with the cursor.
func (c *Cursor) Drawing() *Drawing {
	strokes := make([]Stroke, len(c.strokes))
	for i, s := range c.strokes {
		strokes[i] = s
		strokes[i].Segments = append([]Segment(nil), s.Segments...)
	}
	return &Drawing{Strokes: strokes, Cursor: c.Snapshot()}
}

func (c *Cursor) lineTo(to Point) {
	from := c.pos
	c.pos = to
	if !c.down || from == to {
		return
	}
	c.emit(Segment{Kind: LineSegment, From: from, To: to})
}

func (c *Cursor) emit(seg Segment) {
	if !c.open {
		c.strokes = append(c.strokes, Stroke{Width: c.width, Color: c.color})
		c.open = true
	}
	last := &c.strokes[len(c.strokes)-1]
	last.Segments = append(last.Segments, seg)
}
