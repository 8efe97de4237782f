package turtle

import "image/color"

var (
	// InkColor is the dark blue every stroke of the doodle is drawn with.
	InkColor = color.NRGBA{R: 0x00, G: 0x00, B: 0xa8, A: 0xff}
	// PaperColor is the canvas background.
	PaperColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Doodle replays the whole figure on c: the loops, the scallops,
// the face/body outline and the small tail.
func Doodle(c *Cursor) {
	c.Color(InkColor)
	c.HideTurtle()

	Loops(c)
	Scallops(c)
	Outline(c)
	Tail(c)
}

// start lifts the pen, returns home and jumps to (x, y) ready to draw
// with a pen of width w.
func start(c *Cursor, x, y, w float64) {
	c.PenUp()
	c.Home()
	c.Teleport(x, y)
	c.PenSize(w)
	c.PenDown()
}

// Loops draws a chain of six curls. Each pair of opposed arcs nets no
// change in heading.
func Loops(c *Cursor) {
	start(c, -47, -15, 8)

	c.SetHeading(130)
	for i := 0; i < 6; i++ {
		c.Circle(-5, 260)
		c.Circle(5, 260)
	}
}

// Scallops draws twelve up and down waves with a thick pen.
func Scallops(c *Cursor) {
	start(c, -47, -45, 18)

	c.Left(90)
	for i := 0; i < 12; i++ {
		c.Forward(14)
		c.Circle(-2, 180)
		c.Forward(14)
		c.Circle(2, 180)
	}
}

// Outline draws the face and body contour.
func Outline(c *Cursor) {
	start(c, -52, 15, 3)

	c.Left(100)
	c.Forward(3.2)
	c.Right(120)
	c.Forward(2)
	c.Left(60)
	c.Forward(12)
	c.Circle(8, 110)
	c.Right(140)
	c.Circle(16, 80)
	c.Right(130)
	c.Circle(16, 77)
	c.Right(120)
	c.Circle(12, 90)
	c.Right(130)
	c.Circle(12, 80)
	c.Right(130)
	c.Circle(12, 80)
	c.Right(120)
	c.Circle(16, 80)
	c.Right(130)
	c.Circle(11.6, 123)
	c.Forward(7.6)
	c.Left(60)
	c.Forward(2)
}

// Tail draws the small curl starting at the origin and ends on the y axis.
func Tail(c *Cursor) {
	c.PenUp()
	c.Home()
	c.PenSize(3)
	c.PenDown()

	c.Forward(15)
	c.Left(180)
	c.Circle(-5, 160)
	c.Forward(1)
	c.Circle(2.5, 160)
	c.SetX(0)
}
