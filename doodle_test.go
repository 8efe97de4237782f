package turtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoodle_LoopPairsKeepHeading(t *testing.T) {
	assert := assert.New(t)

	c := NewCursor()
	c.Teleport(-47, -15)
	c.SetHeading(130)
	c.PenDown()

	prev := c.Position()
	for i := 0; i < 6; i++ {
		c.Circle(-5, 260)
		c.Circle(5, 260)

		assert.InDelta(130, c.Heading(), 1e-9)
		// Two opposed arcs of equal radius shift the cursor sideways by the
		// same offset each time.
		step := c.Position().Sub(prev)
		assert.InDelta(20*math.Cos(radians(40)), step.X, 1e-9)
		assert.InDelta(0, step.Y, 1e-9)
		prev = c.Position()
	}
}

func TestDoodle_ScallopsKeepHeading(t *testing.T) {
	assert := assert.New(t)

	c := NewCursor()
	Loops(c)
	Scallops(c)

	assert.InDelta(90, c.Heading(), 1e-9)
	assert.InDelta(49, c.Position().X, 1e-9)
	assert.InDelta(-45, c.Position().Y, 1e-9)
}

func TestDoodle_SubFiguresStartAtTheirAnchors(t *testing.T) {
	assert := assert.New(t)

	c := NewCursor()
	Doodle(c)
	d := c.Drawing()

	assert.Len(d.Strokes, 4)
	anchors := []Point{Pt(-47, -15), Pt(-47, -45), Pt(-52, 15), Pt(0, 0)}
	widths := []float64{8, 18, 3, 3}
	for i, s := range d.Strokes {
		assert.InDelta(0, s.Start().Dist(anchors[i]), 1e-9, "stroke %d", i)
		assert.Equal(widths[i], s.Width, "stroke %d", i)
		assert.Equal(InkColor, s.Color, "stroke %d", i)
	}
	// Sub-figure A consists of arcs only, twelve of them.
	assert.Len(d.Strokes[0].Segments, 12)
	// Sub-figure B: four segments per repetition.
	assert.Len(d.Strokes[1].Segments, 48)
}

func TestDoodle_NoStrokeBridgesTeleports(t *testing.T) {
	c := NewCursor()
	Doodle(c)
	d := c.Drawing()

	for i := 1; i < len(d.Strokes); i++ {
		prev := d.Strokes[i-1]
		end := prev.Segments[len(prev.Segments)-1].To
		for _, seg := range d.Strokes[i].Segments {
			assert.NotEqual(t, end, seg.From)
		}
	}
}

func TestDoodle_OutlineEnd(t *testing.T) {
	assert := assert.New(t)

	c := NewCursor()
	Outline(c)
	assert.InDelta(-49.6193, c.Position().X, 1e-4)
	assert.InDelta(14.5411, c.Position().Y, 1e-4)
	assert.InDelta(280, c.Heading(), 1e-9)
}

func TestDoodle_EndsOnTheYAxis(t *testing.T) {
	assert := assert.New(t)

	c := NewCursor()
	Doodle(c)

	assert.True(c.IsDown())
	assert.InDelta(0, c.Position().X, 1e-12)
	assert.InDelta(14.8897, c.Position().Y, 1e-4)
	assert.InDelta(180, c.Heading(), 1e-9)
	assert.False(c.Drawing().Cursor.Visible)
}

func TestDoodle_FitsTheWorld(t *testing.T) {
	assert := assert.New(t)

	c := NewCursor()
	Doodle(c)

	min, max, ok := c.Drawing().Bounds()
	assert.True(ok)
	world := DefaultWorld
	assert.True(min.X >= world.Min.X && min.Y >= world.Min.Y, "min %v", min)
	assert.True(max.X <= world.Max.X && max.Y <= world.Max.Y, "max %v", max)
}

func TestDoodle_IsDeterministic(t *testing.T) {
	a, b := NewCursor(), NewCursor()
	Doodle(a)
	Doodle(b)

	assert.Equal(t, a.Drawing(), b.Drawing())
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}
