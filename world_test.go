package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorld_Transform(t *testing.T) {
	assert := assert.New(t)

	tr := NewTransform(DefaultWorld, 600, 600)

	x, y := tr.Apply(Pt(-60, 60))
	assert.InDelta(0, x, 1e-9)
	assert.InDelta(0, y, 1e-9)

	x, y = tr.Apply(Pt(60, -60))
	assert.InDelta(600, x, 1e-9)
	assert.InDelta(600, y, 1e-9)

	x, y = tr.Apply(Pt(0, 0))
	assert.InDelta(300, x, 1e-9)
	assert.InDelta(300, y, 1e-9)

	assert.InDelta(5, tr.Scale(), 1e-9)
	assert.InDelta(8, tr.PenWidth(8), 1e-9)
}

func TestWorld_PenWidthScalesWithCanvas(t *testing.T) {
	assert := assert.New(t)

	tr := NewTransform(DefaultWorld, 300, 1200)
	assert.InDelta(4, tr.PenWidth(8), 1e-9)
	assert.InDelta(2.5, tr.Scale(), 1e-9)
}

func TestWorld_ScreenValidate(t *testing.T) {
	assert := assert.New(t)

	s := DefaultScreen()
	assert.NoError(s.Validate())

	s.Width = 0
	assert.Error(s.Validate())

	s = DefaultScreen()
	s.World = World{Min: Pt(10, 0), Max: Pt(-10, 5)}
	assert.Error(s.Validate())
}
