package turtle

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/stoneagesculptor/turtle/utils"
)

// ReferenceSize is the canvas size, in pixels, at which pen widths are
// taken literally. Larger or smaller canvases scale the widths.
const ReferenceSize = 600

// World is the logical rectangle mapped onto the canvas.
type World struct {
	Min, Max Point
}

// DefaultWorld spans [-60, 60] on both axes.
var DefaultWorld = World{Min: Pt(-60, -60), Max: Pt(60, 60)}

// Screen describes the canvas a drawing is presented on.
type Screen struct {
	Title      string
	Width      int
	Height     int
	Background color.NRGBA
	World      World
}

// DefaultScreen returns a 600x600 white canvas showing DefaultWorld.
func DefaultScreen() Screen {
	return Screen{
		Title:      "Turtle",
		Width:      ReferenceSize,
		Height:     ReferenceSize,
		Background: PaperColor,
		World:      DefaultWorld,
	}
}

// Validate reports a screen that cannot be mapped to pixels.
func (s Screen) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}
	if s.World.Max.X <= s.World.Min.X || s.World.Max.Y <= s.World.Min.Y {
		return errors.Errorf("invalid world coordinates %v - %v", s.World.Min, s.World.Max)
	}
	return nil
}

// Transform maps world coordinates to pixel coordinates of a w x h canvas.
// The y axis is flipped: world y grows upwards, pixel y downwards.
type Transform struct {
	world  World
	sx, sy float64
	// pen converts pen widths to pixels.
	pen float64
}

// NewTransform returns the mapping of world onto a w x h pixel canvas.
func NewTransform(world World, w, h int) Transform {
	t := Transform{
		world: world,
		sx:    float64(w) / (world.Max.X - world.Min.X),
		sy:    float64(h) / (world.Max.Y - world.Min.Y),
	}
	t.pen = float64(utils.Min(w, h)) / ReferenceSize
	return t
}

// Apply converts a world point to pixel space.
func (t Transform) Apply(p Point) (x, y float64) {
	return (p.X - t.world.Min.X) * t.sx, (t.world.Max.Y - p.Y) * t.sy
}

// PenWidth converts a pen width to pixels.
func (t Transform) PenWidth(w float64) float64 {
	return w * t.pen
}

// Scale returns the world-to-pixel scale of the shorter axis.
func (t Transform) Scale() float64 {
	return utils.Min(t.sx, t.sy)
}

// Rect returns the pixel rectangle of a w x h canvas.
func (s Screen) Rect() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}
