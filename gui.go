package turtle

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/pkg/errors"

	"github.com/stoneagesculptor/turtle/imop"
	"github.com/stoneagesculptor/turtle/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Gui is a canvas backed by a native Gio window. The drawing is rasterized
// to the largest square fitting the window and redrawn whenever the window
// size changes.
type Gui struct {
	Screen Screen
	Blend  *imop.Blend
	Comp   *imop.Composite
	// Debug shows the turtle and the start of every stroke.
	Debug bool

	win     *app.Window
	drawing *Drawing
	clicked bool

	// Last rasterized frame, reused while the window size is unchanged.
	frame struct {
		side int
		img  image.Image
	}
}

// NewGUI returns a window canvas for the given screen.
func NewGUI(s Screen) *Gui {
	return &Gui{Screen: s}
}

// Show opens the window. It is painted once the Gio main loop runs.
func (g *Gui) Show(d *Drawing) error {
	if err := g.Screen.Validate(); err != nil {
		return err
	}
	g.drawing = d
	if g.win == nil {
		g.win = app.NewWindow(
			app.Title(g.Screen.Title),
			app.Size(unit.Dp(float32(g.Screen.Width)), unit.Dp(float32(g.Screen.Height))),
		)
	}
	g.win.Invalidate()

	return nil
}

// WaitClick runs the window event loop until a click on the window or an
// ESC key press closes it, or the window is closed by the user.
func (g *Gui) WaitClick() error {
	if g.win == nil {
		return errors.New("the window is not shown")
	}
	var ops op.Ops

	for e := range g.win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			if err := g.draw(gtx); err != nil {
				g.win.Close()
				return err
			}
			e.Frame(gtx.Ops)
		case key.Event:
			switch e.Name {
			case key.NameEscape:
				g.win.Close()
			}
		case system.DestroyEvent:
			if g.clicked {
				return nil
			}
			return e.Err
		}
	}
	return nil
}

// draw lays out one frame: background, drawing, debug overlay and the
// click area covering the whole window.
func (g *Gui) draw(gtx C) error {
	for _, ev := range gtx.Events(g) {
		if e, ok := ev.(pointer.Event); ok && e.Type == pointer.Press {
			g.clicked = true
			g.win.Close()
		}
	}

	paint.Fill(gtx.Ops, g.Screen.Background)

	size := gtx.Constraints.Max
	side := utils.Min(size.X, size.Y)
	if side > 0 && g.drawing != nil {
		img, err := g.rasterize(side)
		if err != nil {
			return err
		}
		layout.Center.Layout(gtx, func(gtx C) D {
			return widget.Image{
				Src:   paint.NewImageOp(img),
				Fit:   widget.Unscaled,
				Scale: 1 / gtx.Metric.PxPerDp,
			}.Layout(gtx)
		})

		if g.Debug || g.drawing.Cursor.Visible {
			origin := image.Pt((size.X-side)/2, (size.Y-side)/2)
			tr := NewTransform(g.Screen.World, side, side)
			g.drawTurtle(gtx.Ops, tr, origin, g.drawing.Cursor)
			if g.Debug {
				g.drawStrokeStarts(gtx.Ops, tr, origin, g.drawing)
			}
		}
	}

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	pointer.InputOp{Tag: g, Types: pointer.Press}.Add(gtx.Ops)

	return nil
}

// rasterize returns the drawing as a side x side bitmap, cached per size.
func (g *Gui) rasterize(side int) (image.Image, error) {
	if g.frame.img != nil && g.frame.side == side {
		return g.frame.img, nil
	}
	s := g.Screen
	s.Width, s.Height = side, side

	r := NewRasterizer(s)
	r.Blend = g.Blend
	r.Comp = g.Comp
	img, err := r.Rasterize(g.drawing)
	if err != nil {
		return nil, err
	}
	g.frame.side, g.frame.img = side, img

	return img, nil
}
