package turtle

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/stoneagesculptor/turtle/imop"
	"github.com/stoneagesculptor/turtle/utils"
)

// inkThreshold is the smallest brightness difference from the background
// for a sub-cell pixel to be considered ink.
const inkThreshold = 24

// quadrants maps a 4 bit pattern of inked sub-cells to the block character
// covering them. Bit order: 0 upper-left, 1 upper-right, 2 lower-left, 3 lower-right.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// TerminalCanvas renders the drawing inside a terminal with quadrant block
// characters, two by two pixels per cell.
type TerminalCanvas struct {
	Screen Screen
	Blend  *imop.Blend
	Comp   *imop.Composite

	term    tcell.Screen
	drawing *Drawing
}

// NewTerminalCanvas initializes the terminal screen. A nil screen opens the
// controlling terminal.
func NewTerminalCanvas(s Screen, ts tcell.Screen) (*TerminalCanvas, error) {
	var err error
	if ts == nil {
		if ts, err = tcell.NewScreen(); err != nil {
			return nil, errors.Wrap(err, "unable to open the terminal")
		}
	}
	if err = ts.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize the terminal")
	}
	ts.EnableMouse()
	ts.HideCursor()

	return &TerminalCanvas{Screen: s, term: ts}, nil
}

// Show draws the drawing centered on the terminal. The terminal is
// restored when the drawing cannot be rendered.
func (tc *TerminalCanvas) Show(d *Drawing) error {
	tc.drawing = d
	if err := tc.render(); err != nil {
		tc.term.Fini()
		return err
	}
	return nil
}

// WaitClick blocks until the primary mouse button is pressed, or ESC or
// Ctrl-C are typed, then restores the terminal. The drawing is redrawn
// whenever the terminal is resized.
func (tc *TerminalCanvas) WaitClick() error {
	defer tc.term.Fini()

	for {
		switch ev := tc.term.PollEvent().(type) {
		case nil:
			return errors.New("terminal closed before the click")
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 != 0 {
				return nil
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case *tcell.EventResize:
			tc.term.Sync()
			if err := tc.render(); err != nil {
				return err
			}
		}
	}
}

// render rasterizes the drawing at the reference size, squeezes it to the
// sub-cell grid and writes one quadrant character per cell.
func (tc *TerminalCanvas) render() error {
	cols, rows := tc.term.Size()
	bg := tc.Screen.Background
	bgStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))

	tc.term.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tc.term.SetContent(x, y, ' ', nil, bgStyle)
		}
	}

	// Terminal cells are about twice as tall as wide: a square area spans
	// twice as many columns as rows.
	h := utils.Min(rows, cols/2)
	if h <= 0 || tc.drawing == nil {
		tc.term.Show()
		return nil
	}
	w := 2 * h

	s := tc.Screen
	s.Width, s.Height = ReferenceSize, ReferenceSize
	r := NewRasterizer(s)
	r.Blend = tc.Blend
	r.Comp = tc.Comp
	img, err := r.Rasterize(tc.drawing)
	if err != nil {
		return err
	}
	mask := Threshold(Grayscale(imaging.Resize(img, 2*w, 2*h, imaging.Lanczos)), bg, inkThreshold)

	fg := InkColor
	if len(tc.drawing.Strokes) > 0 {
		fg = tc.drawing.Strokes[0].Color
	}
	style := bgStyle.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))

	x0, y0 := (cols-w)/2, (rows-h)/2
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			if ch := quadrant(mask, 2*cx, 2*cy); ch != ' ' {
				tc.term.SetContent(x0+cx, y0+cy, ch, nil, style)
			}
		}
	}
	tc.term.Show()

	return nil
}

// quadrant returns the block character of the 2x2 mask pixels at (x, y).
func quadrant(mask *image.Alpha, x, y int) rune {
	var bits int
	for i, p := range [4]image.Point{{x, y}, {x + 1, y}, {x, y + 1}, {x + 1, y + 1}} {
		if mask.AlphaAt(p.X, p.Y).A != 0 {
			bits |= 1 << i
		}
	}
	return quadrants[bits]
}
