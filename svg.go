package turtle

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/stoneagesculptor/turtle/utils"
)

// WriteSVG encodes the drawing as an SVG document of the screen size.
// Each stroke becomes a single path made of line and arc commands, so the
// circles stay exact at any zoom level.
func WriteSVG(w io.Writer, s Screen, d *Drawing) error {
	if err := s.Validate(); err != nil {
		return err
	}
	tr := NewTransform(s.World, s.Width, s.Height)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(s.Width, s.Height)
	canvas.Title(s.Title)
	canvas.Rect(0, 0, s.Width, s.Height, "fill:"+utils.RGBAToHex(s.Background))
	for i := range d.Strokes {
		st := &d.Strokes[i]
		if len(st.Segments) == 0 {
			continue
		}
		style := fmt.Sprintf(
			"fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round",
			utils.RGBAToHex(st.Color), num(tr.PenWidth(st.Width)),
		)
		canvas.Path(svgPath(st, tr), style)
	}
	canvas.End()

	return ew.err
}

// errWriter keeps the first write error. Later writes are skipped since
// the svg canvas does not check for errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// svgPath returns the path data of a stroke in pixel coordinates.
func svgPath(st *Stroke, tr Transform) string {
	var b strings.Builder

	x, y := tr.Apply(st.Start())
	fmt.Fprintf(&b, "M%s,%s", num(x), num(y))
	for _, seg := range st.Segments {
		if seg.Kind == LineSegment {
			x, y = tr.Apply(seg.To)
			fmt.Fprintf(&b, " L%s,%s", num(x), num(y))
			continue
		}
		// Arcs are split into pieces of at most 180 degrees: a full turn
		// cannot be expressed by a single arc command.
		n := int(math.Ceil(math.Abs(seg.Sweep) / 180))
		// World y grows upwards, so counterclockwise arcs are drawn with a
		// negative angle direction in pixel space.
		sweep := 0
		if seg.Sweep < 0 {
			sweep = 1
		}
		rx, ry := seg.Radius*tr.sx, seg.Radius*tr.sy
		for i := 1; i <= n; i++ {
			p := seg.To
			if i < n {
				p = seg.At(float64(i) / float64(n))
			}
			x, y = tr.Apply(p)
			fmt.Fprintf(&b, " A%s,%s 0 0,%d %s,%s", num(rx), num(ry), sweep, num(x), num(y))
		}
	}
	return b.String()
}

// num formats a coordinate with two decimals, dropping trailing zeros.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
