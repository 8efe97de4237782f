package turtle

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/stoneagesculptor/turtle/imop"
	"github.com/stoneagesculptor/turtle/utils"
)

const (
	// flattenAngle is the largest arc step, in degrees, of rasterized arcs.
	flattenAngle = 3.0
	// capSegments is the number of sides of the polygon approximating round caps and joins.
	capSegments = 24
)

// Rasterizer converts drawings to bitmaps.
type Rasterizer struct {
	Screen Screen
	// Blend, if set, mixes the ink with the background using one of the imop blend modes.
	Blend *imop.Blend
	// Comp is the Porter-Duff operator laying the ink over the background.
	// Nil means source over.
	Comp *imop.Composite
}

// NewRasterizer returns a rasterizer for the given screen.
func NewRasterizer(s Screen) *Rasterizer {
	return &Rasterizer{Screen: s}
}

// Rasterize renders the drawing onto a new bitmap filled with the background
// color. Strokes use round caps and joins.
func (r *Rasterizer) Rasterize(d *Drawing) (*image.NRGBA, error) {
	if err := r.Screen.Validate(); err != nil {
		return nil, err
	}
	rect := r.Screen.Rect()
	tr := NewTransform(r.Screen.World, r.Screen.Width, r.Screen.Height)

	paper := image.NewNRGBA(rect)
	draw.Draw(paper, rect, image.NewUniform(r.Screen.Background), image.Point{}, draw.Src)

	ink := image.NewNRGBA(rect)
	mask := image.NewAlpha(rect)
	for i := range d.Strokes {
		s := &d.Strokes[i]
		for j := range mask.Pix {
			mask.Pix[j] = 0
		}
		rasterizeStroke(mask, s, tr)
		draw.DrawMask(ink, rect, image.NewUniform(s.Color), image.Point{}, mask, image.Point{}, draw.Over)
	}

	comp := r.Comp
	if comp == nil {
		comp = imop.InitOp()
	}
	bmp := imop.NewBitmap(rect)
	comp.Draw(bmp, ink, paper, r.Blend)

	return bmp.Img, nil
}

// rasterizeStroke accumulates the coverage of a stroke into mask.
func rasterizeStroke(mask *image.Alpha, s *Stroke, tr Transform) {
	// Chords are at most 4 px long on large canvases.
	pts := s.Flatten(flattenAngle, 4/tr.Scale())
	if len(pts) == 0 {
		return
	}
	half := utils.Max(tr.PenWidth(s.Width)/2, 0.5)

	b := mask.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src

	px := make([][2]float64, len(pts))
	for i, p := range pts {
		px[i][0], px[i][1] = tr.Apply(p)
	}

	for i := range px {
		disc(z, px[i], half)
		if i == 0 {
			continue
		}
		quad(z, px[i-1], px[i], half)
	}
	z.Draw(mask, b, image.Opaque, image.Point{})
}

// quad adds the rectangle of width 2*half centered on the segment a-b.
func quad(z *vector.Rasterizer, a, b [2]float64, half float64) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	polygon(z, [][2]float64{
		{a[0] + nx, a[1] + ny},
		{b[0] + nx, b[1] + ny},
		{b[0] - nx, b[1] - ny},
		{a[0] - nx, a[1] - ny},
	})
}

// disc adds a round cap or join of radius half centered on c.
func disc(z *vector.Rasterizer, c [2]float64, half float64) {
	pts := make([][2]float64, capSegments)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / capSegments)
		pts[i] = [2]float64{c[0] + co*half, c[1] + s*half}
	}
	polygon(z, pts)
}

// polygon adds a closed polygon. The rasterizer sums signed coverage, so every
// polygon is emitted with the same winding to make overlaps saturate instead
// of cancelling out.
func polygon(z *vector.Rasterizer, pts [][2]float64) {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
}
