package turtle

import (
	"image/color"
	"math"
)

// SegmentKind tells straight segments and circular arcs apart.
type SegmentKind int

const (
	LineSegment SegmentKind = iota
	ArcSegment
)

// Segment is a single primitive traced while the pen was down.
// For arcs Center, Radius, Start and Sweep describe the circle: Start is the
// angle in degrees from Center to From and Sweep is the signed extent,
// positive meaning counterclockwise.
type Segment struct {
	Kind     SegmentKind
	From, To Point

	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// Length returns the distance travelled along the segment.
func (s Segment) Length() float64 {
	if s.Kind == ArcSegment {
		return s.Radius * radians(math.Abs(s.Sweep))
	}
	return s.From.Dist(s.To)
}

// At returns the point reached after travelling the fraction t of the segment.
func (s Segment) At(t float64) Point {
	if s.Kind == ArcSegment {
		return s.Center.Add(dir(s.Start + s.Sweep*t).Mul(s.Radius))
	}
	return s.From.Add(s.To.Sub(s.From).Mul(t))
}

// Stroke is a contiguous run of segments drawn with one pen width and color.
type Stroke struct {
	Width    float64
	Color    color.NRGBA
	Segments []Segment
}

// Start returns the first point of the stroke.
func (s *Stroke) Start() Point {
	if len(s.Segments) == 0 {
		return Point{}
	}
	return s.Segments[0].From
}

// Length returns the total length of the stroke.
func (s *Stroke) Length() float64 {
	var l float64
	for _, seg := range s.Segments {
		l += seg.Length()
	}
	return l
}

// Flatten approximates the stroke with a polyline. Arcs are split into
// chords of at most maxAngle degrees and at most maxLen world units.
func (s *Stroke) Flatten(maxAngle, maxLen float64) []Point {
	if len(s.Segments) == 0 {
		return nil
	}
	pts := []Point{s.Segments[0].From}
	for _, seg := range s.Segments {
		if seg.Kind == LineSegment {
			pts = append(pts, seg.To)
			continue
		}
		n := int(math.Ceil(math.Abs(seg.Sweep) / maxAngle))
		if maxLen > 0 {
			n = int(math.Max(float64(n), math.Ceil(seg.Length()/maxLen)))
		}
		if n < 1 {
			n = 1
		}
		for i := 1; i < n; i++ {
			pts = append(pts, seg.At(float64(i)/float64(n)))
		}
		// Use the recorded endpoint so chained segments meet exactly.
		pts = append(pts, seg.To)
	}
	return pts
}

// Snapshot is a copy of the cursor state at a point in time.
type Snapshot struct {
	Position Point
	Heading  float64
	PenDown  bool
	Width    float64
	Color    color.NRGBA
	Visible  bool
}

// Drawing is everything a cursor has traced so far.
type Drawing struct {
	Strokes []Stroke
	Cursor  Snapshot
}

// Bounds returns the smallest rectangle containing every traced point,
// ignoring pen widths. ok is false for an empty drawing.
func (d *Drawing) Bounds() (min, max Point, ok bool) {
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	for i := range d.Strokes {
		for _, p := range d.Strokes[i].Flatten(3, 0) {
			min = Pt(math.Min(min.X, p.X), math.Min(min.Y, p.Y))
			max = Pt(math.Max(max.X, p.X), math.Max(max.Y, p.Y))
			ok = true
		}
	}
	return min, max, ok
}

// Segments returns the number of segments over all strokes.
func (d *Drawing) Segments() int {
	var n int
	for i := range d.Strokes {
		n += len(d.Strokes[i].Segments)
	}
	return n
}
