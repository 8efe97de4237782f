package turtle

import "math"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the distance from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Rotate rotates p counterclockwise around the origin by deg degrees.
func (p Point) Rotate(deg float64) Point {
	s, c := math.Sincos(radians(deg))
	return Point{X: p.X*c - p.Y*s, Y: p.X*s + p.Y*c}
}

// dir returns the unit vector pointing at heading deg.
func dir(deg float64) Point {
	s, c := math.Sincos(radians(deg))
	return Point{X: c, Y: s}
}

// atan2 returns the angle of p measured from the +x axis, in radians.
func atan2(p Point) float64 {
	return math.Atan2(p.Y, p.X)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalize maps an angle into the [0, 360) interval.
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod(-tiny, 360)+360 rounds to 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// arcSweep returns the signed rotation produced by tracing extent degrees
// on a circle of the given radius: positive radius curves left.
func arcSweep(radius, extent float64) float64 {
	if radius < 0 {
		return -extent
	}
	return extent
}

// arcCenter returns the center of the circle traced from pos with the given
// heading. The center lies radius units to the left of the travel direction.
func arcCenter(pos Point, heading, radius float64) Point {
	return pos.Add(dir(heading + 90).Mul(radius))
}

// ChordLength returns the straight distance between the endpoints of an
// arc of the given radius sweeping deg degrees.
func ChordLength(radius, deg float64) float64 {
	return 2 * math.Abs(radius) * math.Abs(math.Sin(radians(deg)/2))
}
