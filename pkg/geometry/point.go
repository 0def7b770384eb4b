package geometry

import "math"

// Tolerance is the equality tolerance used throughout the geometry
// package, per the world-coordinate precision the occupancy engine
// relies on.
const Tolerance = 1e-6

// Point is a location in continuous world coordinates.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point from cartesian coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and q are within Tolerance of each other on
// both axes.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) <= Tolerance && math.Abs(p.Y-q.Y) <= Tolerance
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleTo returns the angle from p to q, normalized to (-180, 180].
func (p Point) AngleTo(q Point) Angle {
	rad := math.Atan2(q.Y-p.Y, q.X-p.X)
	return NewAngle(rad * 180 / math.Pi)
}

// PlusPolar returns p translated by the cartesian equivalent of pol.
func (p Point) PlusPolar(pol Polar) Point {
	return p.Add(pol.ToCartesian())
}

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{X: math.Min(p.X, q.X), Y: math.Min(p.Y, q.Y)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{X: math.Max(p.X, q.X), Y: math.Max(p.Y, q.Y)}
}
