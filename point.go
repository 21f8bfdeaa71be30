package roadgeom

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// DirectionTo returns the heading of the vector from pt to o, as atan2.
func (pt Point) DirectionTo(o Point) float64 {
	return math.Atan2(o.Y-pt.Y, o.X-pt.X)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// OrientedPoint is a point with a heading, expressed in radians. A heading of
// 0 points along positive x, π/2 along positive y.
type OrientedPoint struct {
	Point
	Heading float64
}

// OPt returns the oriented point (x, y) with the heading normalized into
// (−π, π].
func OPt(x, y, heading float64) OrientedPoint {
	return OrientedPoint{Point: Point{X: x, Y: y}, Heading: NormalizeAngle(heading)}
}

func (op OrientedPoint) String() string {
	return fmt.Sprintf("(%g, %g, %g)", op.X, op.Y, op.Heading)
}

// Offset returns the point at lateral distance d from op. Positive values lie
// to the left of the heading, negative values to the right.
func (op OrientedPoint) Offset(d float64) Point {
	sin, cos := math.Sincos(op.Heading)
	return Point{
		X: op.X - d*sin,
		Y: op.Y + d*cos,
	}
}

// NormalizeAngle maps an angle in radians into the interval (−π, π].
func NormalizeAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
