package roadgeom

import (
	"math"
	"slices"
)

// ContinuousBezier is a Bézier curve of arbitrary order, defined by its
// control points. It provides the evaluation, derivative, length and
// curvature computations shared by Bézier based lines such as
// [ContinuousBezierCubic].
type ContinuousBezier struct {
	points []Point
}

// NewContinuousBezier returns the Bézier curve with the given control points.
// At least two points are required.
func NewContinuousBezier(points ...Point) (ContinuousBezier, error) {
	if len(points) < 2 {
		return ContinuousBezier{}, validationError("Bézier needs at least 2 control points, got %d", len(points))
	}
	for i, pt := range points {
		if pt.IsNaN() || pt.IsInf() {
			return ContinuousBezier{}, validationError("control point %d %s is not finite", i, pt)
		}
	}
	return ContinuousBezier{points: slices.Clone(points)}, nil
}

// Order returns the order of the curve, one less than the number of control
// points.
func (b ContinuousBezier) Order() int { return len(b.points) - 1 }

// Points returns a copy of the control points.
func (b ContinuousBezier) Points() []Point { return slices.Clone(b.points) }

// Derivative returns the hodograph of b, a Bézier of one lower order.
func (b ContinuousBezier) Derivative() (ContinuousBezier, error) {
	if len(b.points) < 2 {
		return ContinuousBezier{}, stateError("cannot differentiate a Bézier of %d control point(s)", len(b.points))
	}
	n := float64(len(b.points) - 1)
	out := make([]Point, len(b.points)-1)
	for i := range out {
		out[i] = Point(b.points[i+1].Sub(b.points[i]).Mul(n))
	}
	return ContinuousBezier{points: out}, nil
}

// At evaluates the curve at t ∈ [0, 1] in the Bernstein basis.
func (b ContinuousBezier) At(t float64) Point {
	n := len(b.points) - 1
	var x, y float64
	for i, pt := range b.points {
		w := binomial(n, i) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		x += w * pt.X
		y += w * pt.Y
	}
	return Point{X: x, Y: y}
}

// Length returns the arc length, integrating the speed with 24-point
// Gauss-Legendre quadrature.
func (b ContinuousBezier) Length() float64 {
	d, err := b.Derivative()
	if err != nil {
		return 0
	}
	return integrateUnit(func(t float64) float64 {
		return Vec2(d.At(t)).Hypot()
	})
}

// Curvature returns the signed curvature at t. A vanishing first derivative
// yields +Inf. Curves of order below 2 have no second derivative and fail
// with [ErrInvalidState].
func (b ContinuousBezier) Curvature(t float64) (float64, error) {
	d, err := b.Derivative()
	if err != nil {
		return 0, err
	}
	dd, err := d.Derivative()
	if err != nil {
		return 0, err
	}
	return curvature(Vec2(d.At(t)), Vec2(dd.At(t))), nil
}

func curvature(d, dd Vec2) float64 {
	speed := d.Hypot()
	if speed == 0 {
		return math.Inf(1)
	}
	return d.Cross(dd) / (speed * speed * speed)
}

func binomial(n, k int) float64 {
	k = min(k, n-k)
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return c
}

// ContinuousBezierCubic is a cubic Bézier used as a line. The Bézier
// parameter doubles as the fraction along the line.
type ContinuousBezierCubic struct {
	bezier ContinuousBezier
	d      ContinuousBezier
	dd     ContinuousBezier
	start  OrientedPoint
	end    OrientedPoint
	length float64
}

// NewContinuousBezierCubic returns the cubic Bézier with control points p0, p1,
// p2 and p3. The line starts heading from p0 to p1 and ends heading from p2 to
// p3, so neither pair may coincide.
func NewContinuousBezierCubic(p0, p1, p2, p3 Point) (*ContinuousBezierCubic, error) {
	if p0 == p1 || p2 == p3 {
		return nil, validationError("outer control points coincide with inner ones, end headings are undefined")
	}
	b, err := NewContinuousBezier(p0, p1, p2, p3)
	if err != nil {
		return nil, err
	}
	d, _ := b.Derivative()
	dd, _ := d.Derivative()
	return &ContinuousBezierCubic{
		bezier: b,
		d:      d,
		dd:     dd,
		start:  OrientedPoint{Point: p0, Heading: p0.DirectionTo(p1)},
		end:    OrientedPoint{Point: p3, Heading: p2.DirectionTo(p3)},
		length: b.Length(),
	}, nil
}

// NewContinuousBezierCubicBetween connects two oriented points with a cubic
// Bézier whose inner control points lie at shape·|end−start|/3 along the
// headings. A shape of 1 gives a balanced curve; larger values stretch the
// ends.
func NewContinuousBezierCubicBetween(start, end OrientedPoint, shape float64) (*ContinuousBezierCubic, error) {
	if !(shape > 0) || math.IsInf(shape, 1) {
		return nil, validationError("shape %g is not positive and finite", shape)
	}
	dist := shape * start.Distance(end.Point) / 3
	p1 := start.Translate(VecFromAngle(start.Heading).Mul(dist))
	p2 := end.Translate(VecFromAngle(end.Heading).Mul(-dist))
	c, err := NewContinuousBezierCubic(start.Point, p1, p2, end.Point)
	if err != nil {
		return nil, err
	}
	// Keep the requested headings bit-exactly.
	c.start.Heading = start.Heading
	c.end.Heading = end.Heading
	return c, nil
}

// Bezier returns the underlying curve.
func (c *ContinuousBezierCubic) Bezier() ContinuousBezier { return c.bezier }

func (c *ContinuousBezierCubic) StartPoint() OrientedPoint { return c.start }
func (c *ContinuousBezierCubic) EndPoint() OrientedPoint   { return c.end }
func (c *ContinuousBezierCubic) StartCurvature() float64   { return c.curvatureAt(0) }
func (c *ContinuousBezierCubic) EndCurvature() float64     { return c.curvatureAt(1) }
func (c *ContinuousBezierCubic) StartRadius() float64      { return radiusOf(c.StartCurvature()) }
func (c *ContinuousBezierCubic) EndRadius() float64        { return radiusOf(c.EndCurvature()) }
func (c *ContinuousBezierCubic) Length() float64           { return c.length }

func (c *ContinuousBezierCubic) PointAt(f float64) Point {
	switch f {
	case 0:
		return c.start.Point
	case 1:
		return c.end.Point
	}
	return c.bezier.At(f)
}

func (c *ContinuousBezierCubic) DirectionAt(f float64) float64 {
	switch f {
	case 0:
		return c.start.Heading
	case 1:
		return c.end.Heading
	}
	d := Vec2(c.d.At(f))
	if d.Hypot2() == 0 {
		return FiniteDifferenceDirection(c, f)
	}
	return d.Angle()
}

func (c *ContinuousBezierCubic) speedAt(f float64) float64 {
	return Vec2(c.d.At(f)).Hypot()
}

func (c *ContinuousBezierCubic) curvatureAt(f float64) float64 {
	return curvature(Vec2(c.d.At(f)), Vec2(c.dd.At(f)))
}

func (c *ContinuousBezierCubic) OffsetFlattableLine(offsets *FractionalLengthData) FlattableLine {
	return offsetFlattable(c, offsets, c.start, c.end)
}

func (c *ContinuousBezierCubic) Flatten(fl Flattener) (Polyline, error) {
	return fl.Flatten(c)
}

func (c *ContinuousBezierCubic) FlattenOffset(offsets *FractionalLengthData, fl Flattener) (Polyline, error) {
	return fl.FlattenOffset(c.OffsetFlattableLine(offsets), offsets)
}
