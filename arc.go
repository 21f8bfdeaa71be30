package roadgeom

import (
	"math"
)

// ContinuousArc is a circular arc starting at an oriented point and turning
// left or right.
type ContinuousArc struct {
	start  OrientedPoint
	end    OrientedPoint
	center Point
	radius float64
	angle  float64
	left   bool
	// sign is +1 for left arcs, -1 for right arcs.
	sign float64
}

// NewContinuousArc returns the arc of the given radius that sweeps angle
// radians from start, turning left or right.
func NewContinuousArc(start OrientedPoint, radius float64, left bool, angle float64) (*ContinuousArc, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, validationError("arc radius %g is not positive and finite", radius)
	}
	if !(angle >= 0) || math.IsInf(angle, 1) {
		return nil, validationError("arc angle %g is negative or not finite", angle)
	}
	a := &ContinuousArc{
		start:  start,
		radius: radius,
		angle:  angle,
		left:   left,
		sign:   -1,
	}
	if left {
		a.sign = 1
	}
	// The center lies on the side the arc turns to.
	a.center = start.Translate(VecFromAngle(start.Heading).Perp().Mul(a.sign * radius))
	a.end = OrientedPoint{
		Point:   a.point(1, 0),
		Heading: NormalizeAngle(start.Heading + a.sign*angle),
	}
	if angle == 0 {
		a.end = start
	}
	return a, nil
}

// NewContinuousArcLength returns the arc of the given radius and arc length.
func NewContinuousArcLength(start OrientedPoint, radius float64, left bool, length float64) (*ContinuousArc, error) {
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, validationError("arc length %g is not positive and finite", length)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, validationError("arc radius %g is not positive and finite", radius)
	}
	return NewContinuousArc(start, radius, left, length/radius)
}

// point returns the point at fraction f, offset by o to the left.
func (a *ContinuousArc) point(f, o float64) Point {
	r := a.radius - a.sign*o
	phi := a.start.Heading - a.sign*math.Pi/2 + a.sign*a.angle*f
	return a.center.Translate(VecFromAngle(phi).Mul(r))
}

func (a *ContinuousArc) StartPoint() OrientedPoint { return a.start }
func (a *ContinuousArc) EndPoint() OrientedPoint   { return a.end }

// StartCurvature returns 1/r. Use [ContinuousArc.Left] for the direction.
func (a *ContinuousArc) StartCurvature() float64 { return 1 / a.radius }
func (a *ContinuousArc) EndCurvature() float64   { return 1 / a.radius }
func (a *ContinuousArc) StartRadius() float64    { return a.radius }
func (a *ContinuousArc) EndRadius() float64      { return a.radius }

// Length returns angle·radius.
func (a *ContinuousArc) Length() float64 { return a.angle * a.radius }

func (a *ContinuousArc) Center() Point   { return a.center }
func (a *ContinuousArc) Radius() float64 { return a.radius }
func (a *ContinuousArc) Angle() float64  { return a.angle }
func (a *ContinuousArc) Left() bool      { return a.left }

// PointAt returns the point at fraction f. The endpoints are exact.
func (a *ContinuousArc) PointAt(f float64) Point {
	switch f {
	case 0:
		return a.start.Point
	case 1:
		return a.end.Point
	}
	return a.point(f, 0)
}

// DirectionAt returns the heading at fraction f.
func (a *ContinuousArc) DirectionAt(f float64) float64 {
	return NormalizeAngle(a.start.Heading + a.sign*a.angle*f)
}

// OffsetFlattableLine returns the arc displaced laterally by offsets, with
// analytic directions.
func (a *ContinuousArc) OffsetFlattableLine(offsets *FractionalLengthData) FlattableLine {
	return flattableFunc{
		point: func(f float64) Point {
			switch f {
			case 0:
				return a.start.Offset(offsets.Get(0))
			case 1:
				return a.end.Offset(offsets.Get(1))
			}
			return a.point(f, offsets.Get(f))
		},
		direction: func(f float64) float64 {
			// d/df of (r − σ·s(f))·(cos φ, sin φ) with dφ/df = σθ.
			phi := a.start.Heading - a.sign*math.Pi/2 + a.sign*a.angle*f
			sin, cos := math.Sincos(phi)
			r := a.radius - a.sign*offsets.Get(f)
			dr := -a.sign * offsets.Derivative(f)
			dphi := a.sign * a.angle
			dx := dr*cos - r*sin*dphi
			dy := dr*sin + r*cos*dphi
			if dx == 0 && dy == 0 {
				return a.DirectionAt(f)
			}
			return math.Atan2(dy, dx)
		},
	}
}

func (a *ContinuousArc) Flatten(fl Flattener) (Polyline, error) {
	return fl.Flatten(a)
}

func (a *ContinuousArc) FlattenOffset(offsets *FractionalLengthData, fl Flattener) (Polyline, error) {
	return fl.FlattenOffset(a.OffsetFlattableLine(offsets), offsets)
}
