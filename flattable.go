package roadgeom

import (
	"math"
)

// PointEvaluator describes a line that can be evaluated at fractional
// length f ∈ [0, 1].
type PointEvaluator interface {
	// PointAt returns the point at fraction f.
	PointAt(f float64) Point
}

// FlattableLine describes lines that can be flattened by a [Flattener].
type FlattableLine interface {
	PointEvaluator
	// DirectionAt returns the heading of the line at fraction f.
	// Implementations without an analytic derivative can use
	// [FiniteDifferenceDirection].
	DirectionAt(f float64) float64
}

// directionProbe is the step used by [FiniteDifferenceDirection].
const directionProbe = 1e-6

// FiniteDifferenceDirection estimates the heading of p at f from two points
// ±1e-6 around f, clamped to [0, 1].
func FiniteDifferenceDirection(p PointEvaluator, f float64) float64 {
	f0 := clamp(f-directionProbe, 0, 1)
	f1 := clamp(f+directionProbe, 0, 1)
	return p.PointAt(f0).DirectionTo(p.PointAt(f1))
}

// OffsetDirection returns the heading of the offset curve c(f) + s(f)·n(f),
// where c has the given heading, speed |dc/df| and signed curvature at f, n
// is its left normal, s the offset and ds the derivative of the offset with
// respect to f.
//
// The tangent of the offset curve is speed·(1 − κs)·T + ds·n.
func OffsetDirection(heading, speed, curvature, offset, ds float64) float64 {
	along := speed * (1 - curvature*offset)
	if math.IsNaN(along) {
		// Stationary point with infinite curvature.
		return NormalizeAngle(heading)
	}
	return NormalizeAngle(heading + math.Atan2(ds, along))
}

// flattableFunc adapts a pair of functions to [FlattableLine].
type flattableFunc struct {
	point     func(f float64) Point
	direction func(f float64) float64
}

func (fl flattableFunc) PointAt(f float64) Point        { return fl.point(f) }
func (fl flattableFunc) DirectionAt(f float64) float64 { return fl.direction(f) }

// offsetCurve describes a base curve that can be offset along its left
// normal. The methods take fraction f ∈ [0, 1].
type offsetCurve interface {
	FlattableLine
	// speedAt returns |dc/df|.
	speedAt(f float64) float64
	// curvatureAt returns the signed curvature.
	curvatureAt(f float64) float64
}

// offsetFlattable returns the offset curve of c for the profile offsets.
// The endpoints are the exact offsets of start and end.
func offsetFlattable(c offsetCurve, offsets *FractionalLengthData, start, end OrientedPoint) FlattableLine {
	return flattableFunc{
		point: func(f float64) Point {
			switch f {
			case 0:
				return start.Offset(offsets.Get(0))
			case 1:
				return end.Offset(offsets.Get(1))
			}
			op := OrientedPoint{Point: c.PointAt(f), Heading: c.DirectionAt(f)}
			return op.Offset(offsets.Get(f))
		},
		direction: func(f float64) float64 {
			return OffsetDirection(c.DirectionAt(f), c.speedAt(f), c.curvatureAt(f), offsets.Get(f), offsets.Derivative(f))
		},
	}
}
