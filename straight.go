package roadgeom

import (
	"math"
)

// ContinuousStraight is a straight line of given length from an oriented
// point.
type ContinuousStraight struct {
	start  OrientedPoint
	end    OrientedPoint
	length float64
}

func NewContinuousStraight(start OrientedPoint, length float64) (*ContinuousStraight, error) {
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, validationError("straight length %g is not positive and finite", length)
	}
	s := &ContinuousStraight{start: start, length: length}
	s.end = OrientedPoint{Point: s.point(1), Heading: start.Heading}
	return s, nil
}

func (s *ContinuousStraight) point(f float64) Point {
	return s.start.Translate(VecFromAngle(s.start.Heading).Mul(f * s.length))
}

func (s *ContinuousStraight) StartPoint() OrientedPoint { return s.start }
func (s *ContinuousStraight) EndPoint() OrientedPoint   { return s.end }
func (s *ContinuousStraight) StartCurvature() float64   { return 0 }
func (s *ContinuousStraight) EndCurvature() float64     { return 0 }
func (s *ContinuousStraight) StartRadius() float64      { return math.Inf(1) }
func (s *ContinuousStraight) EndRadius() float64        { return math.Inf(1) }
func (s *ContinuousStraight) Length() float64           { return s.length }

func (s *ContinuousStraight) PointAt(f float64) Point {
	switch f {
	case 0:
		return s.start.Point
	case 1:
		return s.end.Point
	}
	return s.point(f)
}

func (s *ContinuousStraight) DirectionAt(f float64) float64 { return s.start.Heading }

func (s *ContinuousStraight) speedAt(f float64) float64     { return s.length }
func (s *ContinuousStraight) curvatureAt(f float64) float64 { return 0 }

func (s *ContinuousStraight) OffsetFlattableLine(offsets *FractionalLengthData) FlattableLine {
	return offsetFlattable(s, offsets, s.start, s.end)
}

func (s *ContinuousStraight) Flatten(fl Flattener) (Polyline, error) {
	return fl.Flatten(s)
}

func (s *ContinuousStraight) FlattenOffset(offsets *FractionalLengthData, fl Flattener) (Polyline, error) {
	return fl.FlattenOffset(s.OffsetFlattableLine(offsets), offsets)
}
