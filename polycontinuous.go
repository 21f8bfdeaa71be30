package roadgeom

import (
	"math"
)

// ContinuousPolyLine exposes an already discretized line as a
// [ContinuousLine]. It cannot be refined: flattening returns the stored line
// whatever the Flattener, and offsets are applied per vertex.
type ContinuousPolyLine struct {
	line           Polyline
	start          OrientedPoint
	end            OrientedPoint
	startCurvature float64
	endCurvature   float64
}

// NewContinuousPolyLine wraps line. The end headings are those of the first
// and last segment.
func NewContinuousPolyLine(line Polyline) (*ContinuousPolyLine, error) {
	if line.Len() < 2 {
		return nil, validationError("polyline needs at least 2 points, got %d", line.Len())
	}
	return NewContinuousPolyLineWithHeadings(line,
		line.LocationFractionExtended(0).Heading,
		line.LocationFractionExtended(1).Heading)
}

// NewContinuousPolyLineWithHeadings wraps line with explicitly given end
// headings, for when the line approximates a curve whose end directions are
// known. The end positions remain those of the line.
func NewContinuousPolyLineWithHeadings(line Polyline, startHeading, endHeading float64) (*ContinuousPolyLine, error) {
	if line.Len() < 2 {
		return nil, validationError("polyline needs at least 2 points, got %d", line.Len())
	}
	if math.IsNaN(startHeading) || math.IsInf(startHeading, 0) || math.IsNaN(endHeading) || math.IsInf(endHeading, 0) {
		return nil, validationError("headings %g and %g are not finite", startHeading, endHeading)
	}
	r0, err := line.ProjectedRadius(0)
	if err != nil {
		return nil, err
	}
	r1, err := line.ProjectedRadius(1)
	if err != nil {
		return nil, err
	}
	if math.IsInf(r0, 0) && math.IsInf(r1, 0) {
		Logger().Debug("polyline is straight at both ends", "points", line.Len())
	}
	return &ContinuousPolyLine{
		line:           line,
		start:          OrientedPoint{Point: line.First(), Heading: NormalizeAngle(startHeading)},
		end:            OrientedPoint{Point: line.Last(), Heading: NormalizeAngle(endHeading)},
		startCurvature: 1 / r0,
		endCurvature:   1 / r1,
	}, nil
}

// Line returns the wrapped line.
func (p *ContinuousPolyLine) Line() Polyline { return p.line }

func (p *ContinuousPolyLine) StartPoint() OrientedPoint { return p.start }
func (p *ContinuousPolyLine) EndPoint() OrientedPoint   { return p.end }
func (p *ContinuousPolyLine) StartCurvature() float64   { return p.startCurvature }
func (p *ContinuousPolyLine) EndCurvature() float64     { return p.endCurvature }
func (p *ContinuousPolyLine) StartRadius() float64      { return radiusOf(p.startCurvature) }
func (p *ContinuousPolyLine) EndRadius() float64        { return radiusOf(p.endCurvature) }
func (p *ContinuousPolyLine) Length() float64           { return p.line.Length() }

// Flatten returns the stored line. fl is not used beyond validation.
func (p *ContinuousPolyLine) Flatten(fl Flattener) (Polyline, error) {
	if !fl.valid() {
		return Polyline{}, stateError("zero Flattener")
	}
	return p.line, nil
}

// FlattenOffset offsets every vertex of the stored line and places the
// first and last point exactly at the offset end points.
func (p *ContinuousPolyLine) FlattenOffset(offsets *FractionalLengthData, fl Flattener) (Polyline, error) {
	if !fl.valid() {
		return Polyline{}, stateError("zero Flattener")
	}
	off, err := p.line.Offset(offsets)
	if err != nil {
		return Polyline{}, err
	}
	pts := off.Points()
	pts[0] = p.start.Offset(offsets.Get(0))
	pts[len(pts)-1] = p.end.Offset(offsets.Get(1))
	return newPolylineCollapsed(pts)
}
