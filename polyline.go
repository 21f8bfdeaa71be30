package roadgeom

import (
	"iter"
	"math"
	"slices"
	"sort"
)

// Polyline is an immutable sequence of at least two points, no two
// consecutive ones equal.
type Polyline struct {
	points []Point
	// cumulative[i] is the length of the line up to points[i].
	cumulative []float64
}

// NewPolyline returns a polyline through points. It fails with
// [ErrValidation] for fewer than two points, repeated consecutive points, or
// non-finite coordinates.
func NewPolyline(points ...Point) (Polyline, error) {
	if len(points) < 2 {
		return Polyline{}, validationError("polyline needs at least 2 points, got %d", len(points))
	}
	pts := slices.Clone(points)
	cum := make([]float64, len(pts))
	for i, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			return Polyline{}, validationError("point %d %s is not finite", i, pt)
		}
		if i == 0 {
			continue
		}
		if pt == pts[i-1] {
			return Polyline{}, validationError("points %d and %d are equal %s", i-1, i, pt)
		}
		cum[i] = cum[i-1] + pts[i-1].Distance(pt)
	}
	return Polyline{points: pts, cumulative: cum}, nil
}

// newPolylineCollapsed builds a polyline after dropping consecutive
// duplicates. The last point always survives.
func newPolylineCollapsed(points []Point) (Polyline, error) {
	out := make([]Point, 0, len(points))
	for i, pt := range points {
		if len(out) > 0 && out[len(out)-1] == pt {
			if i == len(points)-1 {
				out[len(out)-1] = pt
			}
			continue
		}
		out = append(out, pt)
	}
	if len(out) < 2 {
		return Polyline{}, stateError("line collapses to the single point %s", points[0])
	}
	return NewPolyline(out...)
}

// Len returns the number of points.
func (l Polyline) Len() int { return len(l.points) }

// At returns the i-th point.
func (l Polyline) At(i int) Point { return l.points[i] }

// Points returns a copy of the points.
func (l Polyline) Points() []Point { return slices.Clone(l.points) }

func (l Polyline) First() Point { return l.points[0] }
func (l Polyline) Last() Point  { return l.points[len(l.points)-1] }

// Length returns the sum of the segment lengths.
func (l Polyline) Length() float64 {
	if len(l.cumulative) == 0 {
		return 0
	}
	return l.cumulative[len(l.cumulative)-1]
}

// LengthAtIndex returns the length along the line up to point i.
func (l Polyline) LengthAtIndex(i int) float64 {
	return l.cumulative[i]
}

// VertexFraction returns the fractional length of point i.
func (l Polyline) VertexFraction(i int) float64 {
	if i == len(l.points)-1 {
		return 1
	}
	return l.cumulative[i] / l.Length()
}

// Segment returns the i-th segment.
func (l Polyline) Segment(i int) Line {
	return Line{l.points[i], l.points[i+1]}
}

// segmentIndex returns the index of the segment containing position s along
// the line, in [0, Len()-2].
func (l Polyline) segmentIndex(s float64) int {
	i := sort.SearchFloat64s(l.cumulative, s) - 1
	return clamp(i, 0, len(l.points)-2)
}

// LocationFraction returns the point and heading at fraction f ∈ [0, 1].
func (l Polyline) LocationFraction(f float64) (OrientedPoint, error) {
	if !(f >= 0 && f <= 1) {
		return OrientedPoint{}, validationError("fraction %g outside [0, 1]", f)
	}
	return l.LocationFractionExtended(f), nil
}

// LocationFractionExtended is like LocationFraction but extrapolates along
// the first and last segment for fractions outside [0, 1].
func (l Polyline) LocationFractionExtended(f float64) OrientedPoint {
	switch {
	case f == 0:
		return OrientedPoint{Point: l.First(), Heading: l.Segment(0).Direction()}
	case f == 1:
		n := len(l.points)
		return OrientedPoint{Point: l.Last(), Heading: l.Segment(n - 2).Direction()}
	}
	s := f * l.Length()
	i := l.segmentIndex(s)
	seg := l.Segment(i)
	t := (s - l.cumulative[i]) / seg.Length()
	return OrientedPoint{Point: seg.Eval(t), Heading: seg.Direction()}
}

// ProjectedVertexRadius returns the signed radius of the circle through
// vertex i that is equidistant from both adjacent edges. Its center is where
// the perpendicular through the middle of the shorter edge meets the bisector
// of the angle at the vertex. Left turns are positive, collinear edges give
// +Inf.
func (l Polyline) ProjectedVertexRadius(i int) (float64, error) {
	if i < 1 || i > len(l.points)-2 {
		return 0, validationError("vertex %d has no two adjacent edges", i)
	}
	prev, pt, next := l.points[i-1], l.points[i], l.points[i+1]
	d0 := pt.Sub(prev)
	d1 := next.Sub(pt)
	n0 := d0.Normalize().Perp()
	n1 := d1.Normalize().Perp()
	cross := d0.Cross(d1)
	if cross == 0 {
		return math.Inf(1), nil
	}

	edge := Line{prev, pt}
	if d1.Hypot2() < d0.Hypot2() {
		edge = Line{pt, next}
	}
	mid := edge.Eval(0.5)
	perp := Line{mid, mid.Translate(edge.P1.Sub(edge.P0).Perp())}
	bisector := Line{pt, pt.Translate(n0.Add(n1))}
	center, ok := perp.CrossingPoint(bisector)
	if !ok {
		return math.Inf(1), nil
	}
	r := center.Distance(mid)
	if cross < 0 {
		r = -r
	}
	return r, nil
}

// ProjectedRadius returns the radius of curvature near fraction f. On the
// first and last segment the radius of the inner neighbouring vertex is
// used, elsewhere the smaller magnitude of the two vertices bounding the
// segment. A line of two points has radius +Inf.
func (l Polyline) ProjectedRadius(f float64) (float64, error) {
	if !(f >= 0 && f <= 1) {
		return 0, validationError("fraction %g outside [0, 1]", f)
	}
	n := len(l.points)
	if n < 3 {
		return math.Inf(1), nil
	}
	i := l.segmentIndex(f * l.Length())
	switch {
	case i == 0:
		return l.ProjectedVertexRadius(1)
	case i == n-2:
		return l.ProjectedVertexRadius(n - 2)
	}
	r0, err := l.ProjectedVertexRadius(i)
	if err != nil {
		return 0, err
	}
	r1, err := l.ProjectedVertexRadius(i + 1)
	if err != nil {
		return 0, err
	}
	if math.Abs(r0) < math.Abs(r1) {
		return r0, nil
	}
	return r1, nil
}

// vertexNormal returns the left normal at point i, averaged over the
// adjacent segments.
func (l Polyline) vertexNormal(i int) Vec2 {
	n := len(l.points)
	switch i {
	case 0:
		return l.points[1].Sub(l.points[0]).Normalize().Perp()
	case n - 1:
		return l.points[n-1].Sub(l.points[n-2]).Normalize().Perp()
	}
	d0 := l.points[i].Sub(l.points[i-1]).Normalize()
	d1 := l.points[i+1].Sub(l.points[i]).Normalize()
	avg := d0.Add(d1)
	if avg.Hypot2() == 0 {
		// The line folds back onto itself.
		return d0.Perp()
	}
	return avg.Normalize().Perp()
}

// Offset moves every vertex along its averaged left normal by the profile
// value at the vertex's fractional length. This is a naive offset: sharp
// turns combined with large offsets can produce self-intersections.
func (l Polyline) Offset(offsets *FractionalLengthData) (Polyline, error) {
	out := make([]Point, len(l.points))
	for i, pt := range l.points {
		out[i] = pt.Translate(l.vertexNormal(i).Mul(offsets.Get(l.VertexFraction(i))))
	}
	return newPolylineCollapsed(out)
}

// Reverse returns the line with its points in reverse order.
func (l Polyline) Reverse() Polyline {
	pts := slices.Clone(l.points)
	slices.Reverse(pts)
	out, _ := NewPolyline(pts...)
	return out
}

// Transform applies aff to every point.
func (l Polyline) Transform(aff Affine) (Polyline, error) {
	pts := make([]Point, len(l.points))
	for i, pt := range l.points {
		pts[i] = pt.Transform(aff)
	}
	return newPolylineCollapsed(pts)
}

func (l Polyline) BoundingBox() Rect {
	r := NewRectFromPoints(l.points[0], l.points[0])
	for _, pt := range l.points[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (l Polyline) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range l.points {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}
