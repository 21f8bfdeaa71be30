package roadgeom

import (
	"math"
	"slices"
)

// maxSubdivisionDepth bounds the recursion of adaptive flattening; an
// interval is never split into more than 2²⁴ segments.
const maxSubdivisionDepth = 24

// Flattener approximates a [FlattableLine] with a [Polyline].
//
// A Flattener pairs a strategy for plain lines with a strategy for offset
// lines. The offset strategy additionally places a vertex at every knot of
// the offset profile, where the offset line may have a kink. Create
// Flatteners with [NumSegments], [MaxDeviation], [MaxAngle] or
// [MaxDeviationAndAngle]; the zero value is not usable.
//
// Flatteners are immutable and safe for concurrent use.
type Flattener struct {
	plain  flatteningStrategy
	offset flatteningStrategy
}

type flatteningStrategy struct {
	// segments > 0 selects uniform sampling.
	segments int
	// deviation > 0 bounds the distance of the line to each chord.
	deviation float64
	// angle > 0 bounds the angle between the line and each chord.
	angle float64
	// knots forces vertices at the knots of an offset profile.
	knots bool
}

// NumSegments returns a Flattener that samples n equal parameter steps.
func NumSegments(n int) (Flattener, error) {
	if n < 1 {
		return Flattener{}, validationError("number of segments %d < 1", n)
	}
	s := flatteningStrategy{segments: n}
	return Flattener{plain: s, offset: s}, nil
}

// MaxDeviation returns a Flattener that subdivides until no point of the line
// lies further than deviation from its chord.
func MaxDeviation(deviation float64) (Flattener, error) {
	if !(deviation > 0) || math.IsInf(deviation, 1) {
		return Flattener{}, validationError("maximum deviation %g is not positive and finite", deviation)
	}
	return newAdaptive(flatteningStrategy{deviation: deviation}), nil
}

// MaxAngle returns a Flattener that subdivides until the line direction at
// both ends of every segment differs from the chord by at most angle radians.
func MaxAngle(angle float64) (Flattener, error) {
	if !(angle > 0) || math.IsInf(angle, 1) {
		return Flattener{}, validationError("maximum angle %g is not positive and finite", angle)
	}
	return newAdaptive(flatteningStrategy{angle: angle}), nil
}

// MaxDeviationAndAngle combines [MaxDeviation] and [MaxAngle]; a segment is
// split when either bound is exceeded.
func MaxDeviationAndAngle(deviation, angle float64) (Flattener, error) {
	if !(deviation > 0) || math.IsInf(deviation, 1) {
		return Flattener{}, validationError("maximum deviation %g is not positive and finite", deviation)
	}
	if !(angle > 0) || math.IsInf(angle, 1) {
		return Flattener{}, validationError("maximum angle %g is not positive and finite", angle)
	}
	return newAdaptive(flatteningStrategy{deviation: deviation, angle: angle}), nil
}

func newAdaptive(s flatteningStrategy) Flattener {
	o := s
	o.knots = true
	return Flattener{plain: s, offset: o}
}

func (fl Flattener) valid() bool {
	return fl.plain.segments > 0 || fl.plain.deviation > 0 || fl.plain.angle > 0
}

// Flatten approximates line. The first and last points are line.PointAt(0)
// and line.PointAt(1).
func (fl Flattener) Flatten(line FlattableLine) (Polyline, error) {
	if !fl.valid() {
		return Polyline{}, stateError("zero Flattener")
	}
	return fl.plain.flatten(line, nil)
}

// FlattenOffset approximates line, which is the offset version of some base
// line according to offsets.
func (fl Flattener) FlattenOffset(line FlattableLine, offsets *FractionalLengthData) (Polyline, error) {
	if !fl.valid() {
		return Polyline{}, stateError("zero Flattener")
	}
	var knots []float64
	if fl.offset.knots {
		knots = offsets.Knots()
	}
	return fl.offset.flatten(line, knots)
}

func (s flatteningStrategy) flatten(line FlattableLine, knots []float64) (Polyline, error) {
	if s.segments > 0 {
		pts := make([]Point, s.segments+1)
		for i := range pts {
			pts[i] = line.PointAt(float64(i) / float64(s.segments))
		}
		return newPolylineCollapsed(pts)
	}

	fs := []float64{0}
	for _, k := range knots {
		if k > 0 && k < 1 {
			fs = append(fs, k)
		}
	}
	fs = append(fs, 1)
	fs = slices.Compact(fs)

	sub := subdivider{strategy: s, line: line}
	pts := []Point{line.PointAt(0)}
	for i := 1; i < len(fs); i++ {
		pts = sub.refine(fs[i-1], pts[len(pts)-1], fs[i], line.PointAt(fs[i]), 0, pts)
	}
	if sub.exhausted {
		Logger().Warn("flattening reached the maximum subdivision depth",
			"depth", maxSubdivisionDepth, "points", len(pts))
	}
	return newPolylineCollapsed(pts)
}

type subdivider struct {
	strategy  flatteningStrategy
	line      FlattableLine
	exhausted bool
}

// refine appends the points of (f0, f1] to out, splitting the interval in
// half until it satisfies the strategy. p0 and p1 are the points at f0 and f1.
func (sub *subdivider) refine(f0 float64, p0 Point, f1 float64, p1 Point, depth int, out []Point) []Point {
	fm := 0.5 * (f0 + f1)
	pm := sub.line.PointAt(fm)
	if sub.split(f0, p0, fm, pm, f1, p1) {
		if depth < maxSubdivisionDepth {
			out = sub.refine(f0, p0, fm, pm, depth+1, out)
			return sub.refine(fm, pm, f1, p1, depth+1, out)
		}
		sub.exhausted = true
	}
	return append(out, p1)
}

func (sub *subdivider) split(f0 float64, p0 Point, fm float64, pm Point, f1 float64, p1 Point) bool {
	s := sub.strategy
	chord := Line{p0, p1}
	if s.deviation > 0 {
		limit := s.deviation * s.deviation
		if d, _ := chord.Nearest(pm); d > limit {
			return true
		}
		for _, f := range [...]float64{0.5 * (f0 + fm), 0.5 * (fm + f1)} {
			if d, _ := chord.Nearest(sub.line.PointAt(f)); d > limit {
				return true
			}
		}
	}
	if s.angle > 0 {
		if p0 == p1 {
			// No chord direction; split unless the interval collapsed.
			return pm != p0
		}
		dir := chord.Direction()
		if math.Abs(NormalizeAngle(sub.line.DirectionAt(f0)-dir)) > s.angle ||
			math.Abs(NormalizeAngle(sub.line.DirectionAt(f1)-dir)) > s.angle {
			return true
		}
	}
	return false
}
