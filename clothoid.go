package roadgeom

import (
	"math"
)

const (
	// clothoidAngleTolerance is the angle within which a two-point clothoid
	// degenerates to a straight or an arc, 1/10th of a degree.
	clothoidAngleTolerance = 2 * math.Pi / 3600
	// clothoidThetaTolerance is the precision of the theta search.
	clothoidThetaTolerance = 1e-8
)

// ContinuousClothoid is a clothoid (Euler spiral): a line whose curvature
// changes linearly with its length.
//
// The curve is evaluated from the Fresnel integrals. Internally a point at
// Fresnel argument t is
//
//	origin + a·((C(t) − C(t₀))·u + (S(t) − S(t₀))·w) + g·shift
//
// where g ∈ [0, 1] is the fraction along the internal curve and shift is a
// small correction that makes a two-point clothoid end exactly on its end
// point. The internal curve may run against the line's direction.
type ContinuousClothoid struct {
	start OrientedPoint
	end   OrientedPoint

	// degenerate holds the straight or arc a two-point clothoid reduces to.
	degenerate FlattableLine

	a        float64
	t0, t1   float64
	c0, s0   float64
	origin   Point
	u, w     Vec2
	eps      float64
	shift    Vec2
	opposite bool

	length         float64
	startCurvature float64
	endCurvature   float64
}

// NewContinuousClothoid returns the clothoid between two oriented points with
// the smallest rotation, after D. Connor and L. Krivodonova, "Interpolation of
// two-dimensional curves with Euler spirals" (2014), applying D. J. Walton and
// D. S. Meek, "G¹ interpolation with a single Cornu spiral segment" (2009).
//
// If both headings are within 1/10th of a degree of a straight or an arc
// connecting the points, the result is that straight or arc.
func NewContinuousClothoid(start, end OrientedPoint) (*ContinuousClothoid, error) {
	if start.Point == end.Point {
		return nil, validationError("clothoid start and end coincide at %s", start.Point)
	}
	c := &ContinuousClothoid{start: start, end: end}

	dx := end.X - start.X
	dy := end.Y - start.Y
	d2 := math.Hypot(dx, dy)
	d := math.Atan2(dy, dx)

	phi1 := NormalizeAngle(d - start.Heading)
	phi2 := NormalizeAngle(end.Heading - d)
	phi1Abs := math.Abs(phi1)
	phi2Abs := math.Abs(phi2)

	if phi1Abs < clothoidAngleTolerance && phi2Abs < clothoidAngleTolerance {
		s, err := NewContinuousStraight(start, d2)
		if err != nil {
			return nil, err
		}
		Logger().Debug("clothoid degenerates to a straight", "start", start, "end", end)
		c.degenerate = s
		c.length = d2
		return c, nil
	} else if math.Abs(phi2-phi1) < clothoidAngleTolerance {
		r := 0.5 * d2 / math.Sin(phi1)
		arc, err := NewContinuousArc(start, math.Abs(r), r > 0, math.Abs(phi1+phi2))
		if err != nil {
			return nil, err
		}
		Logger().Debug("clothoid degenerates to an arc", "start", start, "end", end, "radius", r)
		c.degenerate = arc
		c.length = arc.Length()
		c.startCurvature = 1 / r
		c.endCurvature = 1 / r
		return c, nil
	}

	// The construction assumes |phi2| > |phi1|, otherwise the clothoid is
	// built from the end point backwards.
	if phi2Abs < phi1Abs {
		c.opposite = true
		phi1, phi2 = -phi2, -phi1
		dx, dy = -dx, -dy
	}

	// The construction assumes 0 < phi2 < π, otherwise it works on the
	// mirror image about the chord.
	reflect := false
	if phi2 < 0 || phi2 > math.Pi {
		reflect = true
		phi1, phi2 = -phi1, -phi2
	}

	// A negative h with 0 < phi1 < phi2 < π indicates a C-shaped clothoid,
	// otherwise it is S-shaped.
	cs, ss := Fresnel(alphaToT(phi1 + phi2))
	h := ss*math.Cos(phi1) - cs*math.Sin(phi1)
	cShape := 0 < phi1 && phi1 < phi2 && phi2 < math.Pi && h < 0
	theta, err := clothoidTheta(phi1, phi2, cShape)
	if err != nil {
		return nil, err
	}
	aSign := 1.0
	if cShape {
		aSign = -1
	}

	v1 := theta + phi1 + phi2
	v2 := theta + phi1
	cs0, ss0 := Fresnel(alphaToT(theta))
	cs1, ss1 := Fresnel(alphaToT(v1))
	a := d2 / ((ss1+aSign*ss0)*math.Sin(v2) + (cs1+aSign*cs0)*math.Cos(v2))
	if !(a > 0) || math.IsInf(a, 1) {
		return nil, validationError("no clothoid between %s and %s", start, end)
	}

	chord := Vec(dx, dy).Div(d2)
	if reflect {
		c.u = rotateVec(chord, v2)
		c.eps = -1
	} else {
		c.u = rotateVec(chord, -v2)
		c.eps = 1
	}
	c.w = c.u.Perp().Mul(c.eps)
	c.a = a
	c.t0 = alphaToT(-aSign * theta)
	c.t1 = alphaToT(v1)
	c.c0, c.s0 = Fresnel(c.t0)
	c.origin = start.Point
	target := end.Point
	if c.opposite {
		c.origin, target = end.Point, start.Point
	}
	c.shift = target.Sub(c.internalPoint(1))
	c.length = a * (c.t1 - c.t0)
	c.startCurvature = c.curvatureAt(0)
	c.endCurvature = c.curvatureAt(1)
	return c, nil
}

// NewContinuousClothoidA returns the clothoid from start with clothoid
// parameter a (a² = R·L) whose curvature changes from startCurvature to
// endCurvature. The length is a²·|endCurvature − startCurvature|.
func NewContinuousClothoidA(start OrientedPoint, a, startCurvature, endCurvature float64) (*ContinuousClothoid, error) {
	if !(a > 0) || math.IsInf(a, 1) {
		return nil, validationError("clothoid A-value %g is not positive and finite", a)
	}
	if math.IsNaN(startCurvature) || math.IsInf(startCurvature, 0) || math.IsNaN(endCurvature) || math.IsInf(endCurvature, 0) {
		return nil, validationError("clothoid curvatures %g and %g are not finite", startCurvature, endCurvature)
	}
	if startCurvature == endCurvature {
		return nil, validationError("clothoid with constant curvature %g, use an arc or a straight", startCurvature)
	}
	// With κ = ε·π·t/(a√π) along the Fresnel argument t, curvature increases
	// with t for ε = 1. A decreasing curvature is the mirrored clothoid.
	eps := 1.0
	if endCurvature < startCurvature {
		eps = -1
	}
	sqrtPi := math.Sqrt(math.Pi)
	c := &ContinuousClothoid{
		start:          start,
		a:              a * sqrtPi,
		t0:             eps * startCurvature * a / sqrtPi,
		t1:             eps * endCurvature * a / sqrtPi,
		eps:            eps,
		origin:         start.Point,
		length:         a * a * math.Abs(endCurvature-startCurvature),
		startCurvature: startCurvature,
		endCurvature:   endCurvature,
	}
	c.c0, c.s0 = Fresnel(c.t0)
	c.u = VecFromAngle(start.Heading - eps*math.Pi*c.t0*c.t0/2)
	c.w = c.u.Perp().Mul(eps)
	c.end = OrientedPoint{Point: c.internalPoint(1), Heading: NormalizeAngle(c.internalHeading(1))}
	return c, nil
}

// NewContinuousClothoidLength returns the clothoid from start with the given
// length whose curvature changes from startCurvature to endCurvature. The
// A-value is sqrt(length / |endCurvature − startCurvature|).
func NewContinuousClothoidLength(start OrientedPoint, length, startCurvature, endCurvature float64) (*ContinuousClothoid, error) {
	if !(length > 0) || math.IsInf(length, 1) {
		return nil, validationError("clothoid length %g is not positive and finite", length)
	}
	if startCurvature == endCurvature {
		return nil, validationError("clothoid with constant curvature %g, use an arc or a straight", startCurvature)
	}
	return NewContinuousClothoidA(start, math.Sqrt(length/math.Abs(endCurvature-startCurvature)), startCurvature, endCurvature)
}

// alphaToT converts the angle α along a unit clothoid to the Fresnel
// argument t = ±sqrt(2|α|/π).
func alphaToT(alpha float64) float64 {
	if alpha >= 0 {
		return math.Sqrt(alpha * 2 / math.Pi)
	}
	return -math.Sqrt(-alpha * 2 / math.Pi)
}

// rotateVec rotates v by th radians.
func rotateVec(v Vec2, th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// clothoidTheta finds the angle theta that fits a C- or S-shaped clothoid
// with chord angles phi1 and phi2.
func clothoidTheta(phi1, phi2 float64, cShape bool) (float64, error) {
	var sign, phiMin, phiMax float64
	if cShape {
		lambda := (1 - math.Cos(phi1)) / (1 - math.Cos(phi2))
		phiMin = 0
		phiMax = (lambda * lambda * (phi1 + phi2)) / (1 - lambda*lambda)
		sign = -1
	} else {
		phiMin = max(0, -phi1)
		phiMax = math.Pi/2 - phi1
		sign = 1
	}
	if !(phiMax > phiMin) {
		return 0, validationError("empty theta range [%g, %g] for clothoid", phiMin, phiMax)
	}

	f := func(theta float64) float64 {
		return clothoidFTheta(theta, phi1, phi2, sign)
	}
	fMin := f(phiMin)
	fMax := f(phiMax)
	switch {
	case fMin == 0:
		return phiMin, nil
	case fMax == 0:
		return phiMax, nil
	case fMin*fMax > 0:
		return 0, validationError("clothoid theta is not bracketed, f(%g) = %g and f(%g) = %g", phiMin, fMin, phiMax, fMax)
	}
	if fMin > 0 {
		g := f
		f = func(theta float64) float64 { return -g(theta) }
		fMin, fMax = -fMin, -fMax
	}
	return SolveITP(f, phiMin, phiMax, clothoidThetaTolerance, 1, 0.2/(phiMax-phiMin), fMin, fMax), nil
}

// clothoidFTheta is zero at the theta of a C-shaped clothoid for sign = -1,
// and of an S-shaped clothoid for sign = 1.
func clothoidFTheta(theta, phi1, phi2, sign float64) float64 {
	thetaPhi1 := theta + phi1
	c0, s0 := Fresnel(alphaToT(theta))
	c1, s1 := Fresnel(alphaToT(thetaPhi1 + phi2))
	return (s1+sign*s0)*math.Cos(thetaPhi1) - (c1+sign*c0)*math.Sin(thetaPhi1)
}

func (c *ContinuousClothoid) fresnelArg(g float64) float64 {
	return lerp(c.t0, c.t1, g)
}

func (c *ContinuousClothoid) internalPoint(g float64) Point {
	cs, ss := Fresnel(c.fresnelArg(g))
	v := c.u.Mul(cs - c.c0).Add(c.w.Mul(ss - c.s0)).Mul(c.a)
	return c.origin.Translate(v).Translate(c.shift.Mul(g))
}

func (c *ContinuousClothoid) internalHeading(g float64) float64 {
	t := c.fresnelArg(g)
	return c.u.Angle() + c.eps*math.Pi*t*t/2
}

// internal maps a fraction along the line to a fraction along the internal
// curve.
func (c *ContinuousClothoid) internal(f float64) float64 {
	if c.opposite {
		return 1 - f
	}
	return f
}

func (c *ContinuousClothoid) StartPoint() OrientedPoint { return c.start }
func (c *ContinuousClothoid) EndPoint() OrientedPoint   { return c.end }
func (c *ContinuousClothoid) StartCurvature() float64   { return c.startCurvature }
func (c *ContinuousClothoid) EndCurvature() float64     { return c.endCurvature }
func (c *ContinuousClothoid) StartRadius() float64      { return radiusOf(c.startCurvature) }
func (c *ContinuousClothoid) EndRadius() float64        { return radiusOf(c.endCurvature) }
func (c *ContinuousClothoid) Length() float64           { return c.length }

// A returns the clothoid parameter, with a² = R·L. It is +Inf for a straight
// and 0 for an arc.
func (c *ContinuousClothoid) A() float64 {
	switch c.degenerate.(type) {
	case *ContinuousStraight:
		return math.Inf(1)
	case *ContinuousArc:
		return 0
	}
	return c.a / math.Sqrt(math.Pi)
}

// IsStraight reports whether the clothoid degenerated to a straight.
func (c *ContinuousClothoid) IsStraight() bool {
	_, ok := c.degenerate.(*ContinuousStraight)
	return ok
}

// IsArc reports whether the clothoid degenerated to an arc.
func (c *ContinuousClothoid) IsArc() bool {
	_, ok := c.degenerate.(*ContinuousArc)
	return ok
}

func (c *ContinuousClothoid) PointAt(f float64) Point {
	switch {
	case f == 0:
		return c.start.Point
	case f == 1:
		return c.end.Point
	case c.degenerate != nil:
		return c.degenerate.PointAt(f)
	}
	return c.internalPoint(c.internal(f))
}

func (c *ContinuousClothoid) DirectionAt(f float64) float64 {
	if c.degenerate != nil {
		return c.degenerate.DirectionAt(f)
	}
	h := c.internalHeading(c.internal(f))
	if c.opposite {
		h += math.Pi
	}
	return NormalizeAngle(h)
}

func (c *ContinuousClothoid) speedAt(f float64) float64 { return c.length }

func (c *ContinuousClothoid) curvatureAt(f float64) float64 {
	if c.degenerate != nil {
		return c.startCurvature
	}
	k := c.eps * math.Pi * c.fresnelArg(c.internal(f)) / c.a
	if c.opposite {
		return -k
	}
	return k
}

func (c *ContinuousClothoid) OffsetFlattableLine(offsets *FractionalLengthData) FlattableLine {
	return offsetFlattable(c, offsets, c.start, c.end)
}

func (c *ContinuousClothoid) Flatten(fl Flattener) (Polyline, error) {
	return fl.Flatten(c)
}

func (c *ContinuousClothoid) FlattenOffset(offsets *FractionalLengthData, fl Flattener) (Polyline, error) {
	return fl.FlattenOffset(c.OffsetFlattableLine(offsets), offsets)
}
