package roadgeom

import (
	"errors"
	"math"
	"testing"
)

func TestContinuousArcInvalid(t *testing.T) {
	start := OPt(0, 0, 0)
	for _, r := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if _, err := NewContinuousArc(start, r, true, 1); !errors.Is(err, ErrValidation) {
			t.Errorf("radius %g: got error %v, want ErrValidation", r, err)
		}
	}
	for _, a := range []float64{-1, math.Inf(1), math.NaN()} {
		if _, err := NewContinuousArc(start, 1, true, a); !errors.Is(err, ErrValidation) {
			t.Errorf("angle %g: got error %v, want ErrValidation", a, err)
		}
	}
	if _, err := NewContinuousArcLength(start, 1, true, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("got error %v, want ErrValidation", err)
	}
}

func TestContinuousArc(t *testing.T) {
	tests := []struct {
		name   string
		left   bool
		center Point
		end    OrientedPoint
	}{
		{"left", true, Pt(0, 10), OPt(10, 10, math.Pi/2)},
		{"right", false, Pt(0, -10), OPt(10, -10, -math.Pi/2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := NewContinuousArc(OPt(0, 0, 0), 10, tt.left, math.Pi/2)
			if err != nil {
				t.Fatal(err)
			}
			assertNear(t, arc.Center(), tt.center, 1e-12)
			assertNear(t, arc.EndPoint().Point, tt.end.Point, 1e-12)
			assertAngle(t, arc.EndPoint().Heading, tt.end.Heading, 1e-12)
			assertClose(t, arc.Length(), 5*math.Pi, 1e-12)
			diff(t, 0.1, arc.StartCurvature())
			diff(t, 0.1, arc.EndCurvature())
			diff(t, 10.0, arc.StartRadius())
			diff(t, tt.left, arc.Left())

			for _, f := range []float64{0.25, 0.5, 0.75} {
				assertClose(t, arc.PointAt(f).Distance(arc.Center()), 10, 1e-12)
				assertAngle(t, arc.DirectionAt(f), FiniteDifferenceDirection(arc, f), 1e-6)
			}
			diff(t, arc.StartPoint().Point, arc.PointAt(0))
			diff(t, arc.EndPoint().Point, arc.PointAt(1))
		})
	}
}

func TestContinuousArcLength(t *testing.T) {
	arc, err := NewContinuousArcLength(OPt(0, 0, 0), 20, true, 10)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, arc.Angle(), 0.5, 1e-15)
	assertClose(t, arc.Length(), 10, 1e-12)
	assertAngle(t, arc.EndPoint().Heading, 0.5, 1e-15)
}

func TestContinuousArcOffset(t *testing.T) {
	tests := []struct {
		name   string
		left   bool
		radius float64
	}{
		// A positive offset is on the inside of a left arc.
		{"left", true, 9},
		{"right", false, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := NewContinuousArc(OPt(0, 0, 0), 10, tt.left, math.Pi/2)
			if err != nil {
				t.Fatal(err)
			}
			offsets := ConstantOffset(1)
			l, err := arc.FlattenOffset(offsets, mustFlattener(t)(MaxDeviation(0.001)))
			if err != nil {
				t.Fatal(err)
			}
			diff(t, arc.StartPoint().Offset(1), l.First())
			diff(t, arc.EndPoint().Offset(1), l.Last())
			for i := range l.Len() {
				assertClose(t, l.At(i).Distance(arc.Center()), tt.radius, 1e-9)
			}

			off := arc.OffsetFlattableLine(offsets)
			for _, f := range []float64{0.1, 0.5, 0.9} {
				assertAngle(t, off.DirectionAt(f), arc.DirectionAt(f), 1e-12)
			}
		})
	}

	// A widening offset turns the offset line's direction outward.
	arc, err := NewContinuousArc(OPt(0, 0, 0), 10, true, math.Pi/2)
	if err != nil {
		t.Fatal(err)
	}
	off := arc.OffsetFlattableLine(mustOffsets(t, 0, 0, 1, 2))
	for _, f := range []float64{0.1, 0.5, 0.9} {
		assertAngle(t, off.DirectionAt(f), FiniteDifferenceDirection(off, f), 1e-6)
	}
}

func TestContinuousArcZeroSweep(t *testing.T) {
	start := OPt(0, 0, 1)
	arc, err := NewContinuousArc(start, 10, true, 0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, start, arc.EndPoint())
	diff(t, arc.PointAt(0), arc.PointAt(1))
	diff(t, 0.0, arc.Length())

	off := arc.OffsetFlattableLine(ConstantOffset(1))
	for _, f := range []float64{0, 0.5, 1} {
		assertAngle(t, off.DirectionAt(f), 1, 1e-15)
	}
	diff(t, start.Offset(1), off.PointAt(1))

	if _, err := arc.Flatten(mustFlattener(t)(MaxDeviation(0.01))); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got error %v, want ErrInvalidState", err)
	}
}
