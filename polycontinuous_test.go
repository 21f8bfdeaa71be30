package roadgeom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestContinuousPolyLine(t *testing.T) {
	line := mustPolyline(t, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	p, err := NewContinuousPolyLine(line)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, OPt(0, 0, 0), p.StartPoint())
	diff(t, OPt(10, 10, math.Pi/2), p.EndPoint())
	assertClose(t, p.StartCurvature(), 0.2, 1e-12)
	assertClose(t, p.EndCurvature(), 0.2, 1e-12)
	assertClose(t, p.StartRadius(), 5, 1e-12)
	diff(t, 20.0, p.Length())

	// The stored line is returned whatever the Flattener.
	for _, fl := range []Flattener{
		mustFlattener(t)(NumSegments(100)),
		mustFlattener(t)(MaxDeviation(1e-6)),
	} {
		l, err := p.Flatten(fl)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, line.Points(), l.Points())
	}
	if _, err := p.Flatten(Flattener{}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got error %v, want ErrInvalidState", err)
	}
}

func TestContinuousPolyLineStraight(t *testing.T) {
	p, err := NewContinuousPolyLine(mustPolyline(t, Pt(0, 0), Pt(10, 0)))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.0, p.StartCurvature())
	diff(t, math.Inf(1), p.EndRadius())
}

func TestContinuousPolyLineWithHeadings(t *testing.T) {
	line := mustPolyline(t, Pt(0, 0), Pt(10, 1), Pt(20, 0))
	p, err := NewContinuousPolyLineWithHeadings(line, 0.2, -0.2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.2, p.StartPoint().Heading)
	diff(t, -0.2, p.EndPoint().Heading)
	diff(t, line.First(), p.StartPoint().Point)
	diff(t, line.Last(), p.EndPoint().Point)

	if _, err := NewContinuousPolyLineWithHeadings(line, math.NaN(), 0); !errors.Is(err, ErrValidation) {
		t.Errorf("got error %v, want ErrValidation", err)
	}
}

func TestContinuousPolyLineOffset(t *testing.T) {
	line := mustPolyline(t, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	p, err := NewContinuousPolyLine(line)
	if err != nil {
		t.Fatal(err)
	}
	l, err := p.FlattenOffset(ConstantOffset(1), mustFlattener(t)(NumSegments(1)))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, p.StartPoint().Offset(1), l.First())
	diff(t, p.EndPoint().Offset(1), l.Last())
	s := math.Sqrt2 / 2
	diff(t, []Point{Pt(0, 1), Pt(10-s, s), Pt(9, 10)}, l.Points(), cmpopts.EquateApprox(0, 1e-12))
}
