package roadgeom

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustPolyline(t *testing.T, pts ...Point) Polyline {
	t.Helper()
	l, err := NewPolyline(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestNewPolylineInvalid(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"single", []Point{Pt(1, 1)}},
		{"repeated", []Point{Pt(0, 0), Pt(1, 0), Pt(1, 0)}},
		{"NaN", []Point{Pt(0, 0), Pt(math.NaN(), 0)}},
		{"infinite", []Point{Pt(math.Inf(-1), 0), Pt(0, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPolyline(tt.pts...); !errors.Is(err, ErrValidation) {
				t.Errorf("got error %v, want ErrValidation", err)
			}
		})
	}
}

func TestPolylineCollapsed(t *testing.T) {
	l, err := newPolylineCollapsed([]Point{Pt(0, 0), Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, l.Points())

	if _, err := newPolylineCollapsed([]Point{Pt(1, 1), Pt(1, 1)}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got error %v, want ErrInvalidState", err)
	}
}

func TestPolylineLength(t *testing.T) {
	l := mustPolyline(t, Pt(0, 0), Pt(3, 4), Pt(3, 10))
	diff(t, 11.0, l.Length())
	diff(t, 5.0, l.LengthAtIndex(1))
	diff(t, 3, l.Len())
	diff(t, 5.0/11, l.VertexFraction(1))
	diff(t, 1.0, l.VertexFraction(2))
	diff(t, Pt(0, 0), l.First())
	diff(t, Pt(3, 10), l.Last())
}

func TestPolylineLocationFraction(t *testing.T) {
	l := mustPolyline(t, Pt(0, 0), Pt(3, 4), Pt(3, 10))
	opt := cmpopts.EquateApprox(0, 1e-12)

	op, err := l.LocationFraction(8.0 / 11)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, OPt(3, 7, math.Pi/2), op, opt)

	op, err = l.LocationFraction(0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, OPt(0, 0, math.Atan2(4, 3)), op, opt)

	op, err = l.LocationFraction(1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, OPt(3, 10, math.Pi/2), op, opt)

	for _, f := range []float64{-0.1, 1.1, math.NaN()} {
		if _, err := l.LocationFraction(f); !errors.Is(err, ErrValidation) {
			t.Errorf("LocationFraction(%g): got error %v, want ErrValidation", f, err)
		}
	}

	diff(t, OPt(3, 15.5, math.Pi/2), l.LocationFractionExtended(1.5), opt)
	diff(t, OPt(-3.3, -4.4, math.Atan2(4, 3)), l.LocationFractionExtended(-0.5), opt)
}

func TestPolylineProjectedVertexRadius(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want float64
	}{
		{"left", []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, 5},
		{"right", []Point{Pt(0, 0), Pt(10, 0), Pt(10, -10)}, -5},
		{"collinear", []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0)}, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustPolyline(t, tt.pts...)
			r, err := l.ProjectedVertexRadius(1)
			if err != nil {
				t.Fatal(err)
			}
			if math.IsInf(tt.want, 1) {
				if !math.IsInf(r, 1) {
					t.Errorf("got radius %g, want +Inf", r)
				}
				return
			}
			assertClose(t, r, tt.want, 1e-9)
		})
	}

	l := mustPolyline(t, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	for _, i := range []int{0, 2} {
		if _, err := l.ProjectedVertexRadius(i); !errors.Is(err, ErrValidation) {
			t.Errorf("ProjectedVertexRadius(%d): got error %v, want ErrValidation", i, err)
		}
	}
}

func TestPolylineProjectedRadius(t *testing.T) {
	l := mustPolyline(t, Pt(0, 0), Pt(10, 0))
	r, err := l.ProjectedRadius(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(r, 1) {
		t.Errorf("got radius %g for a single segment, want +Inf", r)
	}

	// The first vertex turns left with radius 5, the second right with a
	// larger radius.
	l = mustPolyline(t, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(30, 30))
	r0, err := l.ProjectedVertexRadius(1)
	if err != nil {
		t.Fatal(err)
	}
	r1, err := l.ProjectedVertexRadius(2)
	if err != nil {
		t.Fatal(err)
	}
	if !(math.Abs(r0) < math.Abs(r1)) || r1 > 0 {
		t.Fatalf("unexpected vertex radii %g and %g", r0, r1)
	}
	for _, tt := range []struct {
		f, want float64
	}{
		{0, r0},
		{0.5 * 10 / l.Length(), r0},
		{15 / l.Length(), r0},
		{1, r1},
	} {
		got, err := l.ProjectedRadius(tt.f)
		if err != nil {
			t.Fatal(err)
		}
		assertClose(t, got, tt.want, 1e-12)
	}

	if _, err := l.ProjectedRadius(2); !errors.Is(err, ErrValidation) {
		t.Errorf("got error %v, want ErrValidation", err)
	}
}

func TestPolylineOffset(t *testing.T) {
	l := mustPolyline(t, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	off, err := l.Offset(ConstantOffset(1))
	if err != nil {
		t.Fatal(err)
	}
	s := math.Sqrt2 / 2
	diff(t, []Point{Pt(0, 1), Pt(10-s, s), Pt(9, 10)}, off.Points(), cmpopts.EquateApprox(0, 1e-12))

	// Offsets interpolate along the length.
	l = mustPolyline(t, Pt(0, 0), Pt(5, 0), Pt(10, 0))
	off, err = l.Offset(mustOffsets(t, 0, 0, 1, -2))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(5, -1), Pt(10, -2)}, off.Points(), cmpopts.EquateApprox(0, 1e-12))
}

func TestPolylineReverseTransform(t *testing.T) {
	l := mustPolyline(t, Pt(0, 0), Pt(3, 4), Pt(3, 10))
	diff(t, []Point{Pt(3, 10), Pt(3, 4), Pt(0, 0)}, l.Reverse().Points())
	diff(t, l.Length(), l.Reverse().Length())

	tl, err := l.Transform(FlipY)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(0, 0), Pt(3, -4), Pt(3, -10)}, tl.Points())

	if _, err := l.Transform(Scale(0, 0)); !errors.Is(err, ErrInvalidState) {
		t.Errorf("got error %v, want ErrInvalidState", err)
	}

	diff(t, Rect{0, 0, 3, 10}, l.BoundingBox())
	diff(t, []PathElement{MoveTo(Pt(0, 0)), LineTo(Pt(3, 4)), LineTo(Pt(3, 10))}, slices.Collect(l.PathElements()))
}
