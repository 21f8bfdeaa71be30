package roadgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); d > epsilon || math.IsNaN(got) {
		t.Errorf("got %g, want %g (%g > %g)", got, want, d, epsilon)
	}
}

func assertAngle(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(NormalizeAngle(got - want)); d > epsilon || math.IsNaN(got) {
		t.Errorf("got angle %g, want %g (%g > %g)", got, want, d, epsilon)
	}
}

// mustFlattener returns a function that fails t if a Flattener constructor
// returned an error, as in mustFlattener(t)(MaxDeviation(0.1)).
func mustFlattener(t *testing.T) func(Flattener, error) Flattener {
	return func(fl Flattener, err error) Flattener {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return fl
	}
}

func mustOffsets(t *testing.T, fractionsAndValues ...float64) *FractionalLengthData {
	t.Helper()
	d, err := NewFractionalLengthData(fractionsAndValues...)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
