package roadgeom

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// FractionalLengthData is a piecewise-linear profile over fractional length
// f ∈ [0, 1]. It is used to describe lateral offsets along a line.
//
// Between knots the value is interpolated linearly, outside the knot range it
// is held constant at the nearest knot. The profile is immutable after
// construction and safe for concurrent use.
type FractionalLengthData struct {
	data *treemap.Map
}

// NewFractionalLengthData builds a profile from alternating fraction and value
// arguments, such as NewFractionalLengthData(0, -1.75, 1, -2).
func NewFractionalLengthData(fractionsAndValues ...float64) (*FractionalLengthData, error) {
	n := len(fractionsAndValues)
	if n == 0 {
		return nil, validationError("no fractional lengths")
	}
	if n%2 != 0 {
		return nil, validationError("odd number of arguments (%d), need fraction/value pairs", n)
	}
	m := treemap.NewWith(utils.Float64Comparator)
	for i := 0; i < n; i += 2 {
		f, v := fractionsAndValues[i], fractionsAndValues[i+1]
		if err := checkKnot(f, v); err != nil {
			return nil, err
		}
		if _, ok := m.Get(f); ok {
			return nil, validationError("duplicate fractional length %g", f)
		}
		m.Put(f, v)
	}
	return &FractionalLengthData{data: m}, nil
}

// FractionalLengthDataFromMap builds a profile from a fraction to value map.
func FractionalLengthDataFromMap(values map[float64]float64) (*FractionalLengthData, error) {
	if len(values) == 0 {
		return nil, validationError("no fractional lengths")
	}
	m := treemap.NewWith(utils.Float64Comparator)
	for f, v := range values {
		if err := checkKnot(f, v); err != nil {
			return nil, err
		}
		m.Put(f, v)
	}
	return &FractionalLengthData{data: m}, nil
}

// ConstantOffset returns a profile with the same value everywhere.
func ConstantOffset(v float64) *FractionalLengthData {
	m := treemap.NewWith(utils.Float64Comparator)
	m.Put(0.0, v)
	return &FractionalLengthData{data: m}
}

func checkKnot(f, v float64) error {
	if !(f >= 0 && f <= 1) {
		return validationError("fractional length %g outside [0, 1]", f)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validationError("value %g at fractional length %g is not finite", v, f)
	}
	return nil
}

func knot(k, v any) (float64, float64, bool) {
	if k == nil {
		return 0, 0, false
	}
	return k.(float64), v.(float64), true
}

func (d *FractionalLengthData) floor(f float64) (float64, float64, bool) {
	return knot(d.data.Floor(f))
}

func (d *FractionalLengthData) ceiling(f float64) (float64, float64, bool) {
	return knot(d.data.Ceiling(f))
}

func (d *FractionalLengthData) lower(f float64) (float64, float64, bool) {
	return d.floor(math.Nextafter(f, math.Inf(-1)))
}

func (d *FractionalLengthData) higher(f float64) (float64, float64, bool) {
	return d.ceiling(math.Nextafter(f, math.Inf(1)))
}

// Get returns the value at fractional length f.
func (d *FractionalLengthData) Get(f float64) float64 {
	f0, v0, ok0 := d.floor(f)
	if ok0 && f0 == f {
		return v0
	}
	f1, v1, ok1 := d.ceiling(f)
	switch {
	case !ok0:
		return v1
	case !ok1:
		return v0
	}
	return lerp(v0, v1, (f-f0)/(f1-f0))
}

// Derivative returns the slope of the profile with respect to fractional
// length at f. At a knot the slope of the segment to its left is used,
// except at f = 0 where the segment to the right is used. Outside the knot
// range the slope is 0.
func (d *FractionalLengthData) Derivative(f float64) float64 {
	var (
		f0, v0, f1, v1 float64
		ok0, ok1       bool
	)
	if f == 0 {
		f0, v0, ok0 = d.floor(f)
		f1, v1, ok1 = d.higher(f)
	} else {
		f0, v0, ok0 = d.lower(f)
		f1, v1, ok1 = d.ceiling(f)
	}
	if !ok0 || !ok1 {
		return 0
	}
	return (v1 - v0) / (f1 - f0)
}

// Size returns the number of knots.
func (d *FractionalLengthData) Size() int {
	return d.data.Size()
}

// Knots returns the stored fractional lengths, in ascending order.
func (d *FractionalLengthData) Knots() []float64 {
	keys := d.data.Keys()
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = k.(float64)
	}
	return out
}

// FractionalLengths returns the knot positions, always including 0 and 1.
func (d *FractionalLengthData) FractionalLengths() []float64 {
	out := d.Knots()
	if out[0] != 0 {
		out = append([]float64{0}, out...)
	}
	if out[len(out)-1] != 1 {
		out = append(out, 1)
	}
	return out
}

// Values returns the values belonging to [FractionalLengthData.FractionalLengths].
func (d *FractionalLengthData) Values() []float64 {
	fs := d.FractionalLengths()
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = d.Get(f)
	}
	return out
}

// MaxAbs returns the largest absolute value of the profile.
func (d *FractionalLengthData) MaxAbs() float64 {
	var out float64
	for _, v := range d.data.Values() {
		out = max(out, math.Abs(v.(float64)))
	}
	return out
}

func (d *FractionalLengthData) String() string {
	var sb strings.Builder
	sb.WriteString("FractionalLengthData[")
	it := d.data.Iterator()
	first := true
	for it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%g: %g", it.Key(), it.Value())
	}
	sb.WriteString("]")
	return sb.String()
}
