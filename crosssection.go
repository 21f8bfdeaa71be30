package roadgeom

import (
	"iter"
	"math"
)

// CrossSectionSlice describes the lateral placement of a lane or other road
// element at one position along a design line.
type CrossSectionSlice struct {
	// Position is the length along the design line.
	Position float64
	// Offset is the lateral offset of the element's center, positive to the
	// left.
	Offset float64
	// Width is the element's width.
	Width float64
}

// CrossSection returns the two slices of an element whose offset and width
// change linearly from the start to the end of line.
func CrossSection(line ContinuousLine, offsetStart, offsetEnd, widthStart, widthEnd float64) []CrossSectionSlice {
	return []CrossSectionSlice{
		{Position: 0, Offset: offsetStart, Width: widthStart},
		{Position: line.Length(), Offset: offsetEnd, Width: widthEnd},
	}
}

// CenterOffsets returns the offset profile of the element's center.
func CenterOffsets(line ContinuousLine, slices []CrossSectionSlice) (*FractionalLengthData, error) {
	return sliceOffsets(line, slices, 0)
}

// LeftEdgeOffsets returns the offset profile of the element's left edge.
func LeftEdgeOffsets(line ContinuousLine, slices []CrossSectionSlice) (*FractionalLengthData, error) {
	return sliceOffsets(line, slices, 0.5)
}

// RightEdgeOffsets returns the offset profile of the element's right edge.
func RightEdgeOffsets(line ContinuousLine, slices []CrossSectionSlice) (*FractionalLengthData, error) {
	return sliceOffsets(line, slices, -0.5)
}

// sliceOffsets builds the profile offset + side·width over the slices.
func sliceOffsets(line ContinuousLine, slices []CrossSectionSlice, side float64) (*FractionalLengthData, error) {
	if len(slices) == 0 {
		return nil, validationError("no cross-section slices")
	}
	length := line.Length()
	if !(length > 0) {
		return nil, validationError("design line length %g is not positive", length)
	}
	values := make(map[float64]float64, len(slices))
	for i, s := range slices {
		if s.Width < 0 || math.IsNaN(s.Width) {
			return nil, validationError("slice %d has negative width %g", i, s.Width)
		}
		f := s.Position / length
		// Slices at the very end may round to just beyond the length.
		if math.Abs(s.Position-length) < 1e-9*length {
			f = 1
		}
		if _, ok := values[f]; ok {
			return nil, validationError("slices at duplicate position %g", s.Position)
		}
		values[f] = s.Offset + side*s.Width
	}
	return FractionalLengthDataFromMap(values)
}

// Contour returns the closed outline of the area between a left and a right
// edge: the left edge forward, then the right edge backward.
func Contour(left, right Polyline) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for el := range left.PathElements() {
			if !yield(el) {
				return
			}
		}
		for i := right.Len() - 1; i >= 0; i-- {
			if !yield(LineTo(right.At(i))) {
				return
			}
		}
		yield(ClosePath())
	}
}
