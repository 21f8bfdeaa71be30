package roadgeom

import (
	"golang.org/x/exp/constraints"
)

func lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// radiusOf converts a curvature into a radius of curvature.
func radiusOf(curvature float64) float64 {
	return 1 / curvature
}
