// Package roadgeom provides continuous lines for road design and routines for
// turning them into polylines, optionally displaced laterally to describe
// lanes and other cross-section elements.
//
// # Features
//
// We provide the following notable features:
//
//   - Analytic design lines: [ContinuousStraight], [ContinuousArc],
//     [ContinuousClothoid] and [ContinuousBezierCubic]
//   - Clothoids between two oriented points (see [NewContinuousClothoid])
//   - Flattening to polylines by segment count, deviation or angle (see
//     [Flattener])
//   - Lateral offsets that vary along a line (see [FractionalLengthData])
//   - Lane edges and outlines from cross-section slices (see [CrossSection]
//     and [Contour])
//   - Fresnel integrals (see [Fresnel])
//   - Affine transformations (see [Affine])
//
// # Continuous lines
//
// [ContinuousLine] describes an analytic line with oriented end points,
// curvature at both ends and a length. Curvature is positive for lines
// turning left, with the exception of [ContinuousArc], whose curvature is
// always 1/r and whose direction is given by [ContinuousArc.Left]. Radii are
// the inverse of curvature; straight lines have a radius of +Inf.
//
// Lines are evaluated at their fractional length f ∈ [0, 1]. For arcs,
// straights and clothoids f is proportional to arc length. For Béziers f is
// the curve parameter.
//
// [ContinuousPolyLine] wraps an already discretized [Polyline] so that it can
// be used where a ContinuousLine is expected.
//
// # Flattening
//
// A [Flattener] approximates a [FlattableLine] with a [Polyline]. Flattened
// lines always start and end exactly at the line's end points, and offset
// lines exactly at the offset end points. When flattening an offset line, the
// adaptive strategies also place a vertex at every knot of the offset
// profile, since the offset line may have a kink there.
//
// # Offsets
//
// [FractionalLengthData] maps fractional length to a lateral offset, with
// positive values to the left of the line. Values between knots are
// interpolated linearly. The offset of a line is computed by moving each
// point along the line's left normal by the offset at that point.
//
// # Errors and logging
//
// Invalid arguments are reported with errors wrapping [ErrValidation].
// Operations that are not possible in the current state of a value, such as
// flattening with the zero [Flattener], wrap [ErrInvalidState].
//
// The package logs nothing by default. Use [SetLogger] to receive debug
// messages about construction decisions and warnings about flattening limits.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Interpolation of two-dimensional curves with Euler spirals] by Connor and Krivodonova
//   - [G¹ interpolation with a single Cornu spiral segment] by Walton and Meek
//   - [Rational Chebyshev approximations for Fresnel integrals] by W. J. Cody
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//
// [Interpolation of two-dimensional curves with Euler spirals]: https://doi.org/10.1016/j.cam.2014.04.002
// [G¹ interpolation with a single Cornu spiral segment]: https://doi.org/10.1016/j.cam.2008.04.040
// [Rational Chebyshev approximations for Fresnel integrals]: https://doi.org/10.1090/S0025-5718-1968-0238466-6
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
package roadgeom
