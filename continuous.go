package roadgeom

// ContinuousLine describes an analytic line that can be flattened to a
// [Polyline], optionally with a lateral offset.
//
// Curvature is signed: positive values turn left. For every implementation
// the first and last points of a flattened line are exactly StartPoint and
// EndPoint, and for an offset line exactly StartPoint().Offset(o(0)) and
// EndPoint().Offset(o(1)).
type ContinuousLine interface {
	StartPoint() OrientedPoint
	EndPoint() OrientedPoint
	StartCurvature() float64
	EndCurvature() float64
	// StartRadius returns the radius of curvature at the start, +Inf for
	// straight lines.
	StartRadius() float64
	EndRadius() float64
	Length() float64
	// Flatten approximates the line with a polyline.
	Flatten(fl Flattener) (Polyline, error)
	// FlattenOffset approximates the line laterally displaced by offsets.
	FlattenOffset(offsets *FractionalLengthData, fl Flattener) (Polyline, error)
}

var (
	_ ContinuousLine = (*ContinuousArc)(nil)
	_ ContinuousLine = (*ContinuousStraight)(nil)
	_ ContinuousLine = (*ContinuousBezierCubic)(nil)
	_ ContinuousLine = (*ContinuousClothoid)(nil)
	_ ContinuousLine = (*ContinuousPolyLine)(nil)

	_ FlattableLine = (*ContinuousArc)(nil)
	_ FlattableLine = (*ContinuousStraight)(nil)
	_ FlattableLine = (*ContinuousBezierCubic)(nil)
	_ FlattableLine = (*ContinuousClothoid)(nil)
)

// Legendre-Gauss coefficients for 24 nodes, only the positive half; the
// negative abscissae share the weights.
var gaussLegendreCoeffs24Half = [...][2]float64{ // {weight, abscissa}
	{0.12793819534675215697, 0.06405689286260562609},
	{0.12583745634682829612, 0.19111886747361630916},
	{0.12167047292780339120, 0.31504267969616337439},
	{0.11550566805372560135, 0.43379350762604513849},
	{0.10744427011596563478, 0.54542147138883953566},
	{0.09761865210411388827, 0.64809365193697556925},
	{0.08619016153195327592, 0.74012419157855436424},
	{0.07334648141108030573, 0.82000198597390292195},
	{0.05929858491543678075, 0.88641552700440103421},
	{0.04427743881741980617, 0.93827455200273275852},
	{0.02853138862893366318, 0.97472855597130949820},
	{0.01234122979998719955, 0.99518721999702136018},
}

// integrateUnit integrates f over [0, 1] with 24-point Gauss-Legendre
// quadrature.
func integrateUnit(f func(t float64) float64) float64 {
	var sum float64
	for _, c := range gaussLegendreCoeffs24Half {
		w, x := c[0], c[1]
		sum += w * (f(0.5+0.5*x) + f(0.5-0.5*x))
	}
	return 0.5 * sum
}
