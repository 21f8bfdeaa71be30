package roadgeom

import (
	"slices"
	"testing"
)

func TestSVG(t *testing.T) {
	seq := slices.Values([]PathElement{
		MoveTo(Pt(0, 1)),
		LineTo(Pt(1.23456, -2)),
		LineTo(Pt(10.5, 20)),
		ClosePath(),
	})
	diff(t, "M0,1 L1.23456,-2 L10.5,20 Z", SVG(seq, SVGOptions{}))
	diff(t, "M0,1 L1.23,-2 L10.5,20 Z", SVG(seq, SVGOptions{MaxPrecision: 2}))
	diff(t, "M0,-1 L1.23456,2 L10.5,-20 Z", SVG(TransformElements(seq, FlipY), SVGOptions{}))
}
