package roadgeom_test

import (
	"fmt"
	"math"

	"honnef.co/go/roadgeom"
)

func ExampleMaxDeviation() {
	start := roadgeom.OPt(0, 0, 0)
	arc, err := roadgeom.NewContinuousArc(start, 10, true, math.Pi/2)
	if err != nil {
		panic(err)
	}

	for _, eps := range []float64{0.1, 0.01} {
		fl, err := roadgeom.MaxDeviation(eps)
		if err != nil {
			panic(err)
		}
		line, err := arc.Flatten(fl)
		if err != nil {
			panic(err)
		}
		fmt.Println(line.Len())
	}

	end := arc.EndPoint()
	fmt.Printf("%.3f %.3f %.3f\n", end.X, end.Y, end.Heading)

	// Output:
	// 9
	// 33
	// 10.000 10.000 1.571
}

func ExampleCrossSection() {
	road, err := roadgeom.NewContinuousStraight(roadgeom.OPt(0, 0, 0), 100)
	if err != nil {
		panic(err)
	}
	// A lane to the right of the design line, widening from 3.5 to 4.
	slices := roadgeom.CrossSection(road, -1.75, -2, 3.5, 4)
	left, err := roadgeom.LeftEdgeOffsets(road, slices)
	if err != nil {
		panic(err)
	}
	right, err := roadgeom.RightEdgeOffsets(road, slices)
	if err != nil {
		panic(err)
	}
	fmt.Println(left)
	fmt.Println(right)

	// Output:
	// FractionalLengthData[0: 0, 1: 0]
	// FractionalLengthData[0: -3.5, 1: -4]
}
