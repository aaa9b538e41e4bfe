package hexagon_test

import (
	"fmt"

	"github.com/matzehuels/hexgrid/pkg/hexagon"
)

func ExampleNew() {
	s := hexagon.NewSpec(20)
	h := hexagon.New(hexagon.Point{X: 50, Y: 50}, s)

	fmt.Printf("edge=%.3f width=%.3f\n", s.Edge, s.Width)
	for _, v := range h.Vertices {
		fmt.Printf("(%.2f, %.2f)\n", v.X, v.Y)
	}
	// Output:
	// edge=11.547 width=23.094
	// (44.23, 40.00)
	// (55.77, 40.00)
	// (61.55, 50.00)
	// (55.77, 60.00)
	// (44.23, 60.00)
	// (38.45, 50.00)
}
