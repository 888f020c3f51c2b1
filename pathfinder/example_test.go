package pathfinder_test

import (
	"fmt"

	"github.com/justmytwospence/firsttracks/fixtures"
	"github.com/justmytwospence/firsttracks/pathfinder"
	"github.com/justmytwospence/firsttracks/raster"
	"github.com/justmytwospence/firsttracks/sobel"
)

// ExampleFindPath demonstrates finding a path across a flat 10x10 plane.
func ExampleFindPath() {
	e, err := fixtures.Plane(10, 10, 100)
	if err != nil {
		panic(err)
	}
	r := sobel.Analyze(e)

	path, _, err := pathfinder.FindPath(r, raster.Pixel{X: 1, Y: 1}, raster.Pixel{X: 8, Y: 8})
	if err != nil {
		panic(err)
	}

	fmt.Println(len(path.Points))
	// Output:
	// 8
}
