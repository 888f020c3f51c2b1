package frontier_test

import (
	"fmt"

	"github.com/justmytwospence/firsttracks/frontier"
	"github.com/justmytwospence/firsttracks/raster"
)

// ExampleObserver demonstrates tracking a small, fully-explored 3x3
// neighborhood and flushing the residual frontier once exploration stops.
func ExampleObserver() {
	o := frontier.NewObserver(
		raster.Georeference{PixelScaleX: 1, PixelScaleY: 1},
		frontier.WithBatchSize(1000),
		frontier.WithCallback(func(points []frontier.Point) {
			fmt.Println(len(points))
		}),
	)
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			o.Visit(raster.Pixel{X: x, Y: y})
		}
	}
	o.Flush()
	// Output:
	// 8
}
