package cloud_test

import (
	"fmt"

	"github.com/matzehuels/tagcloud/pkg/cloud"
)

func Example() {
	l := cloud.New(cloud.Point{X: 0, Y: 0})
	for range 4 {
		r, err := l.Place(cloud.Size{Width: 10, Height: 10})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(r)
	}
	fmt.Println("bounds:", l.Bounds())
	// Output:
	// <-5, -5, 10, 10>
	// <5, 0, 10, 10>
	// <-10, 5, 10, 10>
	// <-16, -10, 10, 10>
	// bounds: <-16, -10, 31, 25>
}

func ExampleNewGridIndex() {
	l := cloud.New(cloud.Point{X: 400, Y: 300},
		cloud.WithIndex(cloud.GridIndexFactory(64)),
		cloud.WithMaxDistance(1024))
	r, _ := l.Place(cloud.Size{Width: 120, Height: 40})
	fmt.Println(r, r.Center())
	// Output:
	// <340, 280, 120, 40> <400, 300>
}
