package importance_test

import (
	"fmt"

	"github.com/katalvlaran/sixdegrees/importance"
	"github.com/katalvlaran/sixdegrees/separation"
)

// ExampleSelect reports the important node of each hop count.
func ExampleSelect() {
	table := separation.Table{
		{{3, 1.5}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 0}, {2, 2.5}, {1, 3}, {2, 4}},
		{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	}

	for k, p := range importance.Select(table) {
		if p == nil {
			fmt.Printf("degree %d: none\n", k+1)
			continue
		}
		fmt.Printf("degree %d: vertex %d %v\n", p.Degree, p.Vertex, p.Reach)
	}
	// Output:
	// degree 1: vertex 0 [{3 1.5} {0 0} {0 0}]
	// degree 2: vertex 1 [{1 1} {2 2.5} {0 0}]
	// degree 3: none
}
