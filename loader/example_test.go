package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sixdegrees/loader"
)

// ExampleParse reads a two-edge file; the three-token header is skipped.
func ExampleParse() {
	in := `from to length
e0 0 1 3.5
e1 1 4 1`

	g, err := loader.Parse(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.N)
	fmt.Println("half-edges:", len(g.Edges))
	// Output:
	// vertices: 5
	// half-edges: 4
}
