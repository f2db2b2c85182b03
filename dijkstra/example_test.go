package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lsgraph/dijkstra"
	"github.com/katalvlaran/lsgraph/mutable"
)

// ExampleDijkstra prices a delivery route where the direct road is dearer
// than a detour.
func ExampleDijkstra() {
	g, _ := mutable.ReadEdgeList(strings.NewReader("3\nwith values\n0 1,1 2,5\n1 2,2\n"))

	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(2)
	fmt.Println(path, res.Dist[2])
	// Output:
	// [0 1 2] 3
}
