package builder_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lsgraph/builder"
	"github.com/katalvlaran/lsgraph/core"
)

// ExampleBuildGraph builds a labeled directed 4-cycle and prints it in the
// text edge-list format.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4,
		[]builder.BuilderOption{builder.WithLabels(builder.ExcelLabels)},
		builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = core.WriteEdgeList(os.Stdout, g)
	fmt.Println(g.NodeWithLabel("C"))
	// Output:
	// 4
	// with values
	// 0 1,1
	// 1 2,1
	// 2 3,1
	// 3 0,1
	// 2
}
