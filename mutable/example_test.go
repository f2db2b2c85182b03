package mutable_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/mutable"
)

// ExampleReadEdgeList parses a small weighted graph, edits it and dumps it back.
func ExampleReadEdgeList() {
	g, err := mutable.ReadEdgeList(strings.NewReader("3\nwith values\n0 1,2 2,0.5\n1 2,1\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = g.Set(2, 0, 3)
	_ = g.Remove(0, 1)

	fmt.Println("edges:", g.NumEdges(), "slots:", g.SlotCount())
	_ = core.WriteEdgeList(os.Stdout, g)
	// Output:
	// edges: 3 slots: 4
	// 3
	// with values
	// 0 2,0.5
	// 1 2,1
	// 2 0,3
}

// ExampleGraph_Transpose shows that both adjacency views share edge values.
func ExampleGraph_Transpose() {
	g, _ := mutable.New(2)
	_ = g.Set(0, 1, 5)
	_ = g.Transpose()

	v, _ := g.At(1, 0)
	fmt.Println(v)
	// Output:
	// 5
}
