package neighborhood

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/sparse"
)

// Score is a node with its similarity to a query node.
type Score struct {
	Node  int
	Value float64
}

// worseFirst orders scores so that the heap top is the weakest one: lower
// value first, then higher node id.
func worseFirst(a, b interface{}) int {
	x, y := a.(Score), b.(Score)
	switch {
	case x.Value < y.Value:
		return -1
	case x.Value > y.Value:
		return 1
	case x.Node > y.Node:
		return -1
	case x.Node < y.Node:
		return 1
	}

	return 0
}

// Related ranks the candidates of the FB and BF spheres of node, node
// itself excluded, by TF-IDF cosine and returns the k best with a positive
// score, best first, ties broken by lower id. k <= 0 returns them all.
// Candidates come from both spheres: nodes sharing a predecessor with node
// (FB) and nodes sharing a successor with it (BF). Restricting to FB ranks
// co-cited nodes only.
// Complexity: O(C·(d log d) + C log k) for C candidates of degree d.
func Related(g core.Graph, node, k int) ([]Score, error) {
	fb, err := DirectedSphere(g, node, "FB")
	if err != nil {
		return nil, fmt.Errorf("Related: %w", err)
	}
	bf, err := DirectedSphere(g, node, "BF")
	if err != nil {
		return nil, fmt.Errorf("Related: %w", err)
	}
	query, err := TFIDF(g, node)
	if err != nil {
		return nil, fmt.Errorf("Related: %w", err)
	}

	candidates := sparse.Union(fb, bf)
	heap := binaryheap.NewWith(worseFirst)
	for p := 0; p < candidates.Len(); p++ {
		j := candidates.Neighbor(p)
		if j == node {
			continue
		}
		row, err := TFIDF(g, j)
		if err != nil {
			return nil, fmt.Errorf("Related: %w", err)
		}
		s := Score{Node: j, Value: sparse.Cos2(query, row)}
		if s.Value <= 0 {
			continue
		}
		heap.Push(s)
		if k > 0 && heap.Size() > k {
			heap.Pop()
		}
	}

	out := make([]Score, heap.Size())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := heap.Pop()
		out[i] = v.(Score)
	}

	return out, nil
}
