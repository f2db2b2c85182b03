package dfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/dfs"
	"github.com/katalvlaran/lsgraph/mutable"
)

func parse(t testing.TB, text string) *mutable.Graph {
	t.Helper()
	g, err := mutable.ReadEdgeList(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

// buildChain creates a directed chain 0→1→…→n-1.
func buildChain(t testing.TB, n int) *mutable.Graph {
	t.Helper()
	g, err := mutable.New(n)
	require.NoError(t, err)
	require.NoError(t, g.WithBatch(func(b *mutable.BatchInserter) error {
		for i := 0; i+1 < n; i++ {
			if err := b.Add(i, i+1, 1); err != nil {
				return err
			}
		}
		return nil
	}))
	return g
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildChain(t, 3)
	_, err = dfs.DFS(g, 3)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	_, err = dfs.DFS(g, 0, dfs.WithDirection(dfs.Direction(9)))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestDFS_FinishOrder(t *testing.T) {
	// 0→1, 0→2, 1→3, 2→3
	g := parse(t, "5\nno values\n0 1 2\n1 3\n2 3\n")

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, []int{-1, 0, 0, 1, -1}, res.Parent)
	assert.False(t, res.Visited[4])

	res, err = dfs.DFS(g, 3, dfs.WithDirection(dfs.Backward))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)

	res, err = dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 0, 4}, res.Order)
}

func TestDFS_Hooks(t *testing.T) {
	g := parse(t, "3\nno values\n0 1\n1 2\n")
	var pre, post []int
	_, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(n int) error { pre = append(pre, n); return nil }),
		dfs.WithOnExit(func(n int) error { post = append(post, n); return nil }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pre)
	assert.Equal(t, []int{2, 1, 0}, post)

	stop := errors.New("stop")
	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(n int) error {
		if n == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, res.Order)
}

func TestDFS_DeepChainDoesNotRecurse(t *testing.T) {
	const n = 200000
	g := buildChain(t, n)
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Order[0])
	assert.Equal(t, 0, res.Order[n-1])
}

func TestDFS_Canceled(t *testing.T) {
	g := buildChain(t, 5000)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReach(t *testing.T) {
	g := parse(t, "5\nno values\n0 1\n1 2\n3 2\n")
	visited := make([]bool, 5)
	var seen []int
	require.NoError(t, dfs.Reach(g, 2, dfs.Backward, visited, func(n int) { seen = append(seen, n) }))
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, seen)
	assert.False(t, visited[4])

	visited = make([]bool, 5)
	visited[1] = true
	seen = nil
	require.NoError(t, dfs.Reach(g, 0, dfs.Both, visited, func(n int) { seen = append(seen, n) }))
	assert.Equal(t, []int{0}, seen, "marked nodes are walls")

	assert.ErrorIs(t, dfs.Reach(g, 0, dfs.Forward, make([]bool, 2), nil), dfs.ErrVisitedSize)
	assert.ErrorIs(t, dfs.Reach(g, 7, dfs.Forward, make([]bool, 5), nil), core.ErrNodeOutOfRange)
}

func TestTopologicalSort(t *testing.T) {
	g := parse(t, "5\nno values\n0 2\n1 2\n2 3\n4 0\n")
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	pos := make(map[int]int, len(order))
	for k, v := range order {
		pos[v] = k
	}
	require.Len(t, order, 5)
	for _, e := range [][2]int{{0, 2}, {1, 2}, {2, 3}, {4, 0}} {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %v", e)
	}

	_, err = dfs.TopologicalSort(parse(t, "3\nno values\n0 1\n1 2\n2 0\n"))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	_, err = dfs.TopologicalSort(parse(t, "1\nno values\n0 0\n"))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}
