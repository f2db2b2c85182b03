package components_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lsgraph/builder"
	"github.com/katalvlaran/lsgraph/components"
)

// BenchmarkStronglyConnected labels a sparse random digraph of N nodes with
// about 4 edges per node.
func BenchmarkStronglyConnected(b *testing.B) {
	const N = 20000
	g, err := builder.BuildGraph(N, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(N, 4.0/N))
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.StronglyConnected(g)
	}
}

func BenchmarkWeaklyConnected(b *testing.B) {
	const N = 20000
	g, err := builder.BuildGraph(N, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(N, 2.0/N))
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.WeaklyConnected(g)
	}
}
