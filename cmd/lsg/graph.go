package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"

	"github.com/katalvlaran/lsgraph/core"
	"github.com/katalvlaran/lsgraph/packed"
)

// openGraph maps and verifies a graph file, read-only unless writable is
// set.
func openGraph(ctx context.Context, path string, writable bool) (*packed.Graph, error) {
	opts := []packed.Option{packed.WithLogger(ctxzap.Extract(ctx)), packed.WithVerify()}
	if writable {
		opts = append(opts, packed.WithExclusiveLock())
	} else {
		opts = append(opts, packed.WithReadOnly())
	}

	return packed.Open(path, opts...)
}

// resolveNode accepts a node label, or a decimal node id when no label
// matches.
func resolveNode(g core.Graph, arg string) (int, error) {
	if g.HasLabels() {
		if n := g.NodeWithLabel(arg); n != core.NotFound {
			return n, nil
		}
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("unknown node %q", arg)
	}
	if err = core.CheckNode(g.NumNodes(), n); err != nil {
		return 0, fmt.Errorf("node %q: %w", arg, err)
	}

	return n, nil
}

// nodeName returns the label of i, or its id on unlabeled graphs.
func nodeName(g core.Graph, i int) string {
	if g.HasLabels() {
		if s, err := g.Label(i); err == nil {
			return s
		}
	}

	return strconv.Itoa(i)
}
