package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Header lines of the text edge-list format.
const (
	WithValuesLine = "with values"
	NoValuesLine   = "no values"
)

// WriteEdgeList dumps g in the text edge-list format:
//
//	<node count>
//	with values | no values
//	<i> <j>[,<v>] <j>[,<v>] ...
//
// One line is written per node, edges or not. Values use the shortest
// representation that parses back to the same float64.
// Complexity: O(N + E).
func WriteEdgeList(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	header := NoValuesLine
	if g.HasValues() {
		header = WithValuesLine
	}
	if _, err := fmt.Fprintf(bw, "%d\n%s\n", g.NumNodes(), header); err != nil {
		return fmt.Errorf("WriteEdgeList: %w", err)
	}

	var line []byte
	for i := 0; i < g.NumNodes(); i++ {
		row, err := g.Outgoing(i)
		if err != nil {
			return fmt.Errorf("WriteEdgeList: node %d: %w", i, err)
		}
		line = strconv.AppendInt(line[:0], int64(i), 10)
		for p := 0; p < row.Len(); p++ {
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(row.Neighbor(p)), 10)
			if g.HasValues() {
				line = append(line, ',')
				line = strconv.AppendFloat(line, row.Value(p), 'g', -1, 64)
			}
		}
		line = append(line, '\n')
		if _, err = bw.Write(line); err != nil {
			return fmt.Errorf("WriteEdgeList: %w", err)
		}
	}

	return bw.Flush()
}
