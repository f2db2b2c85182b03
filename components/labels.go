package components

// Count returns the number of components in a labeling, i.e. its largest id.
func Count(comp []int) int {
	k := 0
	for _, c := range comp {
		if c > k {
			k = c
		}
	}

	return k
}

// Sizes returns the node count of every component indexed by id. Index 0
// counts unassigned nodes.
func Sizes(comp []int) []int {
	sizes := make([]int, Count(comp)+1)
	for _, c := range comp {
		if c >= 0 {
			sizes[c]++
		}
	}

	return sizes
}

// Largest returns the id and size of the biggest component, preferring the
// smaller id on ties. It returns (0, 0) when nothing is labeled.
func Largest(comp []int) (id, size int) {
	for c, s := range Sizes(comp) {
		if c > 0 && s > size {
			id, size = c, s
		}
	}

	return id, size
}

// Mask flags the nodes of component id, ready for mutable.Restrict or
// format.StoreSubgraph.
func Mask(comp []int, id int) []bool {
	keep := make([]bool, len(comp))
	for i, c := range comp {
		keep[i] = c == id
	}

	return keep
}
