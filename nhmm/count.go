package nhmm

import "github.com/verseforge/conmarkov/chain"

// countKey identifies a node at a layer for memoization. The number of
// completions from a given (layer, node) is path-independent, so it is
// computed once.
type countKey struct {
	layer int
	node  string
}

// TotalSolutionCount exhaustively counts the distinct sentences the
// pruned structure can produce: depth-first from (0, Start), a path
// counts when it reaches End. Counts are memoized per (layer, node),
// making the traversal linear in the number of edges rather than
// exponential in the number of paths.
//
// Diagnostic/analysis tool — keep it off generation hot paths.
// Returns 0 on an untrained model.
func (m *Model) TotalSolutionCount() int {
	if !m.trained {
		return 0
	}
	memo := make(map[countKey]int)
	return m.countFrom(0, chain.Start, memo)
}

// countFrom returns the number of complete paths from node at layer.
func (m *Model) countFrom(layer int, node string, memo map[countKey]int) int {
	if node == chain.End {
		return 1
	}
	if layer >= len(m.store) {
		return 0
	}
	key := countKey{layer: layer, node: node}
	if n, ok := memo[key]; ok {
		return n
	}
	var n int
	for to := range m.store[layer][node] {
		n += m.countFrom(layer+1, to, memo)
	}
	memo[key] = n
	return n
}
