package chain

import "sort"

// NewStore returns a Store with layers empty matrices, one per layer
// transition. Returns ErrBadLayerCount when layers <= 0.
func NewStore(layers int) (Store, error) {
	if layers <= 0 {
		return nil, ErrBadLayerCount
	}
	s := make(Store, layers)
	for i := range s {
		s[i] = make(Matrix)
	}
	return s, nil
}

// Add increments the weight of the edge from→to at the given layer by w,
// creating the row and the edge as needed.
// Returns ErrLayerOutOfRange for an invalid layer.
func (s Store) Add(layer int, from, to string, w float64) error {
	if layer < 0 || layer >= len(s) {
		return ErrLayerOutOfRange
	}
	row, ok := s[layer][from]
	if !ok {
		row = make(Row)
		s[layer][from] = row
	}
	row[to] += w
	return nil
}

// DeleteEdge removes the edge from→to at the given layer. Deleting the
// last edge of a row leaves the row present but empty; dead-row cleanup
// is the pruner's job. Out-of-range layers and absent edges are no-ops.
func (s Store) DeleteEdge(layer int, from, to string) {
	if layer < 0 || layer >= len(s) {
		return
	}
	if row, ok := s[layer][from]; ok {
		delete(row, to)
	}
}

// DeleteRow removes the whole outgoing row of from at the given layer.
// Out-of-range layers and absent rows are no-ops.
func (s Store) DeleteRow(layer int, from string) {
	if layer < 0 || layer >= len(s) {
		return
	}
	delete(s[layer], from)
}

// Sizes reports the number of source rows in each matrix, in layer order.
func (s Store) Sizes() []int {
	sizes := make([]int, len(s))
	for i, m := range s {
		sizes[i] = len(m)
	}
	return sizes
}

// Edges reports the total number of edges across all layers.
func (s Store) Edges() int {
	var n int
	for _, m := range s {
		for _, row := range m {
			n += len(row)
		}
	}
	return n
}

// Clone returns a deep copy of the store. Mutating the copy never
// affects the original.
func (s Store) Clone() Store {
	c := make(Store, len(s))
	for i, m := range s {
		cm := make(Matrix, len(m))
		for from, row := range m {
			cr := make(Row, len(row))
			for to, w := range row {
				cr[to] = w
			}
			cm[from] = cr
		}
		c[i] = cm
	}
	return c
}

// SortedKeys returns the row's target words in ascending lexical order.
// Map iteration order is randomized in Go; samplers and printers that
// need reproducible traversal iterate rows through this helper.
func (r Row) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedKeys returns the matrix's source words in ascending lexical order.
func (m Matrix) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sum returns the total weight of the row.
func (r Row) Sum() float64 {
	var total float64
	for _, w := range r {
		total += w
	}
	return total
}
