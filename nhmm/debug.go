package nhmm

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/verseforge/conmarkov/chain"
)

// Matrices returns a deep copy of the finalized layered store, for
// inspection and analysis. Mutating the copy never affects the model.
// Nil before training.
func (m *Model) Matrices() chain.Store {
	if !m.trained {
		return nil
	}
	return m.store.Clone()
}

// MatrixSizes reports the number of source rows in each finalized
// matrix, in layer order. Nil before training.
func (m *Model) MatrixSizes() []int {
	if !m.trained {
		return nil
	}
	return m.store.Sizes()
}

// TrainingSequences returns the training sequences (in node form) that
// matched the constrained length and contributed counts. The returned
// slices are shared; callers must not mutate them.
func (m *Model) TrainingSequences() [][]string { return m.seqs }

// RemovedByConstraint returns the nodes deleted at the given word layer
// by constraint application, in deterministic (sorted-walk) order.
// Nil for layers out of range.
func (m *Model) RemovedByConstraint(layer int) []string {
	return copyLayer(m.removedConstraint, layer)
}

// RemovedByArcConsistency returns the nodes deleted at the given word
// layer by arc-consistency pruning. Nil for layers out of range.
func (m *Model) RemovedByArcConsistency(layer int) []string {
	return copyLayer(m.removedArc, layer)
}

// SampleRemovedByConstraint draws one node uniformly from the layer's
// constraint-removal record, or "" when nothing was removed there.
// Useful for "why was my word rejected?" style diagnostics.
func (m *Model) SampleRemovedByConstraint(layer int, rng *rand.Rand) string {
	return sampleLayer(m.removedConstraint, layer, rng)
}

// SampleRemovedByArcConsistency draws one node uniformly from the
// layer's arc-consistency removal record, or "" when empty.
func (m *Model) SampleRemovedByArcConsistency(layer int, rng *rand.Rand) string {
	return sampleLayer(m.removedArc, layer, rng)
}

func copyLayer(records [][]string, layer int) []string {
	if layer < 0 || layer >= len(records) || len(records[layer]) == 0 {
		return nil
	}
	return append([]string(nil), records[layer]...)
}

func sampleLayer(records [][]string, layer int, rng *rand.Rand) string {
	if layer < 0 || layer >= len(records) || len(records[layer]) == 0 {
		return ""
	}
	return records[layer][orDefault(rng).Intn(len(records[layer]))]
}

// WriteTransitionProbs dumps every finalized matrix row to w, layers in
// order and rows/edges sorted, one edge per line:
//
//	layer 0: <<START>> -> the (1.000000)
//
// Returns ErrNotTrained before training.
func (m *Model) WriteTransitionProbs(w io.Writer) error {
	if !m.trained {
		return ErrNotTrained
	}
	for i, matrix := range m.store {
		for _, from := range matrix.SortedKeys() {
			row := matrix[from]
			for _, to := range row.SortedKeys() {
				if _, err := fmt.Fprintf(w, "layer %d: %s -> %s (%f)\n", i, from, to, row[to]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WriteDebugInfo writes a summary of the trained model to w: Markov
// order, sentence length, training sequence count, matrix sizes, and
// per-layer removal counts. With opts.Debug set it also runs the
// exhaustive solution count. Returns ErrNotTrained before training.
func (m *Model) WriteDebugInfo(w io.Writer, opts Options) error {
	if !m.trained {
		return ErrNotTrained
	}
	var removedCons, removedArc int
	for i := 0; i < m.layers; i++ {
		removedCons += len(m.removedConstraint[i])
		removedArc += len(m.removedArc[i])
	}
	_, err := fmt.Fprintf(w,
		"markov order:        %d\n"+
			"sentence length:     %d\n"+
			"training sequences:  %d\n"+
			"matrix sizes:        %v\n"+
			"removed, constraint: %d\n"+
			"removed, arc:        %d\n",
		m.order, m.SentenceLength(), len(m.seqs), m.store.Sizes(), removedCons, removedArc)
	if err != nil {
		return err
	}
	if opts.Debug {
		if _, err = fmt.Fprintf(w, "solution count:      %d\n", m.TotalSolutionCount()); err != nil {
			return err
		}
	}
	return nil
}
