package nhmm

import (
	"fmt"

	"github.com/verseforge/conmarkov/chain"
	"github.com/verseforge/conmarkov/constraint"
	"github.com/verseforge/conmarkov/markov"
)

// Train builds and finalizes the constrained model from a trained base
// model and a constraint. The pipeline runs one-shot passes in order:
// frequency counting, constraint application, arc-consistency pruning,
// Start injection, normalization. After a nil error the model is
// immutable and ready for generation, scoring, and counting.
//
// Returns ErrNilModel / ErrNilConstraint for missing inputs,
// ErrNoTrainingData when no training sequence has the constrained
// length, and ErrInfeasible when pruning leaves no valid first node.
func (m *Model) Train(base *markov.Model, c constraint.Constraint) error {
	if base == nil {
		return ErrNilModel
	}
	if c == nil {
		return ErrNilConstraint
	}
	if c.Length() <= 0 {
		return fmt.Errorf("%w: length %d", constraint.ErrBadLength, c.Length())
	}

	m.order = base.Order()
	m.layers = c.Length()
	m.cons = c
	m.seqs = nil
	m.removedConstraint = make([][]string, m.layers)
	m.removedArc = make([][]string, m.layers)
	m.trained = false

	store, err := m.buildFrequencies(base)
	if err != nil {
		return err
	}
	m.applyConstraint(store)
	if err = m.pruneDeadNodes(store); err != nil {
		return err
	}
	m.store = injectStart(store, base)
	if err = normalize(m.store); err != nil {
		return err
	}
	m.trained = true
	return nil
}

// buildFrequencies converts the base model's training sequences into
// raw per-layer transition counts. Only sequences of exactly the
// constrained node length contribute; each is retained for
// introspection, appended with End, and its adjacent pairs counted.
func (m *Model) buildFrequencies(base *markov.Model) (chain.Store, error) {
	store, err := chain.NewStore(m.layers)
	if err != nil {
		return nil, err
	}
	for _, nodes := range base.Sequences() {
		if len(nodes) != m.layers {
			continue
		}
		m.seqs = append(m.seqs, nodes)
		for i, from := range nodes {
			to := chain.End
			if i+1 < len(nodes) {
				to = nodes[i+1]
			}
			if err = store.Add(i, from, to, 1); err != nil {
				return nil, err
			}
		}
	}
	if len(m.seqs) == 0 {
		return nil, ErrNoTrainingData
	}
	return store, nil
}

// applyConstraint deletes every entry violating the constraint and
// records the deleted nodes per layer. Sentinels are always allowed;
// the constraint only judges vocabulary nodes. Deterministic: matrices
// are walked in sorted order so removal records are stable.
func (m *Model) applyConstraint(store chain.Store) {
	for i, matrix := range store {
		for _, from := range matrix.SortedKeys() {
			if !m.cons.AllowNode(i, from) {
				m.removedConstraint[i] = append(m.removedConstraint[i], from)
				store.DeleteRow(i, from)
				continue
			}
			row := matrix[from]
			for _, to := range row.SortedKeys() {
				if to != chain.End && !m.cons.AllowNode(i+1, to) {
					store.DeleteEdge(i, from, to)
					continue
				}
				if !m.cons.AllowEdge(i, from, to) {
					store.DeleteEdge(i, from, to)
				}
			}
		}
	}
}

// pruneDeadNodes enforces arc-consistency by backward fixed-point
// propagation: a node with no surviving outgoing edge is dead, its row
// is deleted, and edges targeting it from the previous layer are
// removed — which can cascade further back. Sweeps run last layer to
// first, repeated until a full sweep removes nothing. Re-running on an
// already-pruned store is a no-op.
//
// Returns ErrInfeasible when layer 0 ends up empty: there is no valid
// first node, so the constraint admits no sentence.
func (m *Model) pruneDeadNodes(store chain.Store) error {
	last := len(store) - 1
	for changed := true; changed; {
		changed = false
		for i := last; i >= 0; i-- {
			for _, from := range store[i].SortedKeys() {
				row := store[i][from]
				if i < last {
					// drop edges whose target has no surviving row ahead
					for _, to := range row.SortedKeys() {
						if len(store[i+1][to]) == 0 {
							store.DeleteEdge(i, from, to)
						}
					}
				}
				if len(row) == 0 {
					m.removedArc[i] = append(m.removedArc[i], from)
					store.DeleteRow(i, from)
					changed = true
				}
			}
		}
	}
	if len(store[0]) == 0 {
		return fmt.Errorf("%w: no valid node at layer 0", ErrInfeasible)
	}
	return nil
}

// injectStart prepends the synthetic Start layer: Start transitions to
// every surviving first-layer node, weighted by that node's global
// frequency in the training corpus. Runs after pruning (so Start never
// reaches a dead node) and before normalization (so the Start row gets
// a proper distribution too).
func injectStart(store chain.Store, base *markov.Model) chain.Store {
	startRow := make(chain.Row, len(store[0]))
	for from := range store[0] {
		startRow[from] = base.Frequency(from)
	}
	startMatrix := chain.Matrix{chain.Start: startRow}
	return append(chain.Store{startMatrix}, store...)
}

// normalize rescales every row to sum to 1, preserving the relative
// weights (and therefore the ordering) of the edges within each row.
// Rows with a single edge collapse to probability 1. A surviving empty
// row means the pruner failed its contract: ErrMalformedRow.
func normalize(store chain.Store) error {
	for i, matrix := range store {
		for from, row := range matrix {
			sum := row.Sum()
			if sum == 0 {
				return fmt.Errorf("%w: layer %d node %q", ErrMalformedRow, i, from)
			}
			for to := range row {
				row[to] /= sum
			}
		}
	}
	return nil
}
