// Package chain defines the layered transition store used by constrained
// Markov models: one weighted word→word transition matrix per sentence
// position ("layer"), plus the START/END sentinel markers.
//
// A Store is a plain ordered slice of matrices. Before normalization the
// weights are raw counts; after normalization every row is a probability
// distribution summing to 1. The store itself enforces no invariants —
// the nhmm training pipeline does — it only provides the representation
// and the small set of mutations the pipeline needs (add weight, delete
// edge, delete row, clone, sizes).
//
// This file declares Row, Matrix, Store, the sentinel markers, and
// sentinel errors.
package chain

import "errors"

// Sentinel markers for sentence boundaries. They are reserved: neither may
// appear as a vocabulary word.
const (
	// Start marks the synthetic source preceding the first word.
	Start = "<<START>>"

	// End marks the synthetic target following the last word.
	End = "<<END>>"
)

// Sentinel errors for store operations.
var (
	// ErrBadLayerCount indicates a non-positive layer count for NewStore.
	ErrBadLayerCount = errors.New("chain: layer count must be positive")

	// ErrLayerOutOfRange indicates a layer index outside [0, len).
	ErrLayerOutOfRange = errors.New("chain: layer index out of range")
)

// Row maps a target word to the weight of the edge reaching it.
// Raw counts during training, probabilities after normalization.
type Row map[string]float64

// Matrix maps a source word to its outgoing Row at one layer.
// Absent entries implicitly mean zero weight.
type Matrix map[string]Row

// Store is an ordered sequence of transition matrices, one per layer
// transition: Store[i] maps the word at position i to the word at
// position i+1. The training pipeline prepends a START layer, after
// which Store[0]'s only source is Start.
type Store []Matrix
