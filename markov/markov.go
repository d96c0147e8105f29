package markov

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verseforge/conmarkov/chain"
)

// Sentinel errors for base-model construction.
var (
	// ErrBadOrder indicates a non-positive Markov order.
	ErrBadOrder = errors.New("markov: order must be positive")

	// ErrNoSequences indicates Train was given no usable sequences.
	ErrNoSequences = errors.New("markov: no training sequences")

	// ErrRaggedSequence indicates a sequence whose word count is not a
	// multiple of the model order.
	ErrRaggedSequence = errors.New("markov: sequence length not a multiple of order")

	// ErrReservedWord indicates a training sequence contains a sentinel.
	ErrReservedWord = errors.New("markov: sequence contains a reserved marker")
)

// Model is a trained order-m Markov model over word nodes.
// Zero value is unusable; construct with New and call Train once.
type Model struct {
	order int

	// probs maps node → (successor node → probability). Rows sum to 1.
	probs chain.Matrix

	// freqs counts node occurrences across all training sequences.
	freqs map[string]float64

	// seqs holds the training sequences converted to node form.
	seqs [][]string
}

// New returns an untrained model of the given order.
// Returns ErrBadOrder when order <= 0.
func New(order int) (*Model, error) {
	if order <= 0 {
		return nil, ErrBadOrder
	}
	return &Model{
		order: order,
		probs: make(chain.Matrix),
		freqs: make(map[string]float64),
	}, nil
}

// Train learns transition statistics from word sequences. Each sequence
// is chunked into order-sized nodes; adjacent node pairs increment the
// transition counts and every node increments its global frequency.
// Counts are normalized to per-row probabilities before returning.
//
// Returns ErrNoSequences when sequences is empty, ErrRaggedSequence when
// a sequence's length is not a positive multiple of the order, and
// ErrReservedWord when a sequence contains the Start or End marker.
func (m *Model) Train(sequences [][]string) error {
	if len(sequences) == 0 {
		return ErrNoSequences
	}
	for si, words := range sequences {
		nodes, err := Nodes(words, m.order)
		if err != nil {
			return fmt.Errorf("%w: sequence %d", err, si)
		}
		m.seqs = append(m.seqs, nodes)
		for i, node := range nodes {
			m.freqs[node]++
			if i+1 < len(nodes) {
				m.increment(node, nodes[i+1])
			}
		}
	}
	for _, row := range m.probs {
		sum := row.Sum()
		for to := range row {
			row[to] /= sum
		}
	}
	return nil
}

// increment bumps the raw transition count from→to by one.
func (m *Model) increment(from, to string) {
	row, ok := m.probs[from]
	if !ok {
		row = make(chain.Row)
		m.probs[from] = row
	}
	row[to]++
}

// Order reports the Markov order (lookahead distance) of the model.
func (m *Model) Order() int { return m.order }

// Probability reports the trained transition probability from→to,
// or 0 when the transition was never observed.
func (m *Model) Probability(from, to string) float64 {
	return m.probs[from][to]
}

// Successors returns a copy of the outgoing distribution of from.
// Returns nil when from was never observed as a source.
func (m *Model) Successors(from string) chain.Row {
	row, ok := m.probs[from]
	if !ok {
		return nil
	}
	out := make(chain.Row, len(row))
	for to, p := range row {
		out[to] = p
	}
	return out
}

// Frequency reports how many times the node occurred across training.
func (m *Model) Frequency(node string) float64 { return m.freqs[node] }

// Sequences returns the training sequences in node form. The returned
// slices are shared; callers must not mutate them.
func (m *Model) Sequences() [][]string { return m.seqs }

// Nodes chunks a word sequence into order-sized nodes, joining grouped
// words with a single space. Order 1 returns the words unchanged.
func Nodes(words []string, order int) ([]string, error) {
	if order <= 0 {
		return nil, ErrBadOrder
	}
	if len(words) == 0 || len(words)%order != 0 {
		return nil, ErrRaggedSequence
	}
	for _, w := range words {
		if w == chain.Start || w == chain.End {
			return nil, ErrReservedWord
		}
	}
	if order == 1 {
		return append([]string(nil), words...), nil
	}
	nodes := make([]string, 0, len(words)/order)
	for i := 0; i < len(words); i += order {
		nodes = append(nodes, strings.Join(words[i:i+order], " "))
	}
	return nodes, nil
}

// Words flattens a node sequence back into individual words, splitting
// multi-word nodes on whitespace.
func Words(nodes []string) []string {
	words := make([]string, 0, len(nodes))
	for _, node := range nodes {
		words = append(words, strings.Fields(node)...)
	}
	return words
}
