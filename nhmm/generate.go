package nhmm

import (
	"fmt"
	"math/rand"

	"github.com/verseforge/conmarkov/chain"
	"github.com/verseforge/conmarkov/markov"
)

// Options configures batch generation and debug output.
type Options struct {
	// SequenceCount is the number of sentences GenerateSentences
	// produces. Must be positive.
	SequenceCount int

	// Seed selects the deterministic random stream; 0 means the fixed
	// default seed.
	Seed int64

	// Debug enables the expensive diagnostics (solution count) in
	// WriteDebugInfo.
	Debug bool
}

// DefaultOptions returns Options generating a single sentence from the
// default deterministic stream.
func DefaultOptions() Options {
	return Options{SequenceCount: 1}
}

// GenerateSentence performs one weighted walk through the layered
// structure: starting at (layer 0, Start), it draws one node per layer
// from the current row's distribution until End or the final layer, and
// returns the visited words with sentinels excluded — always exactly
// SentenceLength words on a trained model.
//
// A nil rng selects the fixed default stream. Two walks with equal
// generator state produce identical sentences; rows are iterated in
// sorted order so cumulative selection is reproducible.
//
// Returns ErrNotTrained before Train, and ErrMalformedRow if a row is
// empty mid-walk — a model-construction defect that pruning makes
// unreachable, surfaced rather than silently truncating the sentence.
func (m *Model) GenerateSentence(rng *rand.Rand) ([]string, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}
	rng = orDefault(rng)

	nodes := make([]string, 0, m.layers)
	cur := chain.Start
	for i := range m.store {
		row := m.store[i][cur]
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: layer %d node %q has no successor", ErrMalformedRow, i, cur)
		}
		next := draw(row, rng)
		if next == chain.End {
			break
		}
		nodes = append(nodes, next)
		cur = next
	}
	return markov.Words(nodes), nil
}

// GenerateSentences performs opts.SequenceCount independent walks off a
// single seeded stream and returns them in generation order.
// Returns ErrBadOptions for a non-positive count.
func (m *Model) GenerateSentences(opts Options) ([][]string, error) {
	if opts.SequenceCount <= 0 {
		return nil, fmt.Errorf("%w: SequenceCount %d", ErrBadOptions, opts.SequenceCount)
	}
	rng := rngFromSeed(opts.Seed)
	sentences := make([][]string, 0, opts.SequenceCount)
	for n := 0; n < opts.SequenceCount; n++ {
		words, err := m.GenerateSentence(rng)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, words)
	}
	return sentences, nil
}

// draw selects one target from a normalized row: a uniform value in
// [0,1) against the running cumulative sum, walking targets in sorted
// order. The final target absorbs any floating-point shortfall.
func draw(row chain.Row, rng *rand.Rand) string {
	r := rng.Float64()
	var cum float64
	keys := row.SortedKeys()
	for _, to := range keys {
		cum += row[to]
		if r < cum {
			return to
		}
	}
	return keys[len(keys)-1]
}
