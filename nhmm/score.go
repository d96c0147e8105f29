package nhmm

import (
	"github.com/verseforge/conmarkov/chain"
	"github.com/verseforge/conmarkov/markov"
)

// TransitionProbability reports the finalized probability of the edge
// from→to at the given layer, or 0 when the edge is absent. Layer 0 is
// the Start layer; sentinels are addressed by chain.Start / chain.End.
func (m *Model) TransitionProbability(layer int, from, to string) float64 {
	if !m.trained || layer < 0 || layer >= len(m.store) {
		return 0
	}
	return m.store[layer][from][to]
}

// SentenceProbability computes the joint probability of the candidate
// sentence under the finalized matrices: the product of the edge
// weights along Start → words → End.
//
// Scoring is total. Any sentence the model cannot produce — wrong
// length, unknown word, or a transition absent from its layer — scores
// exactly 0.0; this is not an error. Callers needing log-probabilities
// take the logarithm themselves.
func (m *Model) SentenceProbability(words []string) float64 {
	if !m.trained {
		return 0
	}
	nodes, err := markov.Nodes(words, m.order)
	if err != nil || len(nodes) != m.layers {
		return 0
	}

	prob := 1.0
	cur := chain.Start
	for i := range m.store {
		to := chain.End
		if i < len(nodes) {
			to = nodes[i]
		}
		w, ok := m.store[i][cur][to]
		if !ok {
			return 0
		}
		prob *= w
		cur = to
	}
	return prob
}
