// Package nhmm implements a non-homogeneous (length-constrained) Markov
// model: a layered probabilistic structure with one transition matrix
// per sentence position, from which complete constraint-satisfying word
// sequences can be sampled, scored, and enumerated.
//
// 🚀 How it works
//
//	Training sequences (via a base markov.Model) feed raw per-layer
//	transition counts. The constraint deletes entries that violate it,
//	then an arc-consistency pass removes every "trap" node that cannot
//	reach the End marker — naive constraint deletion can leave states
//	whose successors were all deleted at a later layer, and sampling
//	must never dead-end. A synthetic Start layer is prepended (weighted
//	by word priors) and each surviving row is normalized to a proper
//	distribution, preserving the relative weights within the row.
//
// Pipeline (one-shot passes inside Train, in order):
//
//	count → apply constraint → prune to fixed point → inject Start → normalize
//
// Guarantees after a successful Train:
//   - every row of every matrix sums to 1 within floating-point epsilon;
//   - every surviving node has at least one path of surviving edges to End,
//     so GenerateSentence always completes with exactly SentenceLength words;
//   - the structure is immutable — safe for concurrent readers.
//
// Errors:
//
//	ErrInfeasible      — the constraint admits no sentence (layer 0 emptied).
//	ErrNoTrainingData  — no training sequence matches the constraint length.
//	ErrMalformedRow    — internal invariant violation (empty surviving row).
//	ErrNotTrained      — operation on an untrained model.
//
// ⚙️ Usage:
//
//	base, _ := markov.New(1)
//	_ = base.Train(corpus)
//
//	m := nhmm.New()
//	if err := m.Train(base, constraint.MustLexical("*", "*", "night")); err != nil {
//		// constraint infeasible, or no usable training data
//	}
//	words, _ := m.GenerateSentence(nil)        // deterministic default seed
//	p := m.SentenceProbability(words)          // > 0 for any generated sentence
//	n := m.TotalSolutionCount()                // distinct admissible sentences
//
// Determinism: all sampling takes an explicit *rand.Rand; nil means a
// fixed default seed. Equal seeds produce identical output. A *rand.Rand
// is not goroutine-safe — use one generator per goroutine for parallel
// generation.
package nhmm
