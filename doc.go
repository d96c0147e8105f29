// Package conmarkov builds and samples length-constrained Markov chains
// over word sequences — generate sentences, lyrics or verse that follow
// the statistics of a training corpus while satisfying a structural
// constraint (fixed length, required words, forbidden pairs, meter).
//
// 🚀 What is conmarkov?
//
//	A constrained (non-homogeneous) Markov model: one transition matrix
//	per sentence position instead of a single global one. A declarative
//	constraint deletes invalid transitions, an arc-consistency pass
//	removes "trap" states with no valid continuation, and the remaining
//	mass is renormalized so sampling stays faithful to the corpus.
//
// ✨ Key features:
//   - pluggable per-position constraints (lexical, pattern, forbidden pairs)
//   - dead-node pruning to a fixed point — every sample completes
//   - deterministic seeded sampling, scoring, and exhaustive solution counts
//   - pure in-memory library; CLI with corpus loading under cmd/conmarkov
//
// Packages:
//
//	markov/     — base (unconstrained) order-m Markov model from a corpus
//	chain/      — layered transition store (one matrix per position)
//	constraint/ — constraint policies applied to the layered store
//	nhmm/       — the constrained engine: train, generate, score, count
//
// Quick sketch:
//
//	base := markov.New(1)
//	_ = base.Train(sequences)
//	m := nhmm.New()
//	_ = m.Train(base, constraint.MustLexical("*", "love", "*", "*"))
//	words, _ := m.GenerateSentence(nil) // 4 words, "love" second
//
// See nhmm's package docs for the full pipeline and guarantees.
package conmarkov
