// Package markov implements the base (unconstrained) Markov model that
// the constrained engine consumes: word→successor transition statistics
// learned from training sequences, plus global word frequencies usable
// as priors.
//
// An order-m model groups m consecutive words into a single node (joined
// by a single space), so its transitions look m words ahead. Training
// sequences whose length is not a multiple of the order are rejected.
//
// The model is read-only after Train and safe for concurrent readers.
package markov
