package nhmm

import (
	"errors"

	"github.com/verseforge/conmarkov/chain"
	"github.com/verseforge/conmarkov/constraint"
)

// Sentinel errors for constrained-model construction and use.
var (
	// ErrNilModel indicates a nil base model was passed to Train.
	ErrNilModel = errors.New("nhmm: base model is nil")

	// ErrNilConstraint indicates a nil constraint was passed to Train.
	ErrNilConstraint = errors.New("nhmm: constraint is nil")

	// ErrNoTrainingData indicates no training sequence matches the
	// constraint length.
	ErrNoTrainingData = errors.New("nhmm: no training sequences of the constrained length")

	// ErrInfeasible indicates pruning removed every option at layer 0:
	// the constraint admits no sentence under the trained statistics.
	ErrInfeasible = errors.New("nhmm: constraint is infeasible")

	// ErrMalformedRow indicates an empty outgoing distribution survived
	// to normalization or generation — an internal invariant violation,
	// never expected on a model Train returned successfully.
	ErrMalformedRow = errors.New("nhmm: empty transition row")

	// ErrNotTrained indicates the model has not been trained yet.
	ErrNotTrained = errors.New("nhmm: model is not trained")

	// ErrBadOptions indicates invalid generation options.
	ErrBadOptions = errors.New("nhmm: invalid options")
)

// Model is a trained length-constrained Markov model.
//
// Zero value is usable: construct with New, call Train once, then share
// freely across goroutines for generation, scoring, and counting — the
// layered store is never mutated after Train returns.
type Model struct {
	// order is the Markov order inherited from the base model.
	order int

	// layers is the sentence length in nodes (order-sized word groups).
	layers int

	// store holds layers+1 matrices after Start injection: store[0]'s
	// only source is chain.Start; store[layers] targets chain.End.
	store chain.Store

	// cons is the constraint the model was trained under.
	cons constraint.Constraint

	// seqs holds the training sequences (node form) that matched the
	// constrained length and contributed counts.
	seqs [][]string

	// removedConstraint and removedArc record, per word layer, the
	// nodes deleted by constraint application and by arc-consistency.
	// Diagnostics only; the sampler never consults them.
	removedConstraint [][]string
	removedArc        [][]string

	trained bool
}

// New returns an untrained constrained model.
func New() *Model {
	return &Model{}
}

// Order reports the Markov order (lookahead distance) of the model.
// Zero before training.
func (m *Model) Order() int { return m.order }

// SentenceLength reports the length, in words, of every sentence the
// model generates. Zero before training.
func (m *Model) SentenceLength() int { return m.layers * m.order }

// Constraint returns the constraint the model was trained under, or nil
// before training.
func (m *Model) Constraint() constraint.Constraint { return m.cons }
