package nhmm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verseforge/conmarkov/constraint"
	"github.com/verseforge/conmarkov/nhmm"
)

// branchyCorpus gives the sampler real choices at every layer.
var branchyCorpus = [][]string{
	{"i", "love", "the", "night"},
	{"i", "love", "the", "day"},
	{"we", "love", "a", "night"},
	{"i", "hate", "the", "night"},
	{"we", "hate", "a", "day"},
}

// TestGenerateSentence_Deterministic verifies the reproducibility
// contract: equal generator state produces identical sentences.
func TestGenerateSentence_Deterministic(t *testing.T) {
	c, err := constraint.Anything(4)
	require.NoError(t, err)
	m := trainModel(t, branchyCorpus, c)

	first, err := m.GenerateSentence(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := m.GenerateSentence(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must reproduce the sentence")

	// nil rng selects a fixed default stream, also reproducible
	a, err := m.GenerateSentence(nil)
	require.NoError(t, err)
	b, err := m.GenerateSentence(nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerateSentence_LengthAndConstraint verifies every sample has
// the exact target length and satisfies the constraint.
func TestGenerateSentence_LengthAndConstraint(t *testing.T) {
	c, err := constraint.Lexical("*", "*", "*", "night")
	require.NoError(t, err)
	m := trainModel(t, branchyCorpus, c)

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		words, genErr := m.GenerateSentence(rng)
		require.NoError(t, genErr)
		require.Len(t, words, 4)
		assert.Equal(t, "night", words[3], "constrained position must hold in every sample")
		assert.Greater(t, m.SentenceProbability(words), 0.0,
			"a generated sentence must be scorable")
	}
}

// TestGenerateSentence_NotTrained verifies the untrained guard.
func TestGenerateSentence_NotTrained(t *testing.T) {
	_, err := nhmm.New().GenerateSentence(nil)
	assert.ErrorIs(t, err, nhmm.ErrNotTrained)
}

// TestGenerateSentences_BatchAndSeed verifies batch generation order
// and seed-level reproducibility across batches.
func TestGenerateSentences_BatchAndSeed(t *testing.T) {
	c, err := constraint.Anything(4)
	require.NoError(t, err)
	m := trainModel(t, branchyCorpus, c)

	opts := nhmm.Options{SequenceCount: 10, Seed: 99}
	first, err := m.GenerateSentences(opts)
	require.NoError(t, err)
	require.Len(t, first, 10)

	second, err := m.GenerateSentences(opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "equal seeds must reproduce the whole batch")

	other, err := m.GenerateSentences(nhmm.Options{SequenceCount: 10, Seed: 100})
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "different seeds should diverge on a branchy model")
}

// TestGenerateSentences_BadOptions verifies count validation.
func TestGenerateSentences_BadOptions(t *testing.T) {
	c, err := constraint.Anything(3)
	require.NoError(t, err)
	m := trainModel(t, toyCorpus, c)

	_, err = m.GenerateSentences(nhmm.Options{SequenceCount: 0})
	assert.ErrorIs(t, err, nhmm.ErrBadOptions)

	_, err = m.GenerateSentences(nhmm.Options{SequenceCount: -5})
	assert.ErrorIs(t, err, nhmm.ErrBadOptions)
}

// TestDefaultOptions pins the default generation configuration.
func TestDefaultOptions(t *testing.T) {
	opts := nhmm.DefaultOptions()
	assert.Equal(t, 1, opts.SequenceCount)
	assert.Zero(t, opts.Seed)
	assert.False(t, opts.Debug)
}

// TestGenerate_SamplesFollowTrainingMass verifies sampling is faithful
// to the renormalized statistics: on the toy model, cat and dog should
// each appear in roughly half of a large sample.
func TestGenerate_SamplesFollowTrainingMass(t *testing.T) {
	c, err := constraint.Anything(3)
	require.NoError(t, err)
	m := trainModel(t, toyCorpus, c)

	rng := rand.New(rand.NewSource(1))
	var cats int
	const n = 2000
	for i := 0; i < n; i++ {
		words, genErr := m.GenerateSentence(rng)
		require.NoError(t, genErr)
		if words[1] == "cat" {
			cats++
		}
	}
	assert.InDelta(t, n/2, cats, n/10, "cat should be drawn about half the time")
}
