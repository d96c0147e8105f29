// Package nhmm - RNG policy shared by sampling helpers.
//
// Determinism contract: same seed ⇒ identical sequences across runs and
// platforms. There are no time-based sources anywhere; callers that pass
// a nil *rand.Rand get a fixed default stream.
//
// math/rand.Rand is NOT goroutine-safe. Do not share one generator
// across concurrent GenerateSentence calls; create one per goroutine.
package nhmm

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or a
// nil generator. Arbitrary but stable, to keep defaults reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// orDefault returns rng, or the default deterministic stream when nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rngFromSeed(0)
	}
	return rng
}
