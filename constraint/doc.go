// Package constraint defines the pluggable constraint policies applied
// to a layered transition store, and a small family of concrete
// variants:
//
//   - Anything — fixed total length, nothing else
//   - Lexical  — a required literal word at given positions ("*" = any)
//   - Pattern  — an arbitrary per-position predicate (syllables, meter,
//     rhyme — anything expressible as func(word) bool)
//   - Forbid   — wraps another constraint and bans adjacent word pairs
//
// A Constraint decides per-edge validity from the edge's layer index and
// the two words involved only; it never sees the sampler. The engine
// treats the Start/End sentinels as always allowed, so variants only
// judge vocabulary words.
//
// For an order-m model a "word" here is an m-word node (space-joined);
// position indices count nodes, not individual words.
package constraint
