package constraint

import (
	"errors"
	"fmt"
)

// Sentinel errors for constraint construction.
var (
	// ErrBadLength indicates a non-positive constraint length.
	ErrBadLength = errors.New("constraint: length must be positive")

	// ErrBadPattern indicates an empty or malformed position pattern.
	ErrBadPattern = errors.New("constraint: bad pattern")

	// ErrNilConstraint indicates a nil wrapped constraint.
	ErrNilConstraint = errors.New("constraint: wrapped constraint is nil")
)

// Wildcard is the Lexical token matching any word at its position.
const Wildcard = "*"

// Constraint restricts which words and transitions may appear at each
// position of a generated sequence.
//
// Positions ("layers") index word slots 0..Length()-1; layer Length()
// is the synthetic End slot. Implementations must be deterministic and
// judge an edge using only its layer index and the two words involved.
type Constraint interface {
	// Length reports the required sequence length in words (nodes).
	Length() int

	// AllowNode reports whether word may occupy the given layer.
	AllowNode(layer int, word string) bool

	// AllowEdge reports whether the transition from (at layer) to
	// (at layer+1) may appear.
	AllowEdge(layer int, from, to string) bool
}

// anything imposes only a fixed total length.
type anything struct {
	length int
}

// Anything returns a constraint that fixes the sequence length and
// allows every word and transition. Returns ErrBadLength for length <= 0.
func Anything(length int) (Constraint, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	return anything{length: length}, nil
}

func (a anything) Length() int { return a.length }

func (a anything) AllowNode(int, string) bool { return true }

func (a anything) AllowEdge(int, string, string) bool { return true }

// lexical requires a literal word at each non-wildcard position.
type lexical struct {
	tokens []string
}

// Lexical returns a constraint of length len(tokens) requiring the
// literal token at each position; the Wildcard token allows any word.
// Returns ErrBadLength for no tokens and ErrBadPattern for an empty token.
func Lexical(tokens ...string) (Constraint, error) {
	if len(tokens) == 0 {
		return nil, ErrBadLength
	}
	for i, tok := range tokens {
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token at position %d", ErrBadPattern, i)
		}
	}
	return lexical{tokens: append([]string(nil), tokens...)}, nil
}

// MustLexical is like Lexical but panics on error. Intended for
// package-level variables and tests with known-good tokens.
func MustLexical(tokens ...string) Constraint {
	c, err := Lexical(tokens...)
	if err != nil {
		panic(err)
	}
	return c
}

func (l lexical) Length() int { return len(l.tokens) }

func (l lexical) AllowNode(layer int, word string) bool {
	if layer < 0 || layer >= len(l.tokens) {
		return true
	}
	tok := l.tokens[layer]
	return tok == Wildcard || tok == word
}

func (l lexical) AllowEdge(int, string, string) bool { return true }

// Matcher judges a single word at a single position. A nil Matcher in a
// Pattern acts as a wildcard.
type Matcher func(word string) bool

// pattern applies one Matcher per position.
type pattern struct {
	matchers []Matcher
}

// Pattern returns a constraint of length len(matchers) admitting a word
// at position i iff matchers[i] is nil or returns true for it.
// Returns ErrBadLength for no matchers.
func Pattern(matchers ...Matcher) (Constraint, error) {
	if len(matchers) == 0 {
		return nil, ErrBadLength
	}
	return pattern{matchers: append([]Matcher(nil), matchers...)}, nil
}

func (p pattern) Length() int { return len(p.matchers) }

func (p pattern) AllowNode(layer int, word string) bool {
	if layer < 0 || layer >= len(p.matchers) {
		return true
	}
	m := p.matchers[layer]
	return m == nil || m(word)
}

func (p pattern) AllowEdge(int, string, string) bool { return true }

// forbid bans adjacent pairs on top of a wrapped constraint.
type forbid struct {
	base  Constraint
	pairs map[[2]string]struct{}
}

// Forbid wraps base, additionally deleting every transition whose
// (from, to) words form one of the given pairs, at any position.
// Returns ErrNilConstraint when base is nil.
func Forbid(base Constraint, pairs ...[2]string) (Constraint, error) {
	if base == nil {
		return nil, ErrNilConstraint
	}
	banned := make(map[[2]string]struct{}, len(pairs))
	for _, p := range pairs {
		banned[p] = struct{}{}
	}
	return forbid{base: base, pairs: banned}, nil
}

func (f forbid) Length() int { return f.base.Length() }

func (f forbid) AllowNode(layer int, word string) bool {
	return f.base.AllowNode(layer, word)
}

func (f forbid) AllowEdge(layer int, from, to string) bool {
	if _, banned := f.pairs[[2]string{from, to}]; banned {
		return false
	}
	return f.base.AllowEdge(layer, from, to)
}
