package constraint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verseforge/conmarkov/constraint"
)

// TestAnything_LengthOnly verifies the fixed-length variant admits
// every word and edge.
func TestAnything_LengthOnly(t *testing.T) {
	c, err := constraint.Anything(4)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Length())
	assert.True(t, c.AllowNode(0, "anything"))
	assert.True(t, c.AllowEdge(2, "a", "b"))
}

// TestAnything_BadLength verifies length validation.
func TestAnything_BadLength(t *testing.T) {
	_, err := constraint.Anything(0)
	assert.ErrorIs(t, err, constraint.ErrBadLength)

	_, err = constraint.Anything(-2)
	assert.ErrorIs(t, err, constraint.ErrBadLength)
}

// TestLexical_RequiredAndWildcard verifies literal positions bind and
// wildcard positions admit anything.
func TestLexical_RequiredAndWildcard(t *testing.T) {
	c, err := constraint.Lexical("*", "love", "*")
	require.NoError(t, err)

	assert.Equal(t, 3, c.Length())
	assert.True(t, c.AllowNode(0, "whatever"))
	assert.True(t, c.AllowNode(1, "love"))
	assert.False(t, c.AllowNode(1, "hate"))
	assert.True(t, c.AllowNode(2, "anything"))
	assert.True(t, c.AllowNode(3, "out-of-range layers are permissive"))
	assert.True(t, c.AllowEdge(0, "a", "b"), "lexical imposes no pair rules")
}

// TestLexical_Errors verifies token validation.
func TestLexical_Errors(t *testing.T) {
	_, err := constraint.Lexical()
	assert.ErrorIs(t, err, constraint.ErrBadLength)

	_, err = constraint.Lexical("a", "", "c")
	assert.ErrorIs(t, err, constraint.ErrBadPattern)
}

// TestMustLexical_PanicsOnBadTokens documents the Must contract.
func TestMustLexical_PanicsOnBadTokens(t *testing.T) {
	assert.Panics(t, func() { constraint.MustLexical() })
	assert.NotPanics(t, func() { constraint.MustLexical("a", "*") })
}

// TestPattern_Matchers verifies per-position predicates and nil-as-wildcard.
func TestPattern_Matchers(t *testing.T) {
	short := func(w string) bool { return len(w) <= 3 }
	c, err := constraint.Pattern(short, nil, func(w string) bool { return strings.HasSuffix(w, "ing") })
	require.NoError(t, err)

	assert.Equal(t, 3, c.Length())
	assert.True(t, c.AllowNode(0, "cat"))
	assert.False(t, c.AllowNode(0, "elephant"))
	assert.True(t, c.AllowNode(1, "anything"), "nil matcher is a wildcard")
	assert.True(t, c.AllowNode(2, "sing"))
	assert.False(t, c.AllowNode(2, "sang"))

	_, err = constraint.Pattern()
	assert.ErrorIs(t, err, constraint.ErrBadLength)
}

// TestForbid_BansPairs verifies pair deletion on top of the wrapped
// constraint, at any layer.
func TestForbid_BansPairs(t *testing.T) {
	base, err := constraint.Anything(3)
	require.NoError(t, err)

	c, err := constraint.Forbid(base, [2]string{"the", "the"}, [2]string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Length())
	assert.False(t, c.AllowEdge(0, "the", "the"))
	assert.False(t, c.AllowEdge(2, "a", "b"))
	assert.True(t, c.AllowEdge(0, "the", "cat"))
	assert.True(t, c.AllowEdge(1, "b", "a"), "pairs are directional")
	assert.True(t, c.AllowNode(0, "the"), "node admission delegates to the base")
}

// TestForbid_ComposesWithLexical verifies both the wrapped constraint
// and the pair bans apply.
func TestForbid_ComposesWithLexical(t *testing.T) {
	base, err := constraint.Lexical("*", "sat")
	require.NoError(t, err)

	c, err := constraint.Forbid(base, [2]string{"cat", "sat"})
	require.NoError(t, err)

	assert.False(t, c.AllowNode(1, "stood"), "wrapped lexical rule still applies")
	assert.False(t, c.AllowEdge(0, "cat", "sat"), "forbidden pair applies")
	assert.True(t, c.AllowEdge(0, "dog", "sat"))
}

// TestForbid_NilBase verifies the nil guard.
func TestForbid_NilBase(t *testing.T) {
	_, err := constraint.Forbid(nil, [2]string{"a", "b"})
	assert.ErrorIs(t, err, constraint.ErrNilConstraint)
}
