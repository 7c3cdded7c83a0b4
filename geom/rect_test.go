package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBBoxEmptyIsIdentity(t *testing.T) {
	r := NewRect(0, 0, 1, 1)
	b := Empty().Add(r)
	got, ok := b.Rect()
	require.True(t, ok, "union with empty should be identity")
	assert.Equal(t, r, got)
}

func TestBBoxMonotonic(t *testing.T) {
	b := Empty()
	assert.True(t, b.IsEmpty(), "fresh BBox should be empty")
	b = b.Add(NewRect(0, 0, 1, 1))
	assert.False(t, b.IsEmpty(), "BBox should no longer be empty after Add")
	first, _ := b.Rect()
	b = b.AddBBox(Empty())
	second, _ := b.Rect()
	assert.Equal(t, first, second, "union with an empty BBox changed the rect")
}

func TestBBoxCommutativeAndAssociative(t *testing.T) {
	a := NewRect(0, 0, 1, 1)
	b := NewRect(2, 2, 3, 3)
	c := NewRect(-1, 5, 0, 6)

	ab := Empty().Add(a).Add(b)
	ba := Empty().Add(b).Add(a)
	rAB, _ := ab.Rect()
	rBA, _ := ba.Rect()
	assert.Equal(t, rAB, rBA, "Add is not commutative")

	left := Empty().Add(a).Add(b).Add(c)
	right := Empty().Add(a).AddBBox(Empty().Add(b).Add(c))
	rLeft, _ := left.Rect()
	rRight, _ := right.Rect()
	assert.Equal(t, rLeft, rRight, "Add is not associative")
}
