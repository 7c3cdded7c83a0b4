package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTransform(t *testing.T) {
	m := Identity()
	x, y := m.Transform(3, 4)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestConcatAppliesRightOperandFirst(t *testing.T) {
	// Translate then scale: scale(translate(p)).
	translate := Translation(10, 0)
	scale := NewMatrix(2, 0, 0, 2, 0, 0)

	m := scale
	m.Concat(translate)

	x, y := m.Transform(1, 1)
	assert.Equal(t, 22.0, x, "Concat composed in the wrong order")
	assert.Equal(t, 2.0, y, "Concat composed in the wrong order")
}

func TestCmWithIdentityLeavesTransformUnchanged(t *testing.T) {
	orig := NewMatrix(2, 0.5, -0.5, 3, 7, -9)
	m := orig
	m.Concat(Identity())
	assert.Equal(t, orig, m, "identity cm changed the transform")
}

func TestInverse(t *testing.T) {
	m := NewMatrix(2, 0, 0, 3, 5, -1)
	inv, ok := m.Inverse()
	require.True(t, ok, "expected invertible matrix")
	x, y := m.Transform(4, 4)
	x2, y2 := inv.Transform(x, y)
	assert.InDelta(t, 4.0, x2, 1e-9, "inverse did not round-trip")
	assert.InDelta(t, 4.0, y2, 1e-9, "inverse did not round-trip")
}
