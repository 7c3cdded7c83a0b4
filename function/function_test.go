package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInvertedSeparationToGray(t *testing.T) {
	// A common Separation tint-transform shape: map tint t to gray (1-t)
	// replicated across device-gray's single channel, here folded into
	// a 3-channel target for test simplicity: t -> 1-t, 1-t, 1-t.
	f, err := Parse([]byte("{ dup 1 exch sub dup dup }"), []float64{0, 1}, 3)
	require.NoError(t, err)
	out, err := f.Evaluate([]float64{0.25})
	require.NoError(t, err)
	for i, v := range out {
		assert.InDelta(t, 0.75, v, 1e-9, "component %d", i)
	}
}

func TestEvaluateIfElse(t *testing.T) {
	f, err := Parse([]byte("{ dup 0.5 lt { pop 0 } { pop 1 } ifelse }"), []float64{0, 1}, 1)
	require.NoError(t, err)
	low, err := f.Evaluate([]float64{0.2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, low[0])

	high, err := f.Evaluate([]float64{0.8})
	require.NoError(t, err)
	assert.Equal(t, 1.0, high[0])
}

func TestEvaluateArithmeticStack(t *testing.T) {
	f, err := Parse([]byte("{ 2 mul 1 add }"), []float64{0, 10}, 1)
	require.NoError(t, err)
	out, err := f.Evaluate([]float64{3})
	require.NoError(t, err)
	assert.Equal(t, 7.0, out[0])
}

func TestDomainClamping(t *testing.T) {
	f, err := Parse([]byte("{ }"), []float64{0, 1}, 1)
	require.NoError(t, err)
	out, err := f.Evaluate([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out[0], "expected input clamped to domain max 1")
}
