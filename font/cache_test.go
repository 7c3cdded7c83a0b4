package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	c := NewCache()
	e := &Entry{Kind: EncodingCID, IsCID: true}
	c.Put("F1", e)
	got, ok := c.Get("F1")
	require.True(t, ok)
	assert.Same(t, e, got)

	_, ok = c.Get("missing")
	assert.False(t, ok, "expected miss for unknown name")
}

func TestLockingCachePutGet(t *testing.T) {
	l := NewLocking(nil)
	e := &Entry{Kind: EncodingCID}
	l.Put("F1", e)
	got, ok := l.Get("F1")
	require.True(t, ok)
	assert.Same(t, e, got)
}
