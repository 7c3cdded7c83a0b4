package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-doc/pagerender/geom"
)

func TestBuilderMoveLineProducesOneOpenSubpath(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(0, 0)
	b.LineTo(10, 0)
	out := b.Take()

	require.Len(t, out.SubPaths, 1)
	sp := out.SubPaths[0]
	assert.False(t, sp.Closed, "subpath should be open")
	require.Len(t, sp.Segments, 1)
	assert.Equal(t, SegLine, sp.Segments[0].Kind)
	assert.Equal(t, geom.Point{X: 10, Y: 0}, sp.Segments[0].End)
}

func TestBuilderRectIsClosedQuad(t *testing.T) {
	b := NewBuilder()
	b.Rect(0, 0, 10, 20)
	out := b.Take()

	require.Len(t, out.SubPaths, 1)
	assert.True(t, out.SubPaths[0].Closed, "re should produce one closed subpath")
	assert.Len(t, out.SubPaths[0].Segments, 3, "expected 3 line segments after the initial move")
}

func TestBuilderTakeResets(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(1, 1)
	b.LineTo(2, 2)
	_ = b.Take()
	assert.True(t, b.IsEmpty(), "Take should reset the builder")
}

func TestOutlineTransformed(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(0, 0)
	b.LineTo(1, 0)
	out := b.Take()

	moved := out.Transformed(geom.Translation(5, 5))
	got := moved.SubPaths[0].Segments[0].End
	assert.Equal(t, geom.Point{X: 6, Y: 5}, got, "transform not applied")
	// Original untouched.
	assert.Equal(t, geom.Point{X: 1, Y: 0}, out.SubPaths[0].Segments[0].End, "Transformed must not mutate the receiver")
}

func TestOutlineBBox(t *testing.T) {
	b := NewBuilder()
	b.Rect(0, 0, 10, 20)
	out := b.Take()

	bb := out.BBox()
	r, ok := bb.Rect()
	require.True(t, ok, "expected non-empty bbox")
	assert.Equal(t, geom.NewRect(0, 0, 10, 20), r)
}

func TestStrokeToFillProducesClosedFillableOutline(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(0, 0)
	b.LineTo(10, 0)
	out := b.Take()

	filled := out.StrokeToFill(StrokeStyle{Width: 2, MiterLimit: 2})
	require.Len(t, filled.SubPaths, 1)
	assert.True(t, filled.SubPaths[0].Closed, "stroke-to-fill output must be a closed fillable polygon")

	bb := filled.BBox()
	r, ok := bb.Rect()
	require.True(t, ok, "expected non-empty bbox for stroked outline")
	assert.LessOrEqual(t, r.MinY, -0.5, "stroked outline does not appear offset by half-width")
	assert.GreaterOrEqual(t, r.MaxY, 0.5, "stroked outline does not appear offset by half-width")
}
