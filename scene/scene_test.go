package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/gstate"
	"github.com/inkwell-doc/pagerender/paint"
	"github.com/inkwell-doc/pagerender/path"
)

func lineOutline() path.Outline {
	b := path.NewBuilder()
	b.MoveTo(0, 0)
	b.LineTo(10, 0)
	return b.Take()
}

func TestPushPaintReturnsStableIDs(t *testing.T) {
	s := New()
	black := s.PushPaint(paint.NewSolid(paint.Black))
	white := s.PushPaint(paint.NewSolid(paint.White))
	assert.NotEqual(t, black, white, "distinct PushPaint calls must yield distinct ids")
	got, ok := s.Paint(black)
	require.True(t, ok)
	assert.Equal(t, paint.Black, got.Solid)
}

func TestDrawFillPushesOneOutline(t *testing.T) {
	s := New()
	fp := s.PushPaint(paint.NewSolid(paint.Black))
	s.Draw(lineOutline(), Style{Mode: DrawFill, FillPaint: fp}, gstate.NoClip)
	assert.Len(t, s.Paths(), 1)
}

func TestDrawFillThenStrokePushesBothInOrder(t *testing.T) {
	s := New()
	fp := s.PushPaint(paint.NewSolid(paint.Black))
	sp := s.PushPaint(paint.NewSolid(paint.White))
	s.Draw(lineOutline(), Style{
		Mode:        DrawFillThenStroke,
		FillPaint:   fp,
		StrokePaint: sp,
		Stroke:      path.StrokeStyle{Width: 1, MiterLimit: 1},
	}, gstate.NoClip)
	paths := s.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, fp, paths[0].Paint, "expected fill pushed before stroke")
	assert.Equal(t, sp, paths[1].Paint, "expected fill pushed before stroke")
}

func TestDrawNoneSkipsFillAndStroke(t *testing.T) {
	s := New()
	s.Draw(lineOutline(), Style{Mode: DrawNone}, gstate.NoClip)
	assert.Empty(t, s.Paths(), "DrawNone must not push anything, e.g. invisible text mode")
}

func TestPushClipPathReturnsStableNonZeroIDs(t *testing.T) {
	s := New()
	c1 := s.PushClipPath(lineOutline(), FillNonZero)
	c2 := s.PushClipPath(lineOutline(), FillEvenOdd)
	assert.NotEqual(t, gstate.NoClip, c1, "a pushed clip must never collide with NoClip")
	assert.NotEqual(t, c1, c2, "distinct PushClipPath calls must yield distinct ids")

	got, ok := s.ClipPath(c2)
	require.True(t, ok)
	assert.Equal(t, FillEvenOdd, got.FillRule)
}

func TestClipPathLookupMissOnNoClip(t *testing.T) {
	s := New()
	_, ok := s.ClipPath(gstate.NoClip)
	assert.False(t, ok, "NoClip must never resolve to an interned clip path")
}

func TestItemMapGetStringJoinsMatchesInOrder(t *testing.T) {
	m := NewItemMap()
	m.Push(geom.NewRect(0, 0, 10, 10), "Tj(Hello)")
	m.Push(geom.NewRect(5, 5, 15, 15), "Tj(World)")

	got, ok := m.GetString(geom.Point{X: 6, Y: 6})
	require.True(t, ok)
	assert.Equal(t, "Tj(Hello), Tj(World)", got)

	_, ok = m.GetString(geom.Point{X: 100, Y: 100})
	assert.False(t, ok, "expected no match outside any rect")
}

func TestItemMapEmptyOnNoPushes(t *testing.T) {
	m := NewItemMap()
	assert.Equal(t, 0, m.Len())
}
