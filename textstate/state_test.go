package textstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-doc/pagerender/font"
	"github.com/inkwell-doc/pagerender/geom"
	"github.com/inkwell-doc/pagerender/path"
)

type fakeFont struct {
	advance float64
}

func (f *fakeFont) FontMatrix() geom.Matrix { return geom.NewMatrix(0.001, 0, 0, 0.001, 0, 0) }
func (f *fakeFont) Glyph(gid font.GlyphID) (font.Glyph, bool) {
	if gid == 0 {
		return font.Glyph{}, false
	}
	b := path.NewBuilder()
	b.MoveTo(0, 0)
	b.LineTo(100, 0)
	return font.Glyph{Outline: b.Take(), AdvanceX: f.advance}, true
}
func (f *fakeFont) GIDForCodepoint(rune) (font.GlyphID, bool) { return 0, false }
func (f *fakeFont) GIDForName(string) (font.GlyphID, bool)    { return 0, false }
func (f *fakeFont) Encoding() string                          { return "fake" }

func entryWithAdvance(advance float64) *font.Entry {
	return &font.Entry{Font: &fakeFont{advance: advance}, Kind: font.EncodingCID, IsCID: false}
}

func TestProcTmSetsBothMatrices(t *testing.T) {
	s := Default()
	s.ProcTm(2, 0, 0, 2, 10, 20)
	want := geom.NewMatrix(2, 0, 0, 2, 10, 20)
	assert.Equal(t, want, s.TextMatrix)
	assert.Equal(t, want, s.LineMatrix)
}

func TestProcTdTranslatesLineMatrixAndSyncsTextMatrix(t *testing.T) {
	s := Default()
	s.ProcTd(5, 7)
	x, y := s.TextMatrix.Transform(0, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 7.0, y)
	assert.Equal(t, s.LineMatrix, s.TextMatrix, "Td must sync text matrix to line matrix")
}

func TestProcTDSetsLeading(t *testing.T) {
	s := Default()
	s.ProcTD(0, -12)
	assert.Equal(t, 12.0, s.Leading)
}

func TestProcTrRejectsOutOfRange(t *testing.T) {
	s := Default()
	assert.Error(t, s.ProcTr(6), "expected error for render mode 6")
	assert.Equal(t, ModeFill, s.Mode, "mode should be left unchanged after a rejected Tr")

	require.NoError(t, s.ProcTr(2))
	assert.Equal(t, ModeFillStroke, s.Mode)
}

func TestShowWithNoFontReturnsNothing(t *testing.T) {
	s := Default()
	got := s.Show([]byte("A"), geom.Identity(), geom.Identity())
	assert.Nil(t, got, "expected nil with no current font")
}

func TestShowAdvancesTextMatrixByGlyphWidth(t *testing.T) {
	s := Default()
	s.Font = entryWithAdvance(500) // half an em at 1000 upm
	s.FontSize = 10

	shown := s.Show([]byte{'A'}, geom.Identity(), geom.Identity())
	require.Len(t, shown, 1)
	// em-advance = 500 * 0.001 = 0.5; dx = Tfs.m11 * emAdvance = (1*10)*0.5 = 5
	x, _ := s.TextMatrix.Transform(0, 0)
	assert.InDelta(t, 5.0, x, 1e-9)
}

func TestShowAppliesCharSpaceAndWordSpace(t *testing.T) {
	s := Default()
	s.Font = entryWithAdvance(0)
	s.FontSize = 10
	s.CharSpace = 1
	s.WordSpace = 3

	s.Show([]byte{0x20}, geom.Identity(), geom.Identity())
	x, _ := s.TextMatrix.Transform(0, 0)
	// dx = word_space * horiz_scale * font_size = 3 * 1 * 10 = 30
	assert.InDelta(t, 30.0, x, 1e-9, "space byte should use word space")

	s2 := Default()
	s2.Font = entryWithAdvance(0)
	s2.FontSize = 10
	s2.CharSpace = 1
	s2.WordSpace = 3
	s2.Show([]byte{'A'}, geom.Identity(), geom.Identity())
	x2, _ := s2.TextMatrix.Transform(0, 0)
	// dx = char_space * horiz_scale * font_size = 1 * 1 * 10 = 10
	assert.InDelta(t, 10.0, x2, 1e-9, "non-space byte should use char space")
}

func TestAdvanceForNumberMatchesTJSignAndScale(t *testing.T) {
	s := Default()
	s.FontSize = 10
	s.HorizScale = 1
	s.AdvanceForNumber(-500)
	x, _ := s.TextMatrix.Transform(0, 0)
	// -0.001 * -500 * 10 * 1 = 5
	assert.InDelta(t, 5.0, x, 1e-9, "expected TJ-number advance of 5")
}
