package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageAtClampsToBounds(t *testing.T) {
	img := &Image{Width: 2, Height: 1, Pix: []byte{
		10, 20, 30, 255,
		40, 50, 60, 255,
	}}
	assert.Equal(t, RGBA{10, 20, 30, 255}, img.At(-5, 0), "expected clamp to first pixel")
	assert.Equal(t, RGBA{40, 50, 60, 255}, img.At(5, 5), "expected clamp to last pixel")
}

func TestNewSolidRoundTrips(t *testing.T) {
	p := NewSolid(RGBA{255, 0, 0, 255})
	assert.Equal(t, KindSolid, p.Kind)
	assert.Equal(t, uint8(255), p.Solid.R)
}
