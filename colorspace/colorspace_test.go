package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-doc/pagerender/function"
	"github.com/inkwell-doc/pagerender/paint"
)

func TestDeviceCMYKPureRed(t *testing.T) {
	cs := DeviceCMYK{}
	got, err := cs.Resolve([]float64{0, 1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, paint.RGBA{R: 255, G: 0, B: 0, A: 255}, got)
}

func TestDeviceGrayReplicates(t *testing.T) {
	got, err := DeviceGray{}.Resolve([]float64{0.5})
	require.NoError(t, err)
	assert.Equal(t, got.R, got.G, "gray channels must match")
	assert.Equal(t, got.G, got.B, "gray channels must match")
}

func TestSeparationThroughTintTransform(t *testing.T) {
	// tint t -> CMYK (0, t, t, 0), alternate DeviceCMYK.
	transform, err := function.Parse([]byte("{ 0 exch dup 0 }"), []float64{0, 1}, 4)
	require.NoError(t, err)
	sep := Separation{Transform: transform, Alternate: DeviceCMYK{}}
	got, err := sep.Resolve([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, paint.RGBA{R: 255, G: 0, B: 0, A: 255}, got, "want pure red for full tint")
}

func TestIndexedDividesBy255NotMultiplies(t *testing.T) {
	ix := Indexed{Base: BaseDeviceCMYK, LUT: []byte{0, 255, 255, 0}}
	got, err := ix.Resolve([]float64{0})
	require.NoError(t, err)
	assert.Equal(t, paint.RGBA{R: 255, G: 0, B: 0, A: 255}, got, "want pure red from CMYK(0,1,1,0) entry")
}
