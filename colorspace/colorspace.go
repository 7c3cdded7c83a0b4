// Package colorspace resolves operand tuples under a current color space
// into device-RGBA paints, following the same colorspace-object family
// shape as the teacher's model package but trimmed to the conversions the
// interpreter actually needs at paint time.
package colorspace

import (
	"fmt"

	"github.com/inkwell-doc/pagerender/function"
	"github.com/inkwell-doc/pagerender/paint"
)

// ColorSpace converts a tuple of operands (as already-parsed floats, for
// SC/SCN/RG/K/G and friends) or an index (for Indexed) into a device RGBA
// color.
type ColorSpace interface {
	// NumComponents is how many numeric operands this color space expects
	// for an SC/SCN-family operator (0 for Indexed, which instead expects
	// a single integer index via Resolve).
	NumComponents() int
	// Resolve converts operand components into an RGBA color.
	Resolve(components []float64) (paint.RGBA, error)
}

// DeviceGray replicates a single gray value into R, G, and B.
type DeviceGray struct{}

func (DeviceGray) NumComponents() int { return 1 }

func (DeviceGray) Resolve(c []float64) (paint.RGBA, error) {
	if len(c) != 1 {
		return paint.RGBA{}, fmt.Errorf("colorspace: DeviceGray wants 1 component, got %d", len(c))
	}
	v := to255(c[0])
	return paint.RGBA{R: v, G: v, B: v, A: 255}, nil
}

// DeviceRGB and ICC-tagged spaces (treated as DeviceRGB-equivalent, since
// the minimal core does no ICC profile transform) pass components straight
// through.
type DeviceRGB struct{}

func (DeviceRGB) NumComponents() int { return 3 }

func (DeviceRGB) Resolve(c []float64) (paint.RGBA, error) {
	if len(c) != 3 {
		return paint.RGBA{}, fmt.Errorf("colorspace: DeviceRGB wants 3 components, got %d", len(c))
	}
	return paint.RGBA{R: to255(c[0]), G: to255(c[1]), B: to255(c[2]), A: 255}, nil
}

// DeviceCMYK converts subtractive CMYK to additive RGB using the standard
// naive formula: R = (1-C)(1-K), etc.
type DeviceCMYK struct{}

func (DeviceCMYK) NumComponents() int { return 4 }

func (DeviceCMYK) Resolve(c []float64) (paint.RGBA, error) {
	if len(c) != 4 {
		return paint.RGBA{}, fmt.Errorf("colorspace: DeviceCMYK wants 4 components, got %d", len(c))
	}
	cc, m, y, k := c[0], c[1], c[2], c[3]
	r := (1 - cc) * (1 - k)
	g := (1 - m) * (1 - k)
	b := (1 - y) * (1 - k)
	return paint.RGBA{R: to255(r), G: to255(g), B: to255(b), A: 255}, nil
}

// Separation maps a single tint value through a PostScript tint-transfer
// function into the alternate space's components, then resolves those
// through Alternate.
type Separation struct {
	Transform *function.Type4
	Alternate ColorSpace
}

func (Separation) NumComponents() int { return 1 }

func (s Separation) Resolve(c []float64) (paint.RGBA, error) {
	if len(c) != 1 {
		return paint.RGBA{}, fmt.Errorf("colorspace: Separation wants 1 component, got %d", len(c))
	}
	out, err := s.Transform.Evaluate(c)
	if err != nil {
		return paint.RGBA{}, fmt.Errorf("colorspace: separation tint transform: %w", err)
	}
	return s.Alternate.Resolve(out)
}

// Indexed looks a single integer index up in a lookup table of packed
// base-space byte tuples and re-runs conversion through Base.
type Indexed struct {
	Base Base
	LUT  []byte
}

// Base identifies the packed-byte layout of an Indexed color space's
// lookup table and how to turn a byte tuple into the [0,1]-range
// components its Resolve expects.
type Base int

const (
	BaseDeviceGray Base = iota
	BaseDeviceRGB
	BaseDeviceCMYK
)

func (b Base) componentsPerEntry() int {
	switch b {
	case BaseDeviceGray:
		return 1
	case BaseDeviceRGB:
		return 3
	case BaseDeviceCMYK:
		return 4
	default:
		return 3
	}
}

func (b Base) colorSpace() ColorSpace {
	switch b {
	case BaseDeviceGray:
		return DeviceGray{}
	case BaseDeviceCMYK:
		return DeviceCMYK{}
	default:
		return DeviceRGB{}
	}
}

func (Indexed) NumComponents() int { return 0 }

// Resolve looks index up in the LUT. Components are divided by 255 to
// land in the [0,1] range each base space expects — unlike a once-shipped
// teacher codepath that multiplied by 255 for the Indexed+DeviceCMYK
// combination, an off-by-inversion bug; this implementation divides
// unconditionally, for every base space.
func (ix Indexed) Resolve(index []float64) (paint.RGBA, error) {
	if len(index) != 1 {
		return paint.RGBA{}, fmt.Errorf("colorspace: Indexed wants 1 index value, got %d", len(index))
	}
	n := ix.Base.componentsPerEntry()
	i := int(index[0])
	off := i * n
	if off < 0 || off+n > len(ix.LUT) {
		return paint.RGBA{}, fmt.Errorf("colorspace: index %d out of range for %d-entry LUT", i, len(ix.LUT)/n)
	}
	comps := make([]float64, n)
	for j := 0; j < n; j++ {
		comps[j] = float64(ix.LUT[off+j]) / 255.0
	}
	return ix.Base.colorSpace().Resolve(comps)
}

func to255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
