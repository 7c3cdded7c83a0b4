package sfntfont

import "golang.org/x/image/math/fixed"

func fixedInt(v int) fixed.Int26_6 {
	return fixed.I(v)
}

func f26(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
