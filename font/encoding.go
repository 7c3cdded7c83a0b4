package font

import (
	"errors"

	"golang.org/x/text/encoding/charmap"
)

var errNoFontData = errors.New("font: resource has no embedded data and no substitute was supplied")

// transcoderFor returns a byte-to-Unicode-codepoint function for a named
// PDF encoding, per spec.md §4.3 step 4. Where golang.org/x/text offers a
// matching single-byte charmap it is used: Windows-1252 for win-ansi, and
// also for standard as its closest practical equivalent (standard has no
// table of its own), and Macintosh for mac-roman; otherwise the identity
// byte-to-codepoint fallback applies, exactly as
// the algorithm allows when "no transcoder is available" (true of
// "symbol", a font-specific encoding golang.org/x/text has no table for).
func transcoderFor(base string) func(byte) rune {
	switch base {
	case "win-ansi":
		return charmapTranscoder(charmap.Windows1252)
	case "standard":
		return charmapTranscoder(charmap.Windows1252)
	case "mac-roman":
		return charmapTranscoder(charmap.Macintosh)
	default:
		return identityTranscoder
	}
}

func charmapTranscoder(cm *charmap.Charmap) func(byte) rune {
	return func(b byte) rune {
		r := cm.DecodeByte(b)
		if r == 0 && b != 0 {
			return rune(b)
		}
		return r
	}
}

func identityTranscoder(b byte) rune {
	return rune(b)
}
