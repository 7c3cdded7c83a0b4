// Package sysfont locates a substitute system font file when a document's
// font resource has no embedded program, wrapping github.com/adrg/sysfont
// exactly as the teacher's render/renderer.go does for its own font
// substitution fallback.
package sysfont

import (
	"os"

	"github.com/adrg/sysfont"
)

// Finder locates installed font files by family name.
type Finder struct {
	f *sysfont.Finder
}

// NewFinder returns a Finder restricted to TrueType/TrueType-collection
// font files, matching the teacher's FinderOpts.
func NewFinder() *Finder {
	return &Finder{f: sysfont.NewFinder(&sysfont.FinderOpts{
		Extensions: []string{".ttf", ".ttc"},
	})}
}

// Match returns the file path of the best installed match for name, and
// false if nothing matched.
func (fd *Finder) Match(name string) (string, bool) {
	info := fd.f.Match(name)
	if info == nil {
		return "", false
	}
	return info.Filename, true
}

// Load reads a matched font file's raw bytes, for handing to a font
// backend's Parse.
func Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// StandardSubstitutes is the fallback family-name order the interpreter
// tries when a font resource names no standard-font equivalent and has no
// embedded program, mirroring render/renderer.go's substitutes list.
var StandardSubstitutes = []string{"Times New Roman", "Arial", "DejaVu Sans"}
