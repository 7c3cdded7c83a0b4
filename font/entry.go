package font

import (
	"github.com/inkwell-doc/pagerender/page"
)

// EncodingKind distinguishes the two ways an Entry maps a content-stream
// code unit to a glyph id.
type EncodingKind int

const (
	// EncodingCID means the raw code unit IS the glyph id (spec.md §4.3
	// step 3: identity-h base encoding, or the fallback when a named
	// encoding yields an empty code map). An embedded CID-to-GID table
	// produces an EncodingCodeMap entry instead.
	EncodingCID EncodingKind = iota
	// EncodingCodeMap means codes are looked up in CodeToGID.
	EncodingCodeMap
)

// Entry is an immutable, built font entry, shared by reference for the
// font cache's lifetime (spec.md §3 "Font entry").
type Entry struct {
	Font      Font
	Kind      EncodingKind
	CodeToGID map[uint16]GlyphID
	IsCID     bool // whether input byte strings decode two bytes per code
}

// DecodeCodes slices a shown byte string into code units per spec.md §4.1
// "Glyph resolution inside text showing" step 1: two big-endian bytes per
// code when the entry is CID, else one byte per code. A trailing odd byte
// in a CID string is dropped.
func (e *Entry) DecodeCodes(data []byte) []uint16 {
	if !e.IsCID {
		codes := make([]uint16, len(data))
		for i, b := range data {
			codes[i] = uint16(b)
		}
		return codes
	}
	codes := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		codes = append(codes, uint16(data[i])<<8|uint16(data[i+1]))
	}
	return codes
}

// GID resolves a content-stream code unit to a glyph id per spec.md §4.1
// "Glyph resolution inside text showing" step 2. ok is false when the
// code is absent from a CodeMap-kind entry's table — the caller
// (textstate.Show) substitutes glyph id 0; no log entry is written.
func (e *Entry) GID(code uint16) (GlyphID, bool) {
	if e.Kind == EncodingCID {
		return GlyphID(code), true
	}
	gid, ok := e.CodeToGID[code]
	return gid, ok
}

// Build constructs an Entry from a document font resource and the backend
// used to parse its embedded or substitute font program, following the
// algorithm in spec.md §4.3.
func Build(res page.FontResource, parse func(data []byte) (Font, error)) (*Entry, error) {
	isCID := res.IsCID()

	if table := res.CIDToGIDMap(); table != nil {
		fnt, err := loadFont(res, parse)
		if err != nil {
			return nil, err
		}
		m := make(map[uint16]GlyphID, len(table))
		for i, gid := range table {
			m[uint16(i)] = GlyphID(gid)
		}
		return &Entry{Font: fnt, Kind: EncodingCodeMap, CodeToGID: m, IsCID: true}, nil
	}

	enc := res.Encoding()
	if enc.Base == "identity-h" {
		fnt, err := loadFont(res, parse)
		if err != nil {
			return nil, err
		}
		return &Entry{Font: fnt, Kind: EncodingCID, IsCID: true}, nil
	}

	fnt, err := loadFont(res, parse)
	if err != nil {
		return nil, err
	}

	codeMap := buildCodeMap(fnt, enc)
	if len(codeMap) == 0 {
		return &Entry{Font: fnt, Kind: EncodingCID, IsCID: isCID}, nil
	}
	return &Entry{Font: fnt, Kind: EncodingCodeMap, CodeToGID: codeMap, IsCID: isCID}, nil
}

func loadFont(res page.FontResource, parse func([]byte) (Font, error)) (Font, error) {
	data := res.EmbeddedData()
	if len(data) == 0 {
		return nil, errNoFontData
	}
	return parse(data)
}

// buildCodeMap builds the 256-entry code-to-gid map per spec.md §4.3 step
// 4: transcode the named encoding to Unicode codepoints, resolve each
// through the font's own cmap, then apply Differences overrides.
func buildCodeMap(fnt Font, enc page.Encoding) map[uint16]GlyphID {
	transcode := transcoderFor(enc.Base)
	m := make(map[uint16]GlyphID)
	for code := 0; code < 256; code++ {
		cp := transcode(byte(code))
		gid, ok := fnt.GIDForCodepoint(cp)
		if ok {
			m[uint16(code)] = gid
		}
	}
	for code, name := range enc.Differences {
		if gid, ok := fnt.GIDForName(name); ok {
			m[uint16(code)] = gid
		}
	}
	return m
}
