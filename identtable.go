package json

import "sort"

// identRule classifies a code point for the purposes of the
// identifier-object-key extension (spec: IdentifierObjectKey).
type identRule int8

const (
	identNone identRule = iota
	// identStart code points may begin an identifier and may also
	// continue one.
	identStart
	// identPart code points may only continue an identifier already
	// begun by an identStart code point (combining marks, digits,
	// connector punctuation, and the zero-width joiner/non-joiner).
	identPart
)

// cprun is one run-length-encoded entry: code points in
// [first, first+length) all share rule.
type cprun struct {
	first  rune
	length int32
	rule   identRule
}

// identifierRuns is a sorted, run-length-encoded approximation of the
// ECMAScript IdentifierStart/IdentifierPart Unicode categories. It is
// deliberately compact rather than a verbatim copy of the Unicode
// Character Database: ASCII, Latin-1, and the combining-mark/connector/
// format code points an object key is realistically built from are exact;
// the remaining scripts are covered by coarse bands. Regenerate from the
// Unicode data file if exact per-script fidelity is required.
var identifierRuns = []cprun{
	{0x0024, 1, identStart},       // $
	{0x0030, 10, identPart},       // 0-9
	{0x0041, 26, identStart},      // A-Z
	{0x005F, 1, identStart},       // _
	{0x0061, 26, identStart},      // a-z
	{0x00AA, 1, identStart},       // FEMININE ORDINAL INDICATOR
	{0x00B5, 1, identStart},       // MICRO SIGN
	{0x00B7, 1, identPart},        // MIDDLE DOT (connector-like)
	{0x00BA, 1, identStart},       // MASCULINE ORDINAL INDICATOR
	{0x00C0, 0x17, identStart},    // Latin-1 letters A-grave .. O-diaeresis
	{0x00D8, 0x1F, identStart},    // Latin-1 letters O-slash .. thorn
	{0x00F8, 0x208, identStart},   // Latin Extended-A/B, IPA Extensions
	{0x0300, 0x70, identPart},     // Combining Diacritical Marks
	{0x0370, 0xF00, identStart},   // Greek, Cyrillic, Armenian, Hebrew, Arabic ... (coarse band)
	{0x200C, 2, identPart},        // ZWNJ, ZWJ
	{0x203F, 2, identPart},        // UNDERTIE, CHARACTER TIE (connector-like)
	{0x2070, 0xFD0, identStart},   // coarse band: super/subscripts through CJK punctuation (approximate)
	{0x3040, 0xA000, identStart},  // coarse band: Hiragana .. most of the BMP's lettered scripts
	{0xAC00, 0x2BA4, identStart},  // Hangul Syllables and on (coarse, stops short of surrogates)
	{0xF900, 0x400, identStart},   // CJK Compatibility Ideographs
	{0xFE00, 0x10, identPart},     // Variation Selectors (treated as continuation-only)
	{0xFE20, 0x10, identPart},     // Combining Half Marks
	{0xFE33, 0x2, identPart},      // PRESENTATION FORM FOR VERTICAL LOW LINE (connector-like)
	{0xFE4D, 0x3, identPart},      // DASHED/CENTRELINE/WAVY LOW LINE (connector-like)
	{0xFF10, 10, identPart},       // fullwidth digits
	{0xFF21, 26, identStart},      // fullwidth A-Z
	{0xFF3F, 1, identStart},       // fullwidth low line
	{0xFF41, 26, identStart},      // fullwidth a-z
	{0x10000, 0xF0000, identStart}, // coarse band across the supplementary planes
}

func init() {
	if !sort.SliceIsSorted(identifierRuns, func(i, j int) bool {
		return identifierRuns[i].first < identifierRuns[j].first
	}) {
		panic("json: identifierRuns is not sorted")
	}
}

// identifierClass resolves a code point's identifier rule by binary
// search over the sorted run table, mirroring the run-length-encoded
// lookup (sorted table + binary search) the Design Notes call for.
func identifierClass(r rune) identRule {
	n := len(identifierRuns)
	i := sort.Search(n, func(i int) bool {
		run := identifierRuns[i]
		return run.first+rune(run.length) > r
	})
	if i >= n {
		return identNone
	}
	run := identifierRuns[i]
	if r < run.first {
		return identNone
	}
	return run.rule
}

// isIdentifierStart reports whether r may begin an identifier.
func isIdentifierStart(r rune) bool {
	return identifierClass(r) == identStart
}

// isIdentifierPart reports whether r may continue an identifier already
// begun by an identifier-start code point.
func isIdentifierPart(r rune) bool {
	switch identifierClass(r) {
	case identStart, identPart:
		return true
	default:
		return false
	}
}
