// Package opening extracts opening labels from PGN game text.
//
// Extraction prefers explicit [Opening "..."] / [Variation "..."] tag
// pairs and falls back to classifying the first few mainline moves
// against an ordered rule table.
package opening

// Display sentinels. Internally an absent opening or variation is the
// empty string; the sentinel names exist only for presentation.
const (
	UnknownOpening = "Unknown Opening"
	MainLine       = "Main Line"
)

// Label is the opening classification for one game.
// The zero value means the opening could not be determined.
type Label struct {
	// Opening is the opening name, empty when unknown.
	Opening string

	// Variation is the variation name, empty when unspecified.
	Variation string
}

// Known reports whether an opening was determined.
func (l Label) Known() bool {
	return l.Opening != ""
}

// DisplayOpening returns the opening name, substituting the
// UnknownOpening sentinel when absent.
func (l Label) DisplayOpening() string {
	if l.Opening == "" {
		return UnknownOpening
	}
	return l.Opening
}

// DisplayVariation returns the variation name, substituting the
// MainLine sentinel when absent.
func (l Label) DisplayVariation() string {
	if l.Variation == "" {
		return MainLine
	}
	return l.Variation
}

// Method records how a label was derived.
type Method int

const (
	// MethodNone means the PGN was empty or unparsable.
	MethodNone Method = iota

	// MethodTag means the label came from an [Opening "..."] tag.
	MethodTag

	// MethodHeuristic means the label was classified from the
	// opening moves.
	MethodHeuristic
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodTag:
		return "tag"
	case MethodHeuristic:
		return "heuristic"
	default:
		return "none"
	}
}
