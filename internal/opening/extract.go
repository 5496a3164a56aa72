package opening

import (
	"regexp"
	"strings"

	"github.com/notnil/chess"
)

// Tag patterns for bracketed PGN metadata.
var (
	openingTagPattern   = regexp.MustCompile(`\[Opening\s+"([^"]+)"\]`)
	variationTagPattern = regexp.MustCompile(`\[Variation\s+"([^"]+)"\]`)
)

// maxPlies is how many half-moves the heuristic considers.
const maxPlies = 4

// Extractor derives opening labels from PGN text.
// An Extractor is safe for concurrent use.
type Extractor struct {
	rules []Rule
}

// NewExtractor creates an Extractor using the default rule table.
func NewExtractor() *Extractor {
	return &Extractor{rules: DefaultRules}
}

// NewExtractorWithRules creates an Extractor with a custom rule table.
func NewExtractorWithRules(rules []Rule) *Extractor {
	return &Extractor{rules: rules}
}

// Extract derives the opening label for one game.
//
// Precedence: an explicit [Opening "..."] tag wins; otherwise the
// first few mainline moves are classified against the rule table.
// Empty or unparsable PGN degrades to the zero Label; extraction
// never fails.
func (e *Extractor) Extract(pgn string) (Label, Method) {
	if strings.TrimSpace(pgn) == "" {
		return Label{}, MethodNone
	}

	if m := openingTagPattern.FindStringSubmatch(pgn); m != nil {
		label := Label{Opening: m[1]}
		if v := variationTagPattern.FindStringSubmatch(pgn); v != nil {
			label.Variation = v[1]
		}
		return label, MethodTag
	}

	plies := mainlinePlies(pgn, maxPlies)
	if name, ok := classify(e.rules, plies); ok {
		return Label{Opening: name}, MethodHeuristic
	}

	return Label{}, MethodNone
}

// mainlinePlies parses the PGN movetext and returns up to limit
// half-moves in algebraic notation. Returns nil when the PGN does
// not parse.
func mainlinePlies(pgn string, limit int) []string {
	pgnFunc, err := chess.PGN(strings.NewReader(pgn))
	if err != nil {
		return nil
	}

	game := chess.NewGame(pgnFunc)
	moves := game.Moves()
	positions := game.Positions()

	if len(moves) > limit {
		moves = moves[:limit]
	}

	notation := chess.AlgebraicNotation{}
	plies := make([]string, 0, len(moves))
	for i, mv := range moves {
		plies = append(plies, notation.Encode(positions[i], mv))
	}
	return plies
}
