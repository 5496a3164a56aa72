package opening

import "strings"

// Rule maps a mainline prefix (SAN plies) to an opening name.
// Rules are evaluated top to bottom; the first match wins.
type Rule struct {
	Moves []string
	Name  string
}

// OtherOpening is the classification for games whose first moves
// match no rule.
const OtherOpening = "Other Opening"

// DefaultRules is the standard classification table, ordered from
// most to least specific per first move.
var DefaultRules = []Rule{
	{Moves: []string{"e4", "e5"}, Name: "Open Game"},
	{Moves: []string{"e4", "c5"}, Name: "Sicilian Defense"},
	{Moves: []string{"e4"}, Name: "King's Pawn Game"},
	{Moves: []string{"d4", "d5"}, Name: "Closed Game"},
	{Moves: []string{"d4", "Nf6"}, Name: "Indian Defense"},
	{Moves: []string{"d4"}, Name: "Queen's Pawn Game"},
	{Moves: []string{"c4"}, Name: "English Opening"},
	{Moves: []string{"Nf3"}, Name: "Reti Opening"},
}

// classify matches the given SAN plies against the rule table.
// Returns false when there are no plies to classify.
func classify(rules []Rule, plies []string) (string, bool) {
	if len(plies) == 0 {
		return "", false
	}

	for _, r := range rules {
		if matchesPrefix(r.Moves, plies) {
			return r.Name, true
		}
	}
	return OtherOpening, true
}

// matchesPrefix reports whether the game's plies start with the
// rule's move sequence.
func matchesPrefix(moves, plies []string) bool {
	if len(plies) < len(moves) {
		return false
	}
	for i, m := range moves {
		if normalizeSAN(plies[i]) != m {
			return false
		}
	}
	return true
}

// normalizeSAN strips check, mate, and annotation suffixes so that
// "e4+" and "e4!?" both match the rule move "e4".
func normalizeSAN(san string) string {
	return strings.TrimRight(san, "+#!?")
}
