// Package record defines the normalized game record model.
//
// Raw spreadsheet rows carry side and result as free-form strings
// ("W", "white", "WIN", ...). Parsing happens exactly once, here, into
// closed enums; downstream code never re-matches strings.
package record

import (
	"strings"
	"time"
)

// Side identifies which color the player had in a game.
type Side int

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// ParseSide normalizes a raw side string to a Side.
// Accepts case and abbreviation variants ("W", "WHITE", "White").
// Anything unrecognized maps to SideUnknown.
func ParseSide(s string) Side {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "W", "WHITE":
		return SideWhite
	case "B", "BLACK":
		return SideBlack
	default:
		return SideUnknown
	}
}

// String returns the display name for the side.
func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return "Unknown"
	}
}

// Result identifies the outcome of a game from the player's perspective.
type Result int

const (
	ResultUnknown Result = iota
	ResultWin
	ResultLoss
	ResultDraw
)

// ParseResult normalizes a raw result string to a Result.
// Matching is case-insensitive. Anything unrecognized maps to
// ResultUnknown; unknown results still count toward game totals.
func ParseResult(s string) Result {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win":
		return ResultWin
	case "loss":
		return ResultLoss
	case "draw":
		return ResultDraw
	default:
		return ResultUnknown
	}
}

// String returns the display name for the result.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "Win"
	case ResultLoss:
		return "Loss"
	case ResultDraw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// GameRecord is one played game from the player's log.
// Numeric metrics use NaN for missing values; consumers must filter
// before computing statistics.
type GameRecord struct {
	// Date the game was played. A zero date means the row was not
	// played yet and should have been excluded upstream.
	Date time.Time

	// Number is the game's sequence number in the log.
	Number int

	Side   Side
	Result Result

	// PGN is the free-form game text: movetext plus optional
	// bracketed tag metadata. May be empty.
	PGN string

	// Pass-through metrics from the game log.
	PerformanceRating float64
	NewRating         float64
	GameRating        float64
	OpponentName      string
	OpponentELO       float64
	Accuracy          float64
	ACL               float64
}
