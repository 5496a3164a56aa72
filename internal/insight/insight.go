// Package insight generates plain-text performance observations from
// a game log: rating trend, accuracy and centipawn-loss averages, and
// side-split win rates.
package insight

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/discochess/scorecard/internal/record"
)

// MinGames is the smallest sample the generator will analyze.
const MinGames = 5

// trendWindow is how many recent games the rating trend considers.
const trendWindow = 10

// Report holds generated insights for the current record set.
type Report struct {
	TotalGames int
	Wins       int
	Losses     int
	Draws      int

	// WinRate is a percentage in [0, 100].
	WinRate float64

	// Messages are the human-readable observations, in a fixed order:
	// rating trend, accuracy, centipawn loss, side split, overall.
	Messages []string
}

// Generate computes insights over the given records. Records are
// expected in log order (oldest first). Fewer than MinGames records
// yields a single advisory message.
func Generate(records []record.GameRecord) *Report {
	r := &Report{TotalGames: len(records)}

	for _, rec := range records {
		switch rec.Result {
		case record.ResultWin:
			r.Wins++
		case record.ResultLoss:
			r.Losses++
		case record.ResultDraw:
			r.Draws++
		}
	}
	if r.TotalGames > 0 {
		r.WinRate = float64(r.Wins) / float64(r.TotalGames) * 100
	}

	if r.TotalGames < MinGames {
		r.Messages = []string{fmt.Sprintf("Need at least %d games for analysis", MinGames)}
		return r
	}

	if msg := ratingTrend(records); msg != "" {
		r.Messages = append(r.Messages, msg)
	}
	if msg := accuracyInsight(records); msg != "" {
		r.Messages = append(r.Messages, msg)
	}
	if msg := aclInsight(records); msg != "" {
		r.Messages = append(r.Messages, msg)
	}
	if msg := sideSplit(records); msg != "" {
		r.Messages = append(r.Messages, msg)
	}

	r.Messages = append(r.Messages, fmt.Sprintf(
		"Overall win rate: %.1f%% (%d/%d)", r.WinRate, r.Wins, r.TotalGames))

	return r
}

// ratingTrend fits a line through the last few ratings and reports
// the fitted change.
func ratingTrend(records []record.GameRecord) string {
	var ratings []float64
	for _, rec := range records {
		if !math.IsNaN(rec.NewRating) {
			ratings = append(ratings, rec.NewRating)
		}
	}
	if len(ratings) < 2 {
		return ""
	}

	if len(ratings) > trendWindow {
		ratings = ratings[len(ratings)-trendWindow:]
	}

	xs := make([]float64, len(ratings))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, beta := stat.LinearRegression(xs, ratings, nil, false)
	change := beta * float64(len(ratings)-1)

	n := len(ratings)
	switch {
	case change >= 1:
		return fmt.Sprintf("Your rating has improved by %.0f points over your last %d games", change, n)
	case change <= -1:
		return fmt.Sprintf("Your rating has decreased by %.0f points over your last %d games", -change, n)
	default:
		return fmt.Sprintf("Your rating has remained stable over your last %d games", n)
	}
}

func accuracyInsight(records []record.GameRecord) string {
	avg, ok := meanOf(records, func(r record.GameRecord) float64 { return r.Accuracy })
	if !ok {
		return ""
	}

	switch {
	case avg > 85:
		return fmt.Sprintf("Excellent accuracy: your average of %.1f%% shows strong tactical play", avg)
	case avg > 75:
		return fmt.Sprintf("Good accuracy: your average of %.1f%% indicates solid tactical understanding", avg)
	default:
		return fmt.Sprintf("Focus on tactical training: your accuracy of %.1f%% has room for improvement", avg)
	}
}

func aclInsight(records []record.GameRecord) string {
	avg, ok := meanOf(records, func(r record.GameRecord) float64 { return r.ACL })
	if !ok {
		return ""
	}

	switch {
	case avg < 50:
		return fmt.Sprintf("Strong positional play: your ACL of %.1f shows good decision-making", avg)
	case avg < 75:
		return fmt.Sprintf("Decent positional understanding with ACL of %.1f", avg)
	default:
		return fmt.Sprintf("Focus on positional play: your ACL of %.1f indicates room for improvement", avg)
	}
}

// sideSplit reports a win-rate gap between colors larger than 10
// percentage points.
func sideSplit(records []record.GameRecord) string {
	var whiteGames, whiteWins, blackGames, blackWins int
	for _, rec := range records {
		switch rec.Side {
		case record.SideWhite:
			whiteGames++
			if rec.Result == record.ResultWin {
				whiteWins++
			}
		case record.SideBlack:
			blackGames++
			if rec.Result == record.ResultWin {
				blackWins++
			}
		}
	}
	if whiteGames == 0 || blackGames == 0 {
		return ""
	}

	whiteRate := float64(whiteWins) / float64(whiteGames) * 100
	blackRate := float64(blackWins) / float64(blackGames) * 100

	if math.Abs(whiteRate-blackRate) <= 10 {
		return ""
	}
	if whiteRate > blackRate {
		return fmt.Sprintf("You perform better with White pieces (%.1f%% vs %.1f%% win rate)", whiteRate, blackRate)
	}
	return fmt.Sprintf("You perform better with Black pieces (%.1f%% vs %.1f%% win rate)", blackRate, whiteRate)
}

// meanOf averages a metric over records where it is present.
func meanOf(records []record.GameRecord, metric func(record.GameRecord) float64) (float64, bool) {
	var values []float64
	for _, rec := range records {
		if v := metric(rec); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0, false
	}
	return stat.Mean(values, nil), true
}
