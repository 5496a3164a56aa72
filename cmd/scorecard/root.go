package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/scorecard"
	"github.com/discochess/scorecard/internal/record"
	"github.com/discochess/scorecard/internal/source/csvsource"
)

var (
	// Global flags.
	inputPath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "scorecard",
	Short: "Opening statistics and insights for a personal chess game log",
	Long: `Scorecard analyzes a chess game log exported as CSV: it classifies
each game's opening from its PGN, rolls the games up into per-opening
statistics, and generates performance insights.

Examples:
  # Per-opening statistics
  scorecard openings --input games.csv

  # Only openings with at least 5 games, as white
  scorecard openings -i games.csv --min-games 5 --side white

  # Export the statistics table
  scorecard export -i games.csv --output openings.csv

  # Performance observations
  scorecard insights -i games.csv`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to the game log CSV (.csv, .csv.gz or .csv.zst)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newClient builds a client over the --input game log.
func newClient() (*scorecard.Client, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("no input file; pass --input")
	}

	src, err := csvsource.New(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening game log: %w", err)
	}

	opts := []scorecard.Option{scorecard.WithSource(src)}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
		opts = append(opts, scorecard.WithLogger(logger))
	}

	return scorecard.New(opts...)
}

// reportOptions translates the shared filter flags into report options.
func reportOptions(minGames int, side, from, to string) ([]scorecard.ReportOption, error) {
	var opts []scorecard.ReportOption

	if minGames > 0 {
		opts = append(opts, scorecard.WithMinGames(minGames))
	}

	if side != "" {
		s := record.ParseSide(side)
		if s == record.SideUnknown {
			return nil, fmt.Errorf("unrecognized side %q; use white or black", side)
		}
		opts = append(opts, scorecard.WithSide(s))
	}

	if from != "" || to != "" {
		var fromDate, toDate time.Time
		var err error
		if from != "" {
			if fromDate, err = time.Parse("2006-01-02", from); err != nil {
				return nil, fmt.Errorf("parsing --from: %w", err)
			}
		}
		if to != "" {
			if toDate, err = time.Parse("2006-01-02", to); err != nil {
				return nil, fmt.Errorf("parsing --to: %w", err)
			}
		}
		opts = append(opts, scorecard.WithDateRange(fromDate, toDate))
	}

	return opts, nil
}
