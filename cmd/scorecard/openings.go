package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var openingsCmd = &cobra.Command{
	Use:   "openings",
	Short: "Show per-opening statistics for the game log",
	Long: `Classify every game's opening and print per-opening statistics:
game counts, win rate, side split and variation count.

Openings are ordered by popularity; ties break alphabetically.

Examples:
  # All openings
  scorecard openings -i games.csv

  # Only openings with at least 5 games, played as black
  scorecard openings -i games.csv --min-games 5 --side black

  # A date window
  scorecard openings -i games.csv --from 2025-01-01 --to 2025-06-30`,
	RunE: runOpenings,
}

var (
	openingsMinGames int
	openingsSide     string
	openingsFrom     string
	openingsTo       string
	openingsJSON     bool
)

func init() {
	openingsCmd.Flags().IntVar(&openingsMinGames, "min-games", 0, "hide openings with fewer games")
	openingsCmd.Flags().StringVar(&openingsSide, "side", "", "restrict to games as white or black")
	openingsCmd.Flags().StringVar(&openingsFrom, "from", "", "earliest game date (YYYY-MM-DD)")
	openingsCmd.Flags().StringVar(&openingsTo, "to", "", "latest game date (YYYY-MM-DD)")
	openingsCmd.Flags().BoolVar(&openingsJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(openingsCmd)
}

func runOpenings(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	opts, err := reportOptions(openingsMinGames, openingsSide, openingsFrom, openingsTo)
	if err != nil {
		return err
	}

	report, err := client.OpeningReport(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("computing report: %w", err)
	}

	if openingsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	if report.Empty() {
		fmt.Println(report.Advisory)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OPENING\tGAMES\tVARIATIONS\tWINS\tLOSSES\tDRAWS\tWIN RATE\tWHITE\tBLACK")
	for _, s := range report.Summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%.1f%%\t%d\t%d\n",
			s.Opening, s.TotalGames, s.VariationCount,
			s.Wins, s.Losses, s.Draws, s.WinRate,
			s.WhiteGames, s.BlackGames)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d games across %d openings\n", report.TotalGames, len(report.Summaries))
	return nil
}
