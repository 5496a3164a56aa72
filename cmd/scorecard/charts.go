package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/discochess/scorecard/chart"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Emit chart-ready JSON payloads for the dashboard",
	Long: `Build the chart payload for one of the dashboard views and write
it as JSON to stdout:

  popularity   bubble chart, marker size tracks game count
  performance  bar chart of win rates
  tree         opening/variation treemap

Examples:
  scorecard charts -i games.csv --view popularity
  scorecard charts -i games.csv --view tree --min-games 3`,
	RunE: runCharts,
}

var (
	chartsView     string
	chartsMinGames int
	chartsSide     string
	chartsFrom     string
	chartsTo       string
)

func init() {
	chartsCmd.Flags().StringVar(&chartsView, "view", "popularity", "chart view: popularity, performance or tree")
	chartsCmd.Flags().IntVar(&chartsMinGames, "min-games", 0, "hide openings with fewer games")
	chartsCmd.Flags().StringVar(&chartsSide, "side", "", "restrict to games as white or black")
	chartsCmd.Flags().StringVar(&chartsFrom, "from", "", "earliest game date (YYYY-MM-DD)")
	chartsCmd.Flags().StringVar(&chartsTo, "to", "", "latest game date (YYYY-MM-DD)")
	rootCmd.AddCommand(chartsCmd)
}

func runCharts(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	opts, err := reportOptions(chartsMinGames, chartsSide, chartsFrom, chartsTo)
	if err != nil {
		return err
	}

	report, err := client.OpeningReport(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("computing report: %w", err)
	}

	if report.Empty() {
		fmt.Fprintln(os.Stderr, report.Advisory)
	}

	var payload any
	switch chartsView {
	case "popularity":
		payload = chart.Popularity(report.Summaries)
	case "performance":
		payload = chart.Performance(report.Summaries)
	case "tree":
		payload = chart.Tree(report.Openings)
	default:
		return fmt.Errorf("unknown view %q; use popularity, performance or tree", chartsView)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
