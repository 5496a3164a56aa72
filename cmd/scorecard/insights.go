package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate performance observations from the game log",
	Long: `Analyze the game log and print plain-text observations: rating
trend, accuracy and centipawn-loss assessments, and any win-rate gap
between the two colors.

Examples:
  # All games
  scorecard insights -i games.csv

  # Recent games only
  scorecard insights -i games.csv --from 2025-06-01`,
	RunE: runInsights,
}

var (
	insightsSide string
	insightsFrom string
	insightsTo   string
)

func init() {
	insightsCmd.Flags().StringVar(&insightsSide, "side", "", "restrict to games as white or black")
	insightsCmd.Flags().StringVar(&insightsFrom, "from", "", "earliest game date (YYYY-MM-DD)")
	insightsCmd.Flags().StringVar(&insightsTo, "to", "", "latest game date (YYYY-MM-DD)")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	opts, err := reportOptions(0, insightsSide, insightsFrom, insightsTo)
	if err != nil {
		return err
	}

	insights, err := client.Insights(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("generating insights: %w", err)
	}

	for _, msg := range insights.Messages {
		fmt.Printf("- %s\n", msg)
	}

	return nil
}
