package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/discochess/scorecard/internal/codec"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the opening statistics table as CSV",
	Long: `Write the per-opening statistics table in the download format:
Opening, Games, Variations, Wins, Losses, Draws, Win_Rate, White, Black.

The output is compressed when the output path ends in .gz or .zst.

Examples:
  # To stdout
  scorecard export -i games.csv

  # To a compressed file
  scorecard export -i games.csv --output openings.csv.zst`,
	RunE: runExport,
}

var (
	exportOutput   string
	exportMinGames int
	exportSide     string
	exportFrom     string
	exportTo       string
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default stdout)")
	exportCmd.Flags().IntVar(&exportMinGames, "min-games", 0, "hide openings with fewer games")
	exportCmd.Flags().StringVar(&exportSide, "side", "", "restrict to games as white or black")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "earliest game date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "latest game date (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	opts, err := reportOptions(exportMinGames, exportSide, exportFrom, exportTo)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if exportOutput == "" {
		return client.ExportCSV(ctx, os.Stdout, opts...)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	w, err := codec.ForPath(exportOutput).Writer(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("creating output writer: %w", err)
	}

	if err := client.ExportCSV(ctx, w, opts...); err != nil {
		w.Close()
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finishing output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	fmt.Printf("Exported opening statistics to %s\n", exportOutput)
	return nil
}
