// Package main provides the scorecard CLI tool for analyzing opening
// performance from a personal chess game log.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
