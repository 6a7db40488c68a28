// Package main provides the entry point for the coverage badge updater CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "coverage_badges",
	Short:         "README coverage badge updater",
	Long:          "coverage_badges computes documentation coverage from documentation generator artifacts, reads test coverage from the build report, and keeps the README status badges up to date.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
