package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/coverage-badges/internal/badge"
	"github.com/jonathan/coverage-badges/internal/config"
	"github.com/jonathan/coverage-badges/internal/observability"
	"github.com/jonathan/coverage-badges/internal/readme"
	"github.com/spf13/cobra"
)

var updateCommand = &cobra.Command{
	Use:   "update",
	Short: "Recompute coverage and rewrite the README badges",
	Long: `Computes documentation coverage from the declared doc sources, reads test coverage from <build-dir>/coverage.txt, and replaces the two badge lines in the README marker block (inserting a block after existing badges when no markers are present).

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runUpdateCmd,
}

var (
	updateConfigPath    string
	updateBuildDir      string
	updateReadme        string
	updateDocGenerator  string
	updateDocPath       string
	updateDocSources    []string
	updateFailUnderDoc  float64
	updateFailUnderTest float64
	updateVerbose       bool
)

func init() {
	// Config file flag (processed first)
	updateCommand.Flags().StringVar(&updateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	updateCommand.Flags().StringVarP(&updateBuildDir, "build-dir", "b", config.DefaultBuildDir, "Path to the build directory containing coverage.txt")
	updateCommand.Flags().StringVar(&updateReadme, "readme", config.DefaultReadme, "Path to README markdown file")
	updateCommand.Flags().StringVarP(&updateDocGenerator, "doc-generator", "g", config.DefaultGenerator, "Doc generator source to parse (doxygen, jsdoc, typedoc, openapi, coverage-json); ignored if --doc-source is provided")
	updateCommand.Flags().StringVar(&updateDocPath, "doc-path", "", "Path to doc generator output (defaults to <build-dir>/docs/xml for doxygen)")
	updateCommand.Flags().StringArrayVar(&updateDocSources, "doc-source", nil, "Add a doc source as generator=path (repeatable)")
	updateCommand.Flags().Float64Var(&updateFailUnderDoc, "fail-under-doc", 0, "Fail if documentation coverage is below this percentage")
	updateCommand.Flags().Float64Var(&updateFailUnderTest, "fail-under-test", 0, "Fail if test coverage is below this percentage")
	updateCommand.Flags().BoolVarP(&updateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(updateCommand)
}

func runUpdateCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if updateConfigPath != "" {
		loadedCfg, err := config.LoadConfig(updateConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("build-dir") {
		cfg.BuildDir = updateBuildDir
	}
	if cmd.Flags().Changed("readme") {
		cfg.Readme = updateReadme
	}
	if cmd.Flags().Changed("doc-generator") {
		cfg.DocGenerator = updateDocGenerator
	}
	if cmd.Flags().Changed("doc-path") {
		cfg.DocPath = updateDocPath
	}
	if cmd.Flags().Changed("doc-source") {
		cfg.DocSources = updateDocSources
	}
	if cmd.Flags().Changed("fail-under-doc") {
		v := updateFailUnderDoc
		cfg.FailUnderDoc = &v
	}
	if cmd.Flags().Changed("fail-under-test") {
		v := updateFailUnderTest
		cfg.FailUnderTest = &v
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = updateVerbose
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)
	result, err := computeCoverage(cfg, logger)
	if err != nil {
		return err
	}

	docBadge := badge.For("doc coverage", result.DocPct).Markdown("Doc Coverage")
	testBadge := badge.For("test coverage", result.TestPct).Markdown("Test Coverage")
	changed, err := readme.UpdateFile(cfg.Readme, docBadge, testBadge)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if changed {
		fmt.Fprintf(out, "Updated coverage badges: doc=%s, test=%s\n",
			badge.FormatPercent(result.DocPct), badge.FormatPercent(result.TestPct))
	} else {
		fmt.Fprintln(out, "Coverage badges already up to date.")
	}

	if cfg.Verbose {
		observability.NewPrinter(out).PrintCoverageSummary(result.Counts, result.DocPct, result.TestPct)
	}

	if failures := thresholdFailures(cfg, result); len(failures) > 0 {
		for _, msg := range failures {
			fmt.Fprintln(os.Stderr, msg)
		}
		return errors.New("coverage thresholds not met")
	}
	return nil
}
