package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/coverage-badges/internal/badge"
	"github.com/jonathan/coverage-badges/internal/config"
	"github.com/jonathan/coverage-badges/internal/observability"
	"github.com/spf13/cobra"
)

var checkCommand = &cobra.Command{
	Use:   "check",
	Short: "Compute coverage and enforce thresholds without touching the README",
	Long: `Runs the same coverage aggregation as "update" but never writes the README. Intended for CI gates where only the threshold checks matter.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runCheckCmd,
}

var (
	checkConfigPath    string
	checkBuildDir      string
	checkDocGenerator  string
	checkDocPath       string
	checkDocSources    []string
	checkFailUnderDoc  float64
	checkFailUnderTest float64
	checkVerbose       bool
)

func init() {
	checkCommand.Flags().StringVar(&checkConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	checkCommand.Flags().StringVarP(&checkBuildDir, "build-dir", "b", config.DefaultBuildDir, "Path to the build directory containing coverage.txt")
	checkCommand.Flags().StringVarP(&checkDocGenerator, "doc-generator", "g", config.DefaultGenerator, "Doc generator source to parse (doxygen, jsdoc, typedoc, openapi, coverage-json); ignored if --doc-source is provided")
	checkCommand.Flags().StringVar(&checkDocPath, "doc-path", "", "Path to doc generator output (defaults to <build-dir>/docs/xml for doxygen)")
	checkCommand.Flags().StringArrayVar(&checkDocSources, "doc-source", nil, "Add a doc source as generator=path (repeatable)")
	checkCommand.Flags().Float64Var(&checkFailUnderDoc, "fail-under-doc", 0, "Fail if documentation coverage is below this percentage")
	checkCommand.Flags().Float64Var(&checkFailUnderTest, "fail-under-test", 0, "Fail if test coverage is below this percentage")
	checkCommand.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(checkCommand)
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if checkConfigPath != "" {
		loadedCfg, err := config.LoadConfig(checkConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("build-dir") {
		cfg.BuildDir = checkBuildDir
	}
	if cmd.Flags().Changed("doc-generator") {
		cfg.DocGenerator = checkDocGenerator
	}
	if cmd.Flags().Changed("doc-path") {
		cfg.DocPath = checkDocPath
	}
	if cmd.Flags().Changed("doc-source") {
		cfg.DocSources = checkDocSources
	}
	if cmd.Flags().Changed("fail-under-doc") {
		v := checkFailUnderDoc
		cfg.FailUnderDoc = &v
	}
	if cmd.Flags().Changed("fail-under-test") {
		v := checkFailUnderTest
		cfg.FailUnderTest = &v
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = checkVerbose
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Computed coverage: doc=%s, test=%s\n",
		badge.FormatPercent(result.DocPct), badge.FormatPercent(result.TestPct))

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
