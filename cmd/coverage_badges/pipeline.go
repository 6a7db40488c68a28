package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/jonathan/coverage-badges/internal/badge"
	"github.com/jonathan/coverage-badges/internal/config"
	"github.com/jonathan/coverage-badges/internal/coverage"
)

// coverageReportName is the test coverage summary expected under the
// build directory.
const coverageReportName = "coverage.txt"

// thresholdTolerance keeps float-boundary comparisons from flapping when
// a computed percentage sits within rounding noise of the minimum.
const thresholdTolerance = 1e-9

// coverageResult carries everything a command needs after the aggregation
// pipeline has run.
type coverageResult struct {
	DocPct  float64
	TestPct float64
	Counts  []coverage.SourceCount
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// computeCoverage resolves the declared doc sources, counts them, and
// reads the test coverage report. All inputs are read fully before any
// output happens.
func computeCoverage(cfg config.Config, logger *log.Logger) (coverageResult, error) {
	buildDir, err := filepath.Abs(cfg.BuildDir)
	if err != nil {
		return coverageResult{}, fmt.Errorf("failed to resolve build directory %s: %w", cfg.BuildDir, err)
	}

	reportPath := filepath.Join(buildDir, coverageReportName)
	if info, err := os.Stat(reportPath); err != nil || info.IsDir() {
		return coverageResult{}, &coverage.NotFoundError{Kind: "coverage report", Path: reportPath}
	}

	sources, err := coverage.ParseSources(cfg.DocSources, cfg.DocGenerator, cfg.DocPath, buildDir)
	if err != nil {
		return coverageResult{}, err
	}

	counts, err := coverage.CountSources(sources)
	if err != nil {
		return coverageResult{}, err
	}
	for _, sc := range counts {
		logger.Debug("counted doc source",
			"generator", sc.Source.Generator,
			"path", sc.Source.Path,
			"documented", sc.Count.Documented,
			"total", sc.Count.Total)
	}

	testPct, err := coverage.ReadTestCoverage(reportPath)
	if err != nil {
		return coverageResult{}, err
	}

	result := coverageResult{
		DocPct:  coverage.Sum(counts).Percent(),
		TestPct: testPct,
		Counts:  counts,
	}
	logger.Debug("computed coverage", "doc", result.DocPct, "test", result.TestPct)
	return result, nil
}

// thresholdFailures collects every violated minimum so all of them can be
// reported together.
func thresholdFailures(cfg config.Config, result coverageResult) []string {
	var failures []string
	if cfg.FailUnderDoc != nil && result.DocPct+thresholdTolerance < *cfg.FailUnderDoc {
		failures = append(failures, fmt.Sprintf("Doc coverage %s is below %s",
			badge.FormatPercent(result.DocPct), badge.FormatPercent(*cfg.FailUnderDoc)))
	}
	if cfg.FailUnderTest != nil && result.TestPct+thresholdTolerance < *cfg.FailUnderTest {
		failures = append(failures, fmt.Sprintf("Test coverage %s is below %s",
			badge.FormatPercent(result.TestPct), badge.FormatPercent(*cfg.FailUnderTest)))
	}
	return failures
}
