// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/coverage-badges/internal/badge"
	"github.com/jonathan/coverage-badges/internal/coverage"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCoverageSummary outputs the per-source member counts and the
// resulting percentages.
func (p *Printer) PrintCoverageSummary(counts []coverage.SourceCount, docPct, testPct float64) {
	var sb strings.Builder

	for _, sc := range counts {
		sb.WriteString(fmt.Sprintf("%-13s %d/%d\n", sc.Source.Generator, sc.Count.Documented, sc.Count.Total))
		sb.WriteString(fmt.Sprintf("  %s\n", sc.Source.Path))
	}
	if len(counts) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Doc coverage:  %s\n", badge.FormatPercent(docPct)))
	sb.WriteString(fmt.Sprintf("Test coverage: %s", badge.FormatPercent(testPct)))

	p.printBox("COVERAGE SUMMARY", sb.String())
}
