package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/coverage-badges/internal/coverage"
)

func TestPrintCoverageSummary(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	counts := []coverage.SourceCount{
		{
			Source: coverage.Source{Generator: coverage.GeneratorDoxygen, Path: "/build/docs/xml"},
			Count:  coverage.Count{Documented: 3, Total: 4},
		},
	}
	p.PrintCoverageSummary(counts, 75.0, 92.0)

	out := buf.String()
	assert.Contains(t, out, "COVERAGE SUMMARY")
	assert.Contains(t, out, "doxygen")
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, "/build/docs/xml")
	assert.Contains(t, out, "Doc coverage:  75%")
	assert.Contains(t, out, "Test coverage: 92%")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintCoverageSummaryNoSources(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintCoverageSummary(nil, 100.0, 50.5)

	assert.Contains(t, buf.String(), "Doc coverage:  100%")
	assert.Contains(t, buf.String(), "Test coverage: 50.50%")
}
