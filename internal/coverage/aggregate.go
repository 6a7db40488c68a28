package coverage

import (
	"fmt"
	"os"
)

// SourceCount pairs one resolved source with its member count, for
// verbose reporting.
type SourceCount struct {
	Source Source
	Count  Count
}

// CountSources runs the matching counter for every source in order and
// returns the per-source counts. A declared artifact missing on disk is a
// NotFoundError; Doxygen sources must be directories, all others files.
func CountSources(sources []Source) ([]SourceCount, error) {
	counts := make([]SourceCount, 0, len(sources))
	for _, source := range sources {
		counter, ok := counterFor(source.Generator)
		if !ok {
			return nil, &ConfigError{Message: fmt.Sprintf("unsupported doc generator %q", source.Generator)}
		}
		if err := checkSourceExists(source); err != nil {
			return nil, err
		}
		count, err := counter.Count(source.Path)
		if err != nil {
			return nil, err
		}
		counts = append(counts, SourceCount{Source: source, Count: count})
	}
	return counts, nil
}

// Sum adds all per-source counts into a grand total.
func Sum(counts []SourceCount) Count {
	var total Count
	for _, sc := range counts {
		total = total.Add(sc.Count)
	}
	return total
}

// Aggregate computes the documentation coverage percentage across all
// sources. With no countable members anywhere the result is 100.0.
func Aggregate(sources []Source) (float64, error) {
	counts, err := CountSources(sources)
	if err != nil {
		return 0, err
	}
	return Sum(counts).Percent(), nil
}

func checkSourceExists(source Source) error {
	info, err := os.Stat(source.Path)
	wantDir := source.Generator == GeneratorDoxygen
	if err != nil || info.IsDir() != wantDir {
		return &NotFoundError{Kind: source.Generator.artifactLabel(), Path: source.Path}
	}
	return nil
}
