// Package readme splices coverage badge lines into a README. The file is
// never parsed as markdown; only the marker block and badge-shaped lines
// are recognized.
package readme

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

// The marker block is owned exclusively by this tool; everything between
// the markers (inclusive) is rewritten on each run.
const (
	StartMarker = "<!-- COVERAGE_BADGES_START -->"
	EndMarker   = "<!-- COVERAGE_BADGES_END -->"
)

var (
	markerBlockRe = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(StartMarker) + `.*?` + regexp.QuoteMeta(EndMarker))

	// A markdown image line, optionally wrapped in a link, with optional
	// surrounding whitespace. Used to find where existing badges end.
	badgeLineRe = regexp.MustCompile(`^\s*(\[!\[.*\]\(.*\)\]\(.*\)|!\[.*\]\(.*\))\s*$`)
)

// Patch replaces or inserts the badge block and reports whether the text
// changed. When both markers are present the first non-greedy span between
// them is replaced; otherwise the block is inserted after the last
// badge-like line, or at the very top when none exists. The result is
// byte-identical to the input when the badges are already current, which
// makes the operation idempotent.
func Patch(content, docBadge, testBadge string) (string, bool) {
	block := strings.Join([]string{StartMarker, docBadge, testBadge, EndMarker}, "\n")

	var updated string
	if strings.Contains(content, StartMarker) && strings.Contains(content, EndMarker) {
		updated = replaceBlock(content, block)
	} else {
		updated = insertBlock(content, block)
	}
	return updated, updated != content
}

func replaceBlock(content, block string) string {
	loc := markerBlockRe.FindStringIndex(content)
	if loc == nil {
		// Markers present but the end marker precedes the start marker;
		// nothing we can safely rewrite.
		return content
	}
	return content[:loc[0]] + block + content[loc[1]:]
}

func insertBlock(content, block string) string {
	var lines []string
	if content != "" {
		lines = strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	}
	insertAt := 0
	for i, line := range lines {
		if badgeLineRe.MatchString(line) {
			insertAt = i + 1
		}
	}
	lines = slices.Insert(lines, insertAt, block)
	updated := strings.Join(lines, "\n")
	if strings.HasSuffix(content, "\n") {
		updated += "\n"
	}
	return updated
}

// UpdateFile patches the README on disk, writing only when the content
// actually changes. Returns whether a write happened.
func UpdateFile(path, docBadge, testBadge string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read README %s: %w", path, err)
	}
	updated, changed := Patch(string(data), docBadge, testBadge)
	if !changed {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("failed to write README %s: %w", path, err)
	}
	return true, nil
}
