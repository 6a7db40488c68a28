package coverage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadTestCoverage extracts the test coverage percentage from a
// line-oriented report such as llvm-cov's summary table. The first line
// starting with "TOTAL" is split on whitespace and its fourth-from-last
// token, stripped of a trailing "%", is the line-coverage percentage.
func ReadTestCoverage(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &ParseError{Path: path, Message: "failed to read coverage report", Cause: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "TOTAL") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			return 0, &FormatError{Path: path, Message: "unexpected TOTAL line layout"}
		}
		token := strings.TrimSuffix(fields[len(fields)-4], "%")
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return 0, &FormatError{Path: path, Message: fmt.Sprintf("TOTAL line percentage %q is not a number", token)}
		}
		return value, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, &ParseError{Path: path, Message: "failed to read coverage report", Cause: err}
	}
	return 0, &FormatError{Path: path, Message: "TOTAL line not found"}
}
