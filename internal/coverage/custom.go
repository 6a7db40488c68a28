package coverage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/coverage-badges/schemas"
)

// customCounter reads a pre-computed coverage report: a JSON object
// carrying {documented,total}, {covered,total}, or {undocumented,total}.
// The shape is enforced with the embedded JSON Schema before the pair is
// derived, so malformed reports fail with a field-level message.
type customCounter struct{}

func (customCounter) Count(path string) (Count, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Count{}, &ParseError{Path: path, Message: "failed to read coverage report", Cause: err}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Count{}, &ParseError{Path: path, Message: "malformed coverage JSON", Cause: err}
	}
	report, ok := doc.(map[string]any)
	if !ok {
		return Count{}, &SchemaError{Path: path, Message: "coverage report must be a JSON object"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemas.CoverageReport),
		gojsonschema.NewGoLoader(report),
	)
	if err != nil {
		return Count{}, fmt.Errorf("failed to validate coverage report %s: %w", path, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return Count{}, &SchemaError{Path: path, Message: strings.Join(messages, "; ")}
	}

	total, ok := intField(report, "total")
	if !ok {
		return Count{}, &SchemaError{Path: path, Message: "missing integer field \"total\""}
	}
	if documented, ok := intField(report, "documented"); ok {
		return Count{Documented: documented, Total: total}, nil
	}
	if covered, ok := intField(report, "covered"); ok {
		return Count{Documented: covered, Total: total}, nil
	}
	if undocumented, ok := intField(report, "undocumented"); ok {
		return Count{Documented: total - undocumented, Total: total}, nil
	}
	return Count{}, &SchemaError{Path: path, Message: "missing keys: want documented/covered/undocumented plus total"}
}

// intField extracts an integer-valued field from a decoded JSON object.
func intField(report map[string]any, key string) (int, bool) {
	value, ok := report[key].(float64)
	if !ok {
		return 0, false
	}
	return int(value), true
}
