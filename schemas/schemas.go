// Package schemas embeds the JSON Schemas consumed by the coverage
// counters.
package schemas

import _ "embed"

// CoverageReport is the schema for pre-computed coverage reports read by
// the coverage-json counter.
//
//go:embed coverage_report.schema.json
var CoverageReport []byte
