package coverage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// openapiMethods are the HTTP verb keys of a path item that denote
// operations.
var openapiMethods = map[string]struct{}{
	"get":     {},
	"put":     {},
	"post":    {},
	"delete":  {},
	"options": {},
	"head":    {},
	"patch":   {},
	"trace":   {},
}

// openapiCounter counts operations in an OpenAPI spec. Every operation
// under "paths" is a documentable unit; it is documented when its summary
// or description carries text. YAML specs are detected by file extension.
type openapiCounter struct{}

func (openapiCounter) Count(path string) (Count, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Count{}, &ParseError{Path: path, Message: "failed to read OpenAPI spec", Cause: err}
	}

	var doc any
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Count{}, &ParseError{Path: path, Message: "malformed OpenAPI YAML", Cause: err}
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Count{}, &ParseError{Path: path, Message: "malformed OpenAPI JSON", Cause: err}
		}
	}

	spec, ok := doc.(map[string]any)
	if !ok {
		return Count{}, &SchemaError{Path: path, Message: "OpenAPI spec must be a JSON/YAML object"}
	}

	var count Count
	paths, _ := spec["paths"].(map[string]any)
	for _, raw := range paths {
		pathItem, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for method, rawOp := range pathItem {
			if _, ok := openapiMethods[strings.ToLower(method)]; !ok {
				continue
			}
			operation, ok := rawOp.(map[string]any)
			if !ok {
				continue
			}
			count.Total++
			if hasTextValue(operation["summary"]) || hasTextValue(operation["description"]) {
				count.Documented++
			}
		}
	}
	return count, nil
}
