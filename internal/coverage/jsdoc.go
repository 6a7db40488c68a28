package coverage

import (
	"encoding/json"
	"os"
)

// jsdocDocumentableKinds is the fixed allow-list of doclet kinds that are
// eligible to require documentation.
var jsdocDocumentableKinds = map[string]struct{}{
	"class":     {},
	"constant":  {},
	"enum":      {},
	"event":     {},
	"external":  {},
	"function":  {},
	"interface": {},
	"member":    {},
	"mixin":     {},
	"module":    {},
	"namespace": {},
	"typedef":   {},
}

// jsdocCounter counts doclets in a JSDoc JSON report. A doclet is
// documented when it is not flagged undocumented and the first of these
// carries text: description/classdesc, summary, any param description,
// any returns (or legacy return) description. The order is part of the
// published coverage numbers and must not change.
type jsdocCounter struct{}

func (jsdocCounter) Count(path string) (Count, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Count{}, &ParseError{Path: path, Message: "failed to read JSDoc report", Cause: err}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Count{}, &ParseError{Path: path, Message: "malformed JSDoc JSON", Cause: err}
	}
	doclets, ok := doc.([]any)
	if !ok {
		return Count{}, &SchemaError{Path: path, Message: "JSDoc report must be a JSON array of doclets"}
	}

	var count Count
	for _, raw := range doclets {
		doclet, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if isTruthy(doclet["ignore"]) {
			continue
		}
		kind, _ := doclet["kind"].(string)
		if _, ok := jsdocDocumentableKinds[kind]; !ok {
			continue
		}
		if access, _ := doclet["access"].(string); access == "private" || access == "protected" {
			continue
		}
		count.Total++
		if jsdocDocumented(doclet) {
			count.Documented++
		}
	}
	return count, nil
}

func jsdocDocumented(doclet map[string]any) bool {
	if isTruthy(doclet["undocumented"]) {
		return false
	}
	if hasTextValue(doclet["description"]) || hasTextValue(doclet["classdesc"]) {
		return true
	}
	if hasTextValue(doclet["summary"]) {
		return true
	}
	if params, ok := doclet["params"].([]any); ok {
		for _, raw := range params {
			if param, ok := raw.(map[string]any); ok && hasTextValue(param["description"]) {
				return true
			}
		}
	}
	returns, _ := doclet["returns"].([]any)
	if len(returns) == 0 {
		// Older JSDoc emitted the singular field name.
		returns, _ = doclet["return"].([]any)
	}
	for _, raw := range returns {
		if ret, ok := raw.(map[string]any); ok && hasTextValue(ret["description"]) {
			return true
		}
	}
	return false
}
