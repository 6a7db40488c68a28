package coverage

import (
	"encoding/json"
	"os"
)

// typedocDocumentableKinds is the fixed allow-list of reflection kinds
// that are eligible to require documentation.
var typedocDocumentableKinds = map[string]struct{}{
	"Accessor":           {},
	"Class":              {},
	"Constructor":        {},
	"Enumeration":        {},
	"Enumeration member": {},
	"Enum":               {},
	"Enum member":        {},
	"Function":           {},
	"Interface":          {},
	"Method":             {},
	"Module":             {},
	"Namespace":          {},
	"Object literal":     {},
	"Property":           {},
	"Type alias":         {},
	"Variable":           {},
}

// typedocCounter counts reflections in a TypeDoc JSON tree. Reflections
// flagged private, protected, or external are excluded; a reflection is
// documented when its own comment or any of its signature comments carries
// text.
type typedocCounter struct{}

func (typedocCounter) Count(path string) (Count, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Count{}, &ParseError{Path: path, Message: "failed to read TypeDoc report", Cause: err}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Count{}, &ParseError{Path: path, Message: "malformed TypeDoc JSON", Cause: err}
	}

	var count Count
	walkReflections(doc, func(reflection map[string]any) {
		kind, _ := reflection["kindString"].(string)
		if _, ok := typedocDocumentableKinds[kind]; !ok {
			return
		}
		if !reflectionIsPublic(reflection) {
			return
		}
		count.Total++
		if commentHasText(reflection["comment"]) || signatureHasText(reflection) {
			count.Documented++
		}
	})
	return count, nil
}

// walkReflections visits every reflection node depth-first, descending
// through "children" lists.
func walkReflections(node any, fn func(map[string]any)) {
	switch n := node.(type) {
	case map[string]any:
		fn(n)
		if children, ok := n["children"].([]any); ok {
			for _, child := range children {
				walkReflections(child, fn)
			}
		}
	case []any:
		for _, child := range n {
			walkReflections(child, fn)
		}
	}
}

func reflectionIsPublic(reflection map[string]any) bool {
	flags, _ := reflection["flags"].(map[string]any)
	if flags == nil {
		return true
	}
	return !isTruthy(flags["isPrivate"]) && !isTruthy(flags["isProtected"]) && !isTruthy(flags["isExternal"])
}

// commentHasText inspects a TypeDoc comment block across both the legacy
// (shortText/text/returns) and current (summary/blockTags) layouts.
func commentHasText(value any) bool {
	comment, ok := value.(map[string]any)
	if !ok {
		return false
	}
	if hasTextValue(comment["shortText"]) || hasTextValue(comment["text"]) {
		return true
	}
	if hasTextValue(comment["returns"]) {
		return true
	}
	if summary, ok := comment["summary"].([]any); ok {
		for _, raw := range summary {
			if part, ok := raw.(map[string]any); ok {
				if hasTextValue(part["text"]) {
					return true
				}
			} else if hasTextValue(raw) {
				return true
			}
		}
	}
	if blockTags, ok := comment["blockTags"].([]any); ok {
		for _, raw := range blockTags {
			tag, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if parts, ok := tag["content"].([]any); ok {
				for _, rawPart := range parts {
					if part, ok := rawPart.(map[string]any); ok {
						if hasTextValue(part["text"]) {
							return true
						}
					} else if hasTextValue(rawPart) {
						return true
					}
				}
			} else if hasTextValue(tag["content"]) {
				return true
			}
		}
	}
	return false
}

// signatureHasText checks the call signatures plus accessor get/set
// signatures for a documented comment.
func signatureHasText(reflection map[string]any) bool {
	if signatures, ok := reflection["signatures"].([]any); ok {
		for _, raw := range signatures {
			if signature, ok := raw.(map[string]any); ok && commentHasText(signature["comment"]) {
				return true
			}
		}
	}
	for _, key := range []string{"getSignature", "setSignature"} {
		if signature, ok := reflection[key].(map[string]any); ok && commentHasText(signature["comment"]) {
			return true
		}
	}
	return false
}
