package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasTextValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"whitespace string", "  \n\t ", false},
		{"plain string", "documented", true},
		{"padded string", "  x  ", true},
		{"number", 42.0, false},
		{"bool", true, false},
		{"empty list", []any{}, false},
		{"list of blanks", []any{"", "  "}, false},
		{"list with text", []any{"", "x"}, true},
		{"nested list", []any{[]any{[]any{"deep"}}}, true},
		{"empty map", map[string]any{}, false},
		{"map with text", map[string]any{"a": "", "b": "x"}, true},
		{"map of numbers", map[string]any{"a": 1.0}, false},
		{"map inside list", []any{map[string]any{"text": "hi"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasTextValue(tt.value))
		})
	}
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, isTruthy(true))
	assert.True(t, isTruthy("yes"))
	assert.True(t, isTruthy(1.0))
	assert.False(t, isTruthy(false))
	assert.False(t, isTruthy(""))
	assert.False(t, isTruthy(0.0))
	assert.False(t, isTruthy(nil))
	assert.False(t, isTruthy([]any{"x"}))
}
