package coverage

import "fmt"

// ConfigError represents an invalid CLI or doc-source configuration.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Message)
}

// NotFoundError represents a declared artifact that is missing on disk.
type NotFoundError struct {
	Kind string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// ParseError represents an input file that could not be read or decoded.
type ParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError represents a well-formed document with the wrong shape or
// missing required keys.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid report %s: %s", e.Path, e.Message)
}

// FormatError represents a test coverage report missing the expected
// summary line or token layout.
type FormatError struct {
	Path    string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected coverage report format in %s: %s", e.Path, e.Message)
}
