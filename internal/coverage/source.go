package coverage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseSources turns doc-source declarations into resolved sources. Each
// declaration is "generator=path" or "generator:path" (first separator
// wins, "=" preferred). When no declarations are given, the default
// generator and optional path override are used instead; only Doxygen has
// an implied default path under the build directory.
func ParseSources(declarations []string, defaultGenerator, docPath, buildDir string) ([]Source, error) {
	if len(declarations) > 0 {
		sources := make([]Source, 0, len(declarations))
		for _, declaration := range declarations {
			source, err := parseDeclaration(declaration, buildDir)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source)
		}
		return sources, nil
	}

	generator := Generator(strings.ToLower(strings.TrimSpace(defaultGenerator)))
	if !generator.Supported() {
		return nil, unsupportedGeneratorError(string(generator))
	}
	if docPath == "" {
		if generator != GeneratorDoxygen {
			return nil, &ConfigError{Message: fmt.Sprintf("--doc-path is required for generator %q", generator)}
		}
		docPath = filepath.Join(buildDir, "docs", "xml")
	}
	return []Source{{Generator: generator, Path: resolveDocPath(generator, docPath, buildDir)}}, nil
}

func parseDeclaration(declaration, buildDir string) (Source, error) {
	name, rawPath, ok := splitDeclaration(declaration)
	if !ok {
		return Source{}, &ConfigError{
			Message: fmt.Sprintf("doc source must be generator=path or generator:path (got %q)", declaration),
		}
	}
	name = strings.ToLower(strings.TrimSpace(name))
	rawPath = strings.TrimSpace(rawPath)
	if name == "" || rawPath == "" {
		return Source{}, &ConfigError{Message: fmt.Sprintf("doc source missing generator or path: %q", declaration)}
	}
	generator := Generator(name)
	if !generator.Supported() {
		return Source{}, unsupportedGeneratorError(name)
	}
	return Source{Generator: generator, Path: resolveDocPath(generator, rawPath, buildDir)}, nil
}

func splitDeclaration(declaration string) (name, path string, ok bool) {
	if idx := strings.Index(declaration, "="); idx >= 0 {
		return declaration[:idx], declaration[idx+1:], true
	}
	if idx := strings.Index(declaration, ":"); idx >= 0 {
		return declaration[:idx], declaration[idx+1:], true
	}
	return "", "", false
}

func unsupportedGeneratorError(name string) error {
	supported := make([]string, len(SupportedGenerators))
	for i, g := range SupportedGenerators {
		supported[i] = string(g)
	}
	return &ConfigError{
		Message: fmt.Sprintf("unsupported doc generator %q (supported: %s)", name, strings.Join(supported, ", ")),
	}
}

// resolveDocPath makes a declared path absolute. Doxygen output lives
// under the build directory, so its relative paths resolve against it;
// every other generator resolves against the working directory.
func resolveDocPath(generator Generator, path, buildDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if generator == GeneratorDoxygen {
		path = filepath.Join(buildDir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
