// Package coverage computes documentation coverage from the output of
// documentation generators. Each supported generator has its own counter
// that reduces a generator artifact to a (documented, total) member count;
// counts from multiple sources are summed into a single percentage.
package coverage

// Generator identifies a supported documentation generator format.
type Generator string

const (
	GeneratorDoxygen      Generator = "doxygen"
	GeneratorJSDoc        Generator = "jsdoc"
	GeneratorTypeDoc      Generator = "typedoc"
	GeneratorOpenAPI      Generator = "openapi"
	GeneratorCoverageJSON Generator = "coverage-json"
)

// SupportedGenerators lists the generators accepted in doc-source
// declarations, in the order they are reported to the user.
var SupportedGenerators = []Generator{
	GeneratorDoxygen,
	GeneratorJSDoc,
	GeneratorTypeDoc,
	GeneratorOpenAPI,
	GeneratorCoverageJSON,
}

// Supported reports whether g is one of the known generator kinds.
func (g Generator) Supported() bool {
	for _, known := range SupportedGenerators {
		if g == known {
			return true
		}
	}
	return false
}

// artifactLabel describes the artifact a generator produces, used in
// not-found error messages.
func (g Generator) artifactLabel() string {
	switch g {
	case GeneratorDoxygen:
		return "Doxygen XML directory"
	case GeneratorJSDoc:
		return "JSDoc JSON file"
	case GeneratorTypeDoc:
		return "TypeDoc JSON file"
	case GeneratorOpenAPI:
		return "OpenAPI spec file"
	case GeneratorCoverageJSON:
		return "coverage JSON file"
	default:
		return "doc artifact"
	}
}

// Source is one resolved documentation artifact to fold into the aggregate.
type Source struct {
	Generator Generator
	Path      string
}

// Count is a pair of documentable-member tallies for one or more sources.
type Count struct {
	Documented int
	Total      int
}

// Add returns the pairwise sum of two counts.
func (c Count) Add(other Count) Count {
	return Count{
		Documented: c.Documented + other.Documented,
		Total:      c.Total + other.Total,
	}
}

// Percent converts the count to a coverage percentage. A zero total means
// no documentable members were found and counts as fully covered.
func (c Count) Percent() float64 {
	if c.Total == 0 {
		return 100.0
	}
	return float64(c.Documented) / float64(c.Total) * 100.0
}

// Counter reduces one generator artifact to a member count.
type Counter interface {
	Count(path string) (Count, error)
}

var counters = map[Generator]Counter{
	GeneratorDoxygen:      doxygenCounter{},
	GeneratorJSDoc:        jsdocCounter{},
	GeneratorTypeDoc:      typedocCounter{},
	GeneratorOpenAPI:      openapiCounter{},
	GeneratorCoverageJSON: customCounter{},
}

// counterFor returns the counter implementing g's counting policy.
func counterFor(g Generator) (Counter, bool) {
	c, ok := counters[g]
	return c, ok
}
