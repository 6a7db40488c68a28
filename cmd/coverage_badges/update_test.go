package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// llvm-cov style summary whose line coverage column reads 92%.
const coverageReport = `Filename  Regions  Missed  Cover  Functions  Missed  Executed  Lines  Missed  Cover  Branches  Missed  Cover
TOTAL          40       4  90.00%        12       1   91.67%    300      24     92%       80      10  87.50%
`

// writeWorkspace lays out a build directory, a coverage-json doc report,
// and a README with a marker block.
func writeWorkspace(t *testing.T) (buildDir, reportPath, readmePath string) {
	t.Helper()
	root := t.TempDir()

	buildDir = filepath.Join(root, "build")
	require.NoError(t, os.MkdirAll(buildDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "coverage.txt"), []byte(coverageReport), 0644))

	reportPath = filepath.Join(root, "doc_coverage.json")
	require.NoError(t, os.WriteFile(reportPath, []byte(`{"documented": 3, "total": 4}`), 0644))

	readmePath = filepath.Join(root, "README.md")
	readme := "# Demo\n\n<!-- COVERAGE_BADGES_START -->\nstale\n<!-- COVERAGE_BADGES_END -->\n"
	require.NoError(t, os.WriteFile(readmePath, []byte(readme), 0644))
	return buildDir, reportPath, readmePath
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag on the shared rootCmd tree to its default
// so each runCLI invocation behaves like a fresh process.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, cmd := range append(rootCmd.Commands(), rootCmd) {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				require.NoError(t, sv.Replace(nil))
			} else {
				require.NoError(t, f.Value.Set(f.DefValue))
			}
			f.Changed = false
		})
	}
}

func TestUpdateCommand_RewritesBadges(t *testing.T) {
	buildDir, reportPath, readmePath := writeWorkspace(t)

	out, err := runCLI(t, "update",
		"--build-dir", buildDir,
		"--readme", readmePath,
		"--doc-source", "coverage-json="+reportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated coverage badges: doc=75%, test=92%")

	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	readme := string(content)
	assert.Contains(t, readme, "![Doc Coverage](https://img.shields.io/badge/doc%20coverage-75%25-yellowgreen)")
	assert.Contains(t, readme, "![Test Coverage](https://img.shields.io/badge/test%20coverage-92%25-green)")
	assert.NotContains(t, readme, "stale")
}

func TestUpdateCommand_SecondRunIsNoop(t *testing.T) {
	buildDir, reportPath, readmePath := writeWorkspace(t)
	args := []string{"update",
		"--build-dir", buildDir,
		"--readme", readmePath,
		"--doc-source", "coverage-json=" + reportPath}

	_, err := runCLI(t, args...)
	require.NoError(t, err)
	before, err := os.ReadFile(readmePath)
	require.NoError(t, err)

	out, err := runCLI(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Coverage badges already up to date.")

	after, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestUpdateCommand_InsertsBlockWithoutMarkers(t *testing.T) {
	buildDir, reportPath, readmePath := writeWorkspace(t)
	require.NoError(t, os.WriteFile(readmePath, []byte("# Demo\n\nBody.\n"), 0644))

	_, err := runCLI(t, "update",
		"--build-dir", buildDir,
		"--readme", readmePath,
		"--doc-source", "coverage-json="+reportPath)
	require.NoError(t, err)

	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<!-- COVERAGE_BADGES_START -->")
	assert.Contains(t, string(content), "<!-- COVERAGE_BADGES_END -->")
}

func TestUpdateCommand_MissingCoverageReport(t *testing.T) {
	_, reportPath, readmePath := writeWorkspace(t)
	emptyBuild := t.TempDir()

	_, err := runCLI(t, "update",
		"--build-dir", emptyBuild,
		"--readme", readmePath,
		"--doc-source", "coverage-json="+reportPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coverage report not found")
}
