package readme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	docBadge  = "![Doc Coverage](https://img.shields.io/badge/doc%20coverage-91%25-green)"
	testBadge = "![Test Coverage](https://img.shields.io/badge/test%20coverage-92%25-green)"
)

func block() string {
	return strings.Join([]string{StartMarker, docBadge, testBadge, EndMarker}, "\n")
}

func TestPatch_ReplacesMarkerBlock(t *testing.T) {
	content := "# Project\n\n" + StartMarker + "\nstale line one\nstale line two\n" + EndMarker + "\n\nBody text.\n"

	updated, changed := Patch(content, docBadge, testBadge)
	assert.True(t, changed)
	assert.Equal(t, "# Project\n\n"+block()+"\n\nBody text.\n", updated)
}

func TestPatch_ReplacesOnlyFirstBlock(t *testing.T) {
	content := StartMarker + "\nold\n" + EndMarker + "\n\n" + StartMarker + "\nsecond\n" + EndMarker + "\n"

	updated, changed := Patch(content, docBadge, testBadge)
	assert.True(t, changed)
	assert.Equal(t, block()+"\n\n"+StartMarker+"\nsecond\n"+EndMarker+"\n", updated)
}

func TestPatch_InsertsAfterLastBadgeLine(t *testing.T) {
	content := "# Project\n" +
		"[![CI](https://example.com/ci.svg)](https://example.com/ci)\n" +
		"![License](https://example.com/license.svg)\n" +
		"\n" +
		"Description.\n"

	updated, changed := Patch(content, docBadge, testBadge)
	assert.True(t, changed)
	want := "# Project\n" +
		"[![CI](https://example.com/ci.svg)](https://example.com/ci)\n" +
		"![License](https://example.com/license.svg)\n" +
		block() + "\n" +
		"\n" +
		"Description.\n"
	assert.Equal(t, want, updated)
}

func TestPatch_InsertsAtTopWithoutBadges(t *testing.T) {
	content := "# Project\n\nNo badges here.\n"

	updated, changed := Patch(content, docBadge, testBadge)
	assert.True(t, changed)
	assert.Equal(t, block()+"\n# Project\n\nNo badges here.\n", updated)
}

func TestPatch_EmptyContent(t *testing.T) {
	updated, changed := Patch("", docBadge, testBadge)
	assert.True(t, changed)
	assert.Equal(t, block(), updated, "no trailing newline is added when the input had none")
}

func TestPatch_PreservesMissingTrailingNewline(t *testing.T) {
	content := "# Project\nlast line"

	updated, changed := Patch(content, docBadge, testBadge)
	assert.True(t, changed)
	assert.False(t, strings.HasSuffix(updated, "\n"))
}

func TestPatch_Idempotent(t *testing.T) {
	content := "# Project\n\n" + StartMarker + "\nstale\n" + EndMarker + "\n"

	once, changed := Patch(content, docBadge, testBadge)
	require.True(t, changed)

	twice, changedAgain := Patch(once, docBadge, testBadge)
	assert.False(t, changedAgain)
	assert.Equal(t, once, twice)
}

func TestUpdateFile_WritesOnlyOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# Project\n"), 0644))

	changed, err := UpdateFile(path, docBadge, testBadge)
	require.NoError(t, err)
	assert.True(t, changed)

	before, err := os.Stat(path)
	require.NoError(t, err)

	changed, err = UpdateFile(path, docBadge, testBadge)
	require.NoError(t, err)
	assert.False(t, changed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime(), "unchanged README must not be rewritten")
}

func TestUpdateFile_MissingReadme(t *testing.T) {
	_, err := UpdateFile(filepath.Join(t.TempDir(), "README.md"), docBadge, testBadge)
	assert.Error(t, err)
}
