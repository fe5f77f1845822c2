package ini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionsAndRoot(t *testing.T) {
	src := `root = true

[*]
charset = utf-8
end_of_line = lf

[*.go]
indent_style = tab
indent_size = 4
`
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	assert.True(t, f.Root)
	require.Len(t, f.Sections, 2)

	assert.Equal(t, "*", f.Sections[0].Header)
	v, ok := f.Sections[0].Get("charset")
	require.True(t, ok)
	assert.Equal(t, "utf-8", v)

	assert.Equal(t, "*.go", f.Sections[1].Header)
	v, ok = f.Sections[1].Get("indent_size")
	require.True(t, ok)
	assert.Equal(t, "4", v)
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	src := "; a comment\n# another\n\n[*]\nfoo = bar\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	v, ok := f.Sections[0].Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestParseColonSeparator(t *testing.T) {
	src := "[*]\nfoo : bar\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	v, ok := f.Sections[0].Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", v)
}

func TestParseKeysLowercasedDuplicatesLastWins(t *testing.T) {
	src := "[*]\nINDENT_STYLE = tab\nindent_style = space\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	require.Len(t, f.Sections[0].Decls, 1)
	v, _ := f.Sections[0].Get("indent_style")
	assert.Equal(t, "space", v)
}

func TestParseRootCaseInsensitive(t *testing.T) {
	src := "ROOT = TRUE\n[*]\nfoo=bar\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	assert.True(t, f.Root)
}

func TestParseMalformedHeaderIsParseError(t *testing.T) {
	src := "[unterminated\nfoo = bar\n"
	_, err := Parse(strings.NewReader(src), "broken.editorconfig")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "broken.editorconfig", perr.Path)
	assert.Equal(t, 1, perr.Line)
}

func TestParseEscapedClosingBracketInHeader(t *testing.T) {
	src := `[foo\]bar]` + "\nbaz=qux\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	// The backslash is kept verbatim: it only tells the scanner that this
	// ']' doesn't close the header, it is not interpreted away here.
	assert.Equal(t, `foo\]bar`, f.Sections[0].Header)
}

func TestParseEscapedNonBracketCharacterSurvivesInHeader(t *testing.T) {
	src := `[\*.txt]` + "\nbaz=qux\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	assert.Equal(t, `\*.txt`, f.Sections[0].Header)
}

func TestParseMissingFileYieldsEmptyFile(t *testing.T) {
	f, err := ParseFile("/no/such/path/.editorconfig")
	require.NoError(t, err)
	assert.False(t, f.Root)
	assert.Empty(t, f.Sections)
}

func TestParseBOMIsStripped(t *testing.T) {
	src := "\xef\xbb\xbf[*]\nfoo=bar\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	assert.Equal(t, "*", f.Sections[0].Header)
}

func TestParseOversizedLineSkipped(t *testing.T) {
	longValue := strings.Repeat("x", 1200)
	src := "[*]\nfoo=" + longValue + "\nbar=baz\n"
	f, err := Parse(strings.NewReader(src), "test")
	require.NoError(t, err)
	_, ok := f.Sections[0].Get("foo")
	assert.False(t, ok)
	v, ok := f.Sections[0].Get("bar")
	require.True(t, ok)
	assert.Equal(t, "baz", v)
}
