package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobbo-ca/editorconfig-core-go/pkg/econfig"
)

func TestPrintDefaultSingleResultHasNoPathHeader(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatDefault)
	props := mustProps(t, "indent_style=tab\nindent_size=4\n")
	f.Print(&buf, []Result{{Path: "/a/main.go", Properties: props}})

	out := buf.String()
	assert.NotContains(t, out, "[/a/main.go]")
	assert.Contains(t, out, "indent_style=tab")
	assert.Contains(t, out, "indent_size=4")
}

func TestPrintDefaultMultipleResultsHavePathHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatDefault)
	props := mustProps(t, "indent_style=tab\n")
	f.Print(&buf, []Result{
		{Path: "/a/main.go", Properties: props},
		{Path: "/a/lib.go", Properties: props},
	})

	out := buf.String()
	assert.Contains(t, out, "[/a/main.go]")
	assert.Contains(t, out, "[/a/lib.go]")
}

func TestPrintJSONEncodesPerPathObject(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)
	props := mustProps(t, "indent_style=tab\n")
	f.Print(&buf, []Result{{Path: "/a/main.go", Properties: props}})

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tab", decoded["/a/main.go"]["indent_style"])
}

func TestTruncatePathKeepsWithinWidth(t *testing.T) {
	long := "/a/very/deeply/nested/path/to/some/file/that/is/quite/long/indeed.go"
	got := truncatePath(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.Contains(t, got, "...")
}

func TestTruncatePathLeavesShortPathAlone(t *testing.T) {
	assert.Equal(t, "/a/b.go", truncatePath("/a/b.go", 80))
}

// mustProps builds a *econfig.PropertyMap for format tests by resolving a
// single-section file against a scratch directory, avoiding any need for
// econfig to expose a construction path beyond its public Resolve entry
// point.
func mustProps(t *testing.T, body string) *econfig.PropertyMap {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/.editorconfig", []byte("root = true\n\n[*]\n"+body), 0o644))
	props, err := econfig.Resolve(dir + "/main.go")
	require.NoError(t, err)
	return props
}
