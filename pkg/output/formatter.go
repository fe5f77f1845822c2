// Package output renders resolved EditorConfig property maps to a
// writer, in the handful of formats the command-line front end supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/dobbo-ca/editorconfig-core-go/pkg/econfig"
)

// Format selects how Print renders its results.
type Format string

const (
	FormatDefault Format = "default"
	FormatTabular Format = "tabular"
	FormatJSON    Format = "json"
)

// Result pairs a resolved property map with the target path it was
// resolved for, so multi-target invocations can label each block.
type Result struct {
	Path       string
	Properties *econfig.PropertyMap
}

// Formatter renders a slice of Results in a configured Format.
type Formatter struct {
	format Format
}

// NewFormatter builds a Formatter for format. An unrecognized format
// falls back to FormatDefault.
func NewFormatter(format Format) *Formatter {
	switch format {
	case FormatTabular, FormatJSON:
		return &Formatter{format: format}
	default:
		return &Formatter{format: FormatDefault}
	}
}

// Print writes results to w. When printing more than one result, the
// default format prefixes each block with "[path]" the way the reference
// CLI does. The tabular format always starts each block with the path,
// shortened to the output width, on a line of its own.
func (f *Formatter) Print(w io.Writer, results []Result) {
	switch f.format {
	case FormatJSON:
		f.printJSON(w, results)
	case FormatTabular:
		f.printTabular(w, results)
	default:
		f.printDefault(w, results)
	}
}

func (f *Formatter) printDefault(w io.Writer, results []Result) {
	multi := len(results) > 1
	for i, r := range results {
		if multi {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "[%s]\n", r.Path)
		}
		for _, key := range r.Properties.Keys() {
			value, _ := r.Properties.Get(key)
			fmt.Fprintf(w, "%s=%s\n", key, value)
		}
	}
}

// printTabular lays out each result as an aligned key/value table,
// sizing the path header to the terminal width where one is available
// and falling back to a conservative default otherwise.
func (f *Formatter) printTabular(w io.Writer, results []Result) {
	width := 80
	if fd, ok := w.(interface{ Fd() uintptr }); ok && term.IsTerminal(int(fd.Fd())) {
		if tw, _, err := term.GetSize(int(fd.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", truncatePath(r.Path, width))
		keys := r.Properties.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			value, _ := r.Properties.Get(key)
			fmt.Fprintf(tw, "\t%s\t%s\n", key, value)
		}
	}
	tw.Flush()
}

func (f *Formatter) printJSON(w io.Writer, results []Result) {
	type entry = map[string]string

	out := make(map[string]entry, len(results))
	for _, r := range results {
		e := make(entry, r.Properties.Len())
		for _, key := range r.Properties.Keys() {
			v, _ := r.Properties.Get(key)
			e[key] = v
		}
		out[r.Path] = e
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

// truncatePath shortens path to fit within width columns, eliding the
// middle of the path rather than wrapping, matching the shortening
// strategy the reference tabular formatter used for long paths.
func truncatePath(path string, width int) string {
	if width <= 0 || len(path) <= width {
		return path
	}
	if width < 5 {
		return path[:width]
	}
	keep := width - 3
	head := keep / 2
	tail := keep - head
	return path[:head] + "..." + path[len(path)-tail:]
}
