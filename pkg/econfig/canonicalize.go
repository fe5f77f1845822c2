package econfig

import "strings"

// lowercasedOptions lists the options whose values are folded to
// lower-case before validation, matching the reference implementation's
// preprocess_values table. Unknown options (anything not in this set)
// are passed through verbatim, case included.
var lowercasedOptions = []string{
	"end_of_line",
	"indent_style",
	"indent_size",
	"insert_final_newline",
	"trim_trailing_whitespace",
	"charset",
}

// canonicalize applies the fixed post-merge normalization rules: folding
// known option values to lower-case, then deriving indent_size/tab_width
// from one another where the author only specified one of the pair.
func canonicalize(m *PropertyMap, version [3]int) {
	for _, key := range lowercasedOptions {
		if v, ok := m.Get(key); ok {
			m.Set(key, strings.ToLower(v))
		}
	}

	indentStyle, hasIndentStyle := m.Get("indent_style")
	_, hasIndentSize := m.Get("indent_size")
	if hasIndentStyle && indentStyle == "tab" && !hasIndentSize && !versionLess(version, [3]int{0, 10, 0}) {
		m.Set("indent_size", "tab")
	}

	indentSize, hasIndentSize := m.Get("indent_size")
	tabWidth, hasTabWidth := m.Get("tab_width")

	if hasIndentSize && indentSize != "tab" && !hasTabWidth {
		m.Set("tab_width", indentSize)
	}
	if hasIndentSize && indentSize == "tab" && hasTabWidth {
		m.Set("indent_size", tabWidth)
	}
}

func versionLess(a, b [3]int) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
