package econfig

var enumDomains = map[string][]string{
	"indent_style":             {"tab", "space"},
	"end_of_line":              {"lf", "cr", "crlf"},
	"charset":                  {"latin1", "utf-8", "utf-8-bom", "utf-16be", "utf-16le"},
	"trim_trailing_whitespace": {"true", "false"},
	"insert_final_newline":     {"true", "false"},
}

// validate checks every known option against the EditorConfig domain
// table, returning an InvalidValueError naming the originating file for
// the first violation found, in key order.
func validate(m *PropertyMap, sources map[string]string, fallbackPath string) error {
	for _, key := range m.Keys() {
		value, _ := m.Get(key)

		if domain, ok := enumDomains[key]; ok {
			if !contains(domain, value) {
				return invalidValueError(sources, fallbackPath, key, value)
			}
			continue
		}

		if key == "indent_size" || key == "tab_width" {
			if value == "tab" && key == "indent_size" {
				continue
			}
			if !isPositiveInteger(value) {
				return invalidValueError(sources, fallbackPath, key, value)
			}
		}
	}
	return nil
}

func invalidValueError(sources map[string]string, fallbackPath, key, value string) error {
	path := sources[key]
	if path == "" {
		path = fallbackPath
	}
	return &InvalidValueError{
		Path:    path,
		Option:  key,
		Value:   value,
		Message: "invalid value " + quote(value) + " for option " + quote(key),
	}
}

func contains(domain []string, value string) bool {
	for _, d := range domain {
		if d == value {
			return true
		}
	}
	return false
}

// isPositiveInteger reports whether s is one or more ASCII digits, with
// no sign or leading-zero restriction — matching the reference
// implementation's "^\d+$" check, not a numeric-value constraint.
func isPositiveInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func quote(s string) string {
	return "\"" + s + "\""
}
