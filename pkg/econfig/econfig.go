// Package econfig implements the EditorConfig cascade resolver: given an
// absolute target path, it walks the ancestor directory chain, parses
// every applicable .editorconfig file, matches section headers against
// the target with pkg/glob, merges matching declarations in cascade
// order, and canonicalizes and validates the result.
//
// Resolve is the package's single entry point and is a pure function of
// its inputs and the filesystem's current contents: it applies no
// settings to an editor, never reads or writes the target file's
// contents, and caches nothing across calls beyond the optional,
// observationally-invisible pattern cache in pkg/glob.
package econfig

import (
	"fmt"
)

// Version is the implementation version reported to callers and compared
// against any version a caller pins with WithVersion.
var Version = [3]int{0, 17, 0}

// DefaultConfFilename is the configuration file name used when no
// WithConfFilename option overrides it.
const DefaultConfFilename = ".editorconfig"

// PropertyMap is an insertion-ordered mapping from lower-case option name
// to its resolved string value. Insertion order is kept in a slice of
// keys; values are looked up in a map keyed by option name.
type PropertyMap struct {
	keys   []string
	values map[string]string
}

func newPropertyMap() *PropertyMap {
	return &PropertyMap{values: make(map[string]string)}
}

// Set assigns value to key, preserving key's original insertion position
// if it was already present.
func (m *PropertyMap) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *PropertyMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key has been set.
func (m *PropertyMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key, if present.
func (m *PropertyMap) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the option names in insertion order.
func (m *PropertyMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len reports the number of properties set.
func (m *PropertyMap) Len() int {
	return len(m.keys)
}

// PathError is returned when the path given to Resolve is not absolute.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("input path must be absolute: %q", e.Path)
}

// VersionError is returned when a pinned version (WithVersion) is newer
// than Version.
type VersionError struct {
	Requested [3]int
	Supported [3]int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("required version %d.%d.%d is greater than supported version %d.%d.%d",
		e.Requested[0], e.Requested[1], e.Requested[2],
		e.Supported[0], e.Supported[1], e.Supported[2])
}

// ParseError re-exports pkg/ini's parse error so callers of this package
// need not import pkg/ini directly to type-assert on it.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// InvalidValueError is returned when a known option carries a value
// outside its permitted domain, e.g. indent_style set to something other
// than "tab" or "space".
type InvalidValueError struct {
	Path    string
	Option  string
	Value   string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}
