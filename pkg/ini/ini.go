// Package ini reads a single .editorconfig file into an ordered sequence
// of sections, each a header plus an ordered key/value declaration list,
// following the EditorConfig file grammar: an optional preamble (where
// only "root = true" is recognized), then zero or more [header] sections
// of "key = value" / "key : value" declarations.
package ini

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineLength and maxSectionNameLength match the reference
// implementation's tolerance: a line or section name longer than this is
// silently skipped rather than treated as an error.
const (
	maxLineLength        = 1024
	maxSectionNameLength = 1024
)

// Decl is a single "key = value" declaration. Key is already lower-cased
// and trimmed; Value is trimmed but otherwise verbatim.
type Decl struct {
	Key   string
	Value string
}

// Section is a [header] block plus its ordered declarations. Header is
// stored verbatim and case-sensitively: section headers are globs, not
// identifiers.
type Section struct {
	Header string
	Decls  []Decl
}

// Get returns the value for key (already expected lower-case) and
// whether it was present, honoring last-write-wins for duplicate keys.
func (s *Section) Get(key string) (string, bool) {
	value, ok := "", false
	for _, d := range s.Decls {
		if d.Key == key {
			value, ok = d.Value, true
		}
	}
	return value, ok
}

// File is one parsed configuration file.
type File struct {
	Root     bool
	Sections []Section
}

// ParseError reports a syntactically malformed configuration file: a
// section header with no closing ']' before the end of its line.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// ParseFile parses path. A missing or unreadable file yields an empty
// *File and a nil error — absent configuration is not an error condition.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return &File{}, nil
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads r, attributing any ParseError to path for diagnostics.
func Parse(r io.Reader, path string) (*File, error) {
	reader := bufio.NewReader(stripBOM(r))

	file := &File{}
	var current *Section
	inPreamble := true
	lineNo := 0

	for {
		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			lineNo++
			if err := parseLine(file, &current, &inPreamble, strings.TrimSpace(strings.TrimRight(raw, "\r\n")), path, lineNo); err != nil {
				return nil, err
			}
		}
		if readErr != nil {
			break
		}
	}

	return file, nil
}

// parseLine applies one already-trimmed line to the in-progress file,
// updating current (the open section, if any) and inPreamble (whether a
// section header has been seen yet).
func parseLine(file *File, current **Section, inPreamble *bool, trimmed, path string, lineNo int) error {
	if trimmed == "" || strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
		return nil
	}
	if len(trimmed) > maxLineLength {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		header, err := parseHeader(trimmed, path, lineNo)
		if err != nil {
			return err
		}
		*inPreamble = false
		if len(header) > maxSectionNameLength {
			*current = nil
			return nil
		}
		file.Sections = append(file.Sections, Section{Header: header})
		*current = &file.Sections[len(file.Sections)-1]
		return nil
	}

	key, value, ok := parseDecl(trimmed)
	if !ok {
		return nil
	}
	key = strings.ToLower(key)

	if *inPreamble {
		if key == "root" {
			file.Root = strings.EqualFold(value, "true")
		}
		return nil
	}

	if *current != nil {
		setDecl(*current, key, value)
	}
	return nil
}

// parseHeader consumes a "[header]" line, taking the header content
// verbatim up to the first unescaped ']'. The backslash is kept in the
// output along with the character it precedes: it only tells this scanner
// that a following ']' does not close the header, it is not this layer's
// job to interpret escapes — that belongs to the pattern compiler, which
// needs the raw "\x" sequence intact. A line starting with '[' but missing
// its closing bracket is a ParseError.
func parseHeader(trimmed, path string, lineNo int) (string, error) {
	runes := []rune(trimmed)
	i := 1
	var b strings.Builder
	for i < len(runes) {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			b.WriteRune(c)
			b.WriteRune(runes[i+1])
			i += 2
			continue
		}
		if c == ']' {
			return b.String(), nil
		}
		b.WriteRune(c)
		i++
	}
	return "", &ParseError{Path: path, Line: lineNo, Msg: "section header missing closing ']'"}
}

// parseDecl splits "key = value" or "key : value" on the first '=' or
// ':' in the line; a backslash does not escape a separator. Lines with
// neither separator are not declarations
// and are ignored, matching reference tolerance.
func parseDecl(trimmed string) (key, value string, ok bool) {
	idx := strings.IndexAny(trimmed, "=:")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(trimmed[:idx])
	value = strings.TrimSpace(trimmed[idx+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// stripBOM wraps r so that a leading UTF-8 byte-order mark, if present, is
// transparently consumed rather than appearing as part of the first line.
// BOMOverride also recognizes UTF-16BE and UTF-16LE marks and then decodes
// the input as UTF-16; input without a mark is decoded as UTF-8, with any
// invalid byte sequence replaced by U+FFFD.
func stripBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

func setDecl(s *Section, key, value string) {
	for i := range s.Decls {
		if s.Decls[i].Key == key {
			s.Decls[i].Value = value
			return
		}
	}
	s.Decls = append(s.Decls, Decl{Key: key, Value: value})
}
