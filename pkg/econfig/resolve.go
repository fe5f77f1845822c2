package econfig

import (
	"path/filepath"

	"github.com/dobbo-ca/editorconfig-core-go/pkg/glob"
	"github.com/dobbo-ca/editorconfig-core-go/pkg/ini"
)

type resolveOptions struct {
	confFilename string
	version      [3]int
}

// Option configures a single Resolve call.
type Option func(*resolveOptions)

// WithConfFilename overrides the configuration file name searched for at
// each ancestor directory. The default is DefaultConfFilename.
func WithConfFilename(name string) Option {
	return func(o *resolveOptions) {
		if name != "" {
			o.confFilename = name
		}
	}
}

// WithVersion pins the version this Resolve call reports itself as,
// gating version-dependent canonicalization behavior and allowing
// callers to reject requests for a newer implementation than they
// support.
func WithVersion(major, minor, patch int) Option {
	return func(o *resolveOptions) {
		o.version = [3]int{major, minor, patch}
	}
}

// Resolve locates every .editorconfig file along path's ancestor chain,
// merges the declarations of every section whose pattern matches path,
// and returns the canonicalized, validated result.
//
// path must be absolute. Resolve performs no caching across calls and
// mutates no shared state beyond pkg/glob's optional pattern cache, whose
// presence is not observable in the result.
func Resolve(path string, opts ...Option) (*PropertyMap, error) {
	if !filepath.IsAbs(path) {
		return nil, &PathError{Path: path}
	}

	options := resolveOptions{confFilename: DefaultConfFilename, version: Version}
	for _, opt := range opts {
		opt(&options)
	}

	if versionGreater(options.version, Version) {
		return nil, &VersionError{Requested: options.version, Supported: Version}
	}

	target := filepath.ToSlash(path)
	acc := newPropertyMap()
	sources := map[string]string{}

	for _, dir := range ancestorDirs(filepath.Dir(target)) {
		confPath := filepath.ToSlash(filepath.Join(dir, options.confFilename))

		file, err := ini.ParseFile(confPath)
		if err != nil {
			var perr *ini.ParseError
			if ok := asParseError(err, &perr); ok {
				return nil, &ParseError{Path: perr.Path, Line: perr.Line, Msg: perr.Msg}
			}
			return nil, err
		}

		fileMap := newPropertyMap()
		for _, sec := range file.Sections {
			pattern := glob.CompileCached(sec.Header, dir)
			if !pattern.Match(target) {
				continue
			}
			for _, decl := range sec.Decls {
				fileMap.Set(decl.Key, decl.Value)
			}
		}

		for _, key := range fileMap.Keys() {
			if acc.Has(key) {
				continue
			}
			v, _ := fileMap.Get(key)
			acc.Set(key, v)
			sources[key] = confPath
		}

		if file.Root {
			break
		}
	}

	canonicalize(acc, options.version)

	if err := validate(acc, sources, target); err != nil {
		return nil, err
	}

	return acc, nil
}

// ancestorDirs returns dir and every one of its parents up to the
// filesystem root, nearest first.
func ancestorDirs(dir string) []string {
	dir = filepath.ToSlash(dir)
	var dirs []string
	for {
		dirs = append(dirs, dir)
		parent := filepath.ToSlash(filepath.Dir(dir))
		if parent == dir {
			break
		}
		dir = parent
	}
	return dirs
}

func versionGreater(a, b [3]int) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// asParseError is a small indirection so resolve.go does not need a
// direct "errors" import solely for this one type switch.
func asParseError(err error, target **ini.ParseError) bool {
	if perr, ok := err.(*ini.ParseError); ok {
		*target = perr
		return true
	}
	return false
}
