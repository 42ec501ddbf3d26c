// Package scan lists files beneath a root directory with deterministic
// ordering and segment-aware filtering.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Options defines criteria for selecting files under a root.
type Options struct {
	// ExcludeDirs is a list of directory names to exclude.
	// Matching is segment-aware: "testdata" excludes "testdata/a.go" and
	// "pkg/testdata/b.go", but not "testdata_old/c.go".
	ExcludeDirs []string

	// Extensions is a list of file extensions to include (e.g. ".go").
	// If empty, all extensions are included.
	Extensions []string

	// Recursive controls whether subdirectories are visited.
	Recursive bool
}

// DefaultExcludeDirs returns the directory names skipped by default when
// scanning a step-definition store.
func DefaultExcludeDirs() []string {
	return []string{
		".git",
		"testdata",
		"node_modules",
		"vendor",
	}
}

// Files walks root and returns the root-relative paths of matching files,
// sorted lexicographically. A nonexistent root propagates as an error;
// tolerating that is the caller's contract, not this package's.
func Files(root string, opts Options) ([]string, error) {
	var collected []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if !opts.Recursive || isExcluded(d.Name(), opts.ExcludeDirs) {
				return fs.SkipDir
			}
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		collected = append(collected, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Filter(collected, opts), nil
}

// Filter applies the options to a list of slash-separated paths.
// It returns a new sorted slice.
func Filter(paths []string, opts Options) []string {
	if len(paths) == 0 {
		return nil
	}

	var filtered []string
	for _, path := range paths {
		if shouldExclude(path, opts.ExcludeDirs) {
			continue
		}
		if !matchesExtension(path, opts.Extensions) {
			continue
		}
		filtered = append(filtered, path)
	}

	sort.Strings(filtered)
	return filtered
}

// shouldExclude returns true if any path segment matches an excluded name.
func shouldExclude(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		if isExcluded(part, excludes) {
			return true
		}
	}
	return false
}

func isExcluded(name string, excludes []string) bool {
	for _, exclude := range excludes {
		if name == exclude {
			return true
		}
	}
	return false
}

// matchesExtension returns true when no extensions are configured or the
// path ends with one of them.
func matchesExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
