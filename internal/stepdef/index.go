package stepdef

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"bddgen/internal/scan"
)

// The store is a directory of Go source files. A registration clause binds a
// keyword and a literal pattern on a single line, in one of two forms:
//
//	register("Given", `pattern`, impl)   (the generated form)
//	sc.Given(`pattern`, impl)            (hand-written suites)
//
// Either form also accepts a double-quoted pattern. The pattern must not
// contain its own quoting delimiter; escape sequences are not interpreted.
const backtick = "`"

var registrationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`register\(\s*"(Given|When|Then)"\s*,\s*(?:` +
		backtick + `([^` + backtick + `]+)` + backtick + `|"([^"]+)")`),
	regexp.MustCompile(`\.(Given|When|Then)\(\s*(?:` +
		backtick + `([^` + backtick + `]+)` + backtick + `|"([^"]+)")`),
}

// Index scans the store rooted at root and returns the set of registered
// (keyword, pattern) pairs. Non-matching files and non-matching content are
// ignored. A root that does not exist yet contributes an empty set rather
// than an error: on a first run the store legitimately has not been created.
func Index(root string) (map[Step]bool, error) {
	files, err := scan.Files(root, scan.Options{
		Recursive:   true,
		ExcludeDirs: scan.DefaultExcludeDirs(),
		Extensions:  []string{".go"},
	})
	if err != nil {
		if os.IsNotExist(err) {
			return map[Step]bool{}, nil
		}
		return nil, fmt.Errorf("scanning step definition store: %w", err)
	}

	registered := make(map[Step]bool)
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return nil, fmt.Errorf("reading step definition file %s: %w", rel, err)
		}
		addRegistrations(registered, string(data))
	}
	return registered, nil
}

func addRegistrations(dst map[Step]bool, src string) {
	for _, re := range registrationPatterns {
		for _, m := range re.FindAllStringSubmatch(src, -1) {
			pattern := m[2]
			if pattern == "" {
				pattern = m[3]
			}
			if pattern == "" {
				continue
			}
			dst[Step{Keyword: m[1], Text: pattern}] = true
		}
	}
}
