package stepdef

import (
	"regexp"
	"strings"
)

// placeholderPattern matches an angle-bracket placeholder token together
// with the single whitespace character preceding it.
var placeholderPattern = regexp.MustCompile(`\s<[^>]+>`)

// Normalize parses one raw feature line into its step identity. It reports
// false for lines that do not begin with a recognized keyword followed by a
// space (titles, scenario headers, blank lines). Placeholder tokens are
// removed, so parametrized steps that differ only in placeholder content
// share one identity.
func Normalize(line string) (Step, bool) {
	trimmed := strings.TrimSpace(line)
	for _, keyword := range keywords {
		if !strings.HasPrefix(trimmed, keyword+" ") {
			continue
		}
		cleaned := placeholderPattern.ReplaceAllString(trimmed, "")
		text := strings.TrimPrefix(strings.TrimPrefix(cleaned, keyword), " ")
		return Step{Keyword: keyword, Text: text}, true
	}
	return Step{}, false
}

// Extract returns the set of distinct normalized steps referenced by the
// given feature texts. The result is order-independent: the same texts
// always yield the same set.
func Extract(texts ...string) map[Step]bool {
	steps := make(map[Step]bool)
	for _, text := range texts {
		for _, line := range strings.Split(text, "\n") {
			if step, ok := Normalize(line); ok {
				steps[step] = true
			}
		}
	}
	return steps
}
