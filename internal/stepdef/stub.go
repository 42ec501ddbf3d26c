package stepdef

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Stub is one missing step rendered as an appendable definition.
type Stub struct {
	Step       Step
	Identifier string
}

// Collision records two distinct patterns whose derived identifiers
// collided. The first keeps the plain identifier; the second is
// disambiguated with a hash suffix.
type Collision struct {
	Identifier string
	First      Step
	Second     Step
}

// Missing returns the extracted steps not covered by the index, sorted by
// keyword then text so that stub output and collision detection are
// reproducible across runs.
func Missing(extracted, indexed map[Step]bool) []Step {
	var missing []Step
	for step := range extracted {
		if !indexed[step] {
			missing = append(missing, step)
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Keyword != missing[j].Keyword {
			return missing[i].Keyword < missing[j].Keyword
		}
		return missing[i].Text < missing[j].Text
	})
	return missing
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Identifier derives a function name from a step pattern: every run of
// non-alphanumeric characters collapses to a single underscore and the
// result is lowercased. A name that would not be a legal identifier (empty,
// or starting with a digit) gets a "step_" prefix so the store stays a
// valid source unit.
func Identifier(pattern string) string {
	id := strings.ToLower(nonAlnum.ReplaceAllString(pattern, "_"))
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		id = "step_" + id
	}
	return id
}

// BuildStubs assigns an identifier to each missing step. Distinct patterns
// can collapse to the same identifier; rather than letting the later one
// silently shadow the earlier, it is suffixed with the first eight hex
// characters of a hash of the full step, and the collision is reported so
// the caller can warn.
func BuildStubs(missing []Step) ([]Stub, []Collision) {
	stubs := make([]Stub, 0, len(missing))
	var collisions []Collision
	seen := make(map[string]Step)

	for _, step := range missing {
		id := Identifier(step.Text)
		if prior, ok := seen[id]; ok {
			collisions = append(collisions, Collision{Identifier: id, First: prior, Second: step})
			id = id + "_" + shortHash(step)
		} else {
			seen[id] = step
		}
		stubs = append(stubs, Stub{Step: step, Identifier: id})
	}
	return stubs, collisions
}

func shortHash(step Step) string {
	sum := sha256.Sum256([]byte(step.String()))
	return hex.EncodeToString(sum[:4])
}

var errUnquotablePattern = errors.New("pattern mixes backtick and double-quote delimiters")

// Render produces the source text appended to the store for one stub: a
// registration clause binding the keyword and pattern, followed by an empty
// implementation returning the shared pending sentinel.
func (s Stub) Render() (string, error) {
	quoted, err := quotePattern(s.Step.Text)
	if err != nil {
		return "", fmt.Errorf("stub for %q: %w", s.Step.String(), err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "var _ = register(%q, %s, %s)\n\n", s.Step.Keyword, quoted, s.Identifier)
	fmt.Fprintf(&b, "func %s() error {\n", s.Identifier)
	b.WriteString("\treturn errNotImplemented\n")
	b.WriteString("}\n")
	return b.String(), nil
}

// quotePattern picks a quoting the index scan is guaranteed to read back:
// backticks normally, a plain double-quoted literal when the pattern itself
// contains a backtick. A pattern containing a backtick together with a
// double quote or backslash would need escape sequences the scan does not
// interpret, so it is rejected.
func quotePattern(pattern string) (string, error) {
	if !strings.Contains(pattern, backtick) {
		return backtick + pattern + backtick, nil
	}
	if strings.ContainsAny(pattern, `"\`) {
		return "", errUnquotablePattern
	}
	return `"` + pattern + `"`, nil
}
