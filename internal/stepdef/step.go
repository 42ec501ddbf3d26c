// Package stepdef reconciles the behavioral steps referenced by generated
// features against the step definitions already implemented in a store,
// and renders minimal stubs for the gap.
package stepdef

// Step is the identity used for reconciliation: a keyword plus step text.
// For steps extracted from feature text the text is normalized (placeholder
// tokens removed); for registrations read back from the store the text is
// the registered pattern exactly as written. The two sides compare equal
// when the text after the keyword equals the pattern.
type Step struct {
	Keyword string
	Text    string
}

func (s Step) String() string {
	return s.Keyword + " " + s.Text
}

// keywords are the recognized step keywords, in canonical order.
var keywords = []string{"Given", "When", "Then"}
