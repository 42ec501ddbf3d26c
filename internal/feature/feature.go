// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feature composes and renders the BDD scenario documents derived
// from an analysis document, one feature per endpoint.
package feature

import "strings"

// Recognized step keywords.
const (
	KeywordGiven = "Given"
	KeywordWhen  = "When"
	KeywordThen  = "Then"
)

// Feature is the derived scenario document for one endpoint.
// It exists only in memory between composition and rendering; the rendered
// text is the persistent form.
type Feature struct {
	Title     string
	Scenarios []Scenario
}

// Scenario is a named sequence of step lines.
type Scenario struct {
	Name  string
	Steps []StepLine
}

// StepLine is one Given/When/Then clause.
type StepLine struct {
	Keyword string
	Text    string
}

// Render serializes the feature: a title line, a blank line, then each
// scenario as a two-space-indented header followed by its four-space-indented
// steps, with a blank line closing every scenario block. The result always
// ends with a trailing newline.
func (f Feature) Render() string {
	var b strings.Builder

	b.WriteString("Feature: " + f.Title + "\n\n")

	for _, s := range f.Scenarios {
		b.WriteString("  Scenario: " + s.Name + "\n")
		for _, step := range s.Steps {
			b.WriteString("    " + step.Keyword + " " + step.Text + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
