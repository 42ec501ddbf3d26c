package pipeline

import (
	"fmt"
	"strings"
)

// Report summarizes one generation run.
// Matches the <state-dir>/last-run.json schema.
type Report struct {
	Document       string   `json:"document"`
	Features       []string `json:"features"`
	StepsExtracted int      `json:"steps_extracted"`
	StepsIndexed   int      `json:"steps_indexed"`
	StubsAdded     int      `json:"stubs_added"`
	StorePath      string   `json:"store_path,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// RenderMarkdown renders the report as a Markdown document, suitable for CI
// job summaries.
func (r *Report) RenderMarkdown() string {
	var b strings.Builder

	b.WriteString(renderHeader(1, "Generation Report"))
	b.WriteString(fmt.Sprintf("- **Document**: `%s`\n", r.Document))
	b.WriteString(fmt.Sprintf("- **Features written**: %d\n", len(r.Features)))
	b.WriteString(fmt.Sprintf("- **Steps extracted**: %d\n", r.StepsExtracted))
	b.WriteString(fmt.Sprintf("- **Steps already indexed**: %d\n", r.StepsIndexed))
	b.WriteString(fmt.Sprintf("- **Stubs added**: %d\n", r.StubsAdded))
	b.WriteString("\n")

	if len(r.Features) > 0 {
		b.WriteString(renderHeader(2, "Features"))
		b.WriteString(renderList(r.Features))
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString(renderHeader(2, "Warnings"))
		b.WriteString(renderList(r.Warnings))
	}

	return b.String()
}

func renderHeader(level int, text string) string {
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), text)
}

func renderList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return b.String()
}

// renderTable renders a Markdown table. Rows must already be in the order
// the caller wants shown.
func renderTable(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	return b.String()
}
