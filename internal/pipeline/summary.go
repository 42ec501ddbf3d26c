package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"bddgen/internal/analysis"
	"bddgen/internal/feature"
)

// Summary describes what a document would generate, without touching
// storage.
type Summary struct {
	Controllers int              `json:"controllers"`
	Endpoints   int              `json:"endpoints"`
	Validations int              `json:"validations"`
	Exceptions  int              `json:"exceptions"`
	Features    []FeatureSummary `json:"features"`
}

// FeatureSummary counts the scenarios and steps one endpoint's feature
// would contain.
type FeatureSummary struct {
	Controller string `json:"controller"`
	Endpoint   string `json:"endpoint"`
	File       string `json:"file"`
	Scenarios  int    `json:"scenarios"`
	Steps      int    `json:"steps"`
}

// Summarize composes every feature in memory and tallies it.
func Summarize(doc *analysis.Document) Summary {
	s := Summary{
		Controllers: len(doc.Controllers),
		Endpoints:   doc.EndpointCount(),
		Validations: len(doc.Validations),
		Exceptions:  len(doc.Exceptions),
		Features:    []FeatureSummary{},
	}

	for _, c := range doc.Controllers {
		for _, e := range c.Endpoints {
			f := feature.Compose(c.Name, e.Name, doc.Validations, doc.Exceptions, e.ServiceCalls)
			steps := 0
			for _, sc := range f.Scenarios {
				steps += len(sc.Steps)
			}
			s.Features = append(s.Features, FeatureSummary{
				Controller: c.Name,
				Endpoint:   e.Name,
				File:       feature.Filename(c.Name, e.Name),
				Scenarios:  len(f.Scenarios),
				Steps:      steps,
			})
		}
	}
	return s
}

// RenderMarkdown renders the summary as a Markdown document.
func (s Summary) RenderMarkdown() string {
	var b strings.Builder

	b.WriteString(renderHeader(1, "Analysis Overview"))
	b.WriteString(fmt.Sprintf("- **Controllers**: %d\n", s.Controllers))
	b.WriteString(fmt.Sprintf("- **Endpoints**: %d\n", s.Endpoints))
	b.WriteString(fmt.Sprintf("- **Validations**: %d\n", s.Validations))
	b.WriteString(fmt.Sprintf("- **Exceptions**: %d\n", s.Exceptions))
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Features"))
	rows := make([][]string, 0, len(s.Features))
	for _, f := range s.Features {
		rows = append(rows, []string{
			f.Controller,
			f.Endpoint,
			strconv.Itoa(f.Scenarios),
			strconv.Itoa(f.Steps),
			f.File,
		})
	}
	b.WriteString(renderTable([]string{"Controller", "Endpoint", "Scenarios", "Steps", "File"}, rows))

	return b.String()
}
