// Package pipeline orchestrates a full generation run: load the analysis
// document, compose and write one feature per endpoint, extract the steps
// those features reference, index the step-definition store, and append
// stubs for the gap.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"bddgen/internal/analysis"
	"bddgen/internal/feature"
	"bddgen/internal/scan"
	"bddgen/internal/stepdef"
)

// Pipeline runs the generation stages against one analysis document.
// All stages are sequential; the step-definition store is the single point
// of cumulative state.
type Pipeline struct {
	OutputDir  string
	StepDefDir string
	Out        io.Writer    // operator-visible progress lines
	Log        *slog.Logger // collision warnings and diagnostics
}

// Generate runs the full pipeline and returns its report. Rerunning with an
// unchanged document and untouched store appends nothing: the first run's
// stubs are part of the index the second time around.
func (p Pipeline) Generate(docPath string) (*Report, error) {
	doc, err := analysis.Load(docPath)
	if err != nil {
		return nil, err
	}

	report := &Report{Document: docPath, Features: []string{}}

	// Both storage areas exist before any stage runs, so an empty document
	// still leaves real directories behind and a clean zero report.
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.MkdirAll(p.StepDefDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating step definition directory: %w", err)
	}

	if err := p.writeFeatures(doc, report); err != nil {
		return nil, err
	}
	if err := p.reconcileSteps(report); err != nil {
		return nil, err
	}

	fmt.Fprintln(p.output(), "All feature files and step definitions generated.")
	return report, nil
}

// Drift composes the document's features in memory and returns the steps
// whose registrations are missing from the store. Nothing is written; the
// output directory is not involved at all.
func (p Pipeline) Drift(docPath string) ([]stepdef.Step, error) {
	doc, err := analysis.Load(docPath)
	if err != nil {
		return nil, err
	}

	var texts []string
	for _, c := range doc.Controllers {
		for _, e := range c.Endpoints {
			f := feature.Compose(c.Name, e.Name, doc.Validations, doc.Exceptions, e.ServiceCalls)
			texts = append(texts, f.Render())
		}
	}

	extracted := stepdef.Extract(texts...)
	indexed, err := stepdef.Index(p.StepDefDir)
	if err != nil {
		return nil, err
	}
	return stepdef.Missing(extracted, indexed), nil
}

func (p Pipeline) writeFeatures(doc *analysis.Document, report *Report) error {
	w := feature.Writer{Dir: p.OutputDir}
	seen := make(map[string]string)

	for _, c := range doc.Controllers {
		for _, e := range c.Endpoints {
			f := feature.Compose(c.Name, e.Name, doc.Validations, doc.Exceptions, e.ServiceCalls)

			name := feature.Filename(c.Name, e.Name)
			source := c.Name + "/" + e.Name
			if prior, ok := seen[name]; ok {
				warning := fmt.Sprintf("feature path collision: %s and %s both derive %s; the later overwrites the earlier", prior, source, name)
				report.Warnings = append(report.Warnings, warning)
				p.logger().Warn("feature path collision",
					"path", name, "earlier", prior, "later", source)
			}
			seen[name] = source

			path, err := w.Write(c.Name, e.Name, f)
			if err != nil {
				return err
			}
			report.Features = append(report.Features, path)
			fmt.Fprintf(p.output(), "Generated: %s\n", path)
		}
	}
	return nil
}

func (p Pipeline) reconcileSteps(report *Report) error {
	texts, err := p.readFeatures()
	if err != nil {
		return err
	}

	extracted := stepdef.Extract(texts...)
	indexed, err := stepdef.Index(p.StepDefDir)
	if err != nil {
		return err
	}
	report.StepsExtracted = len(extracted)
	report.StepsIndexed = len(indexed)

	stubs, collisions := stepdef.BuildStubs(stepdef.Missing(extracted, indexed))
	for _, c := range collisions {
		warning := fmt.Sprintf("identifier collision: %q and %q both normalize to %s; the later gets a hash suffix", c.First, c.Second, c.Identifier)
		report.Warnings = append(report.Warnings, warning)
		p.logger().Warn("identifier collision",
			"identifier", c.Identifier, "first", c.First.String(), "second", c.Second.String())
	}

	w := stepdef.Writer{Dir: p.StepDefDir}
	n, err := w.Append(stubs)
	if err != nil {
		return err
	}
	report.StubsAdded = n

	if n == 0 {
		fmt.Fprintln(p.output(), "All step definitions already exist.")
	} else {
		report.StorePath = w.StorePath()
		fmt.Fprintf(p.output(), "Added %d new step definitions to %s\n", n, w.StorePath())
	}
	return nil
}

// readFeatures returns the text of every feature file in the output
// directory, flat, in sorted name order. The aggregate deliberately includes
// features left by earlier runs: reconciliation covers the directory's
// current contents, not just this run's output.
func (p Pipeline) readFeatures() ([]string, error) {
	files, err := scan.Files(p.OutputDir, scan.Options{Extensions: []string{feature.Ext}})
	if err != nil {
		return nil, fmt.Errorf("listing feature files: %w", err)
	}

	texts := make([]string, 0, len(files))
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(p.OutputDir, rel))
		if err != nil {
			return nil, fmt.Errorf("reading feature %s: %w", rel, err)
		}
		texts = append(texts, string(data))
	}
	return texts, nil
}

func (p Pipeline) output() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p Pipeline) logger() *slog.Logger {
	if p.Log == nil {
		return slog.Default()
	}
	return p.Log
}
