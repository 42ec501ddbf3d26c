package stepdef

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// StoreFilename is the single file within the store that receives appended
// stubs.
const StoreFilename = "step_definitions.go"

// scaffold makes the store file a valid Go source unit from its first
// write. Appended registration clauses feed the bindings slice; a test
// harness ranges over it to wire steps to its scenario runner.
const scaffold = `// Package stepdefs holds generated step definition stubs.
//
// Each appended stub pairs a registration clause with an empty
// implementation. Fill in the bodies in place; generation only ever appends
// missing definitions and never rewrites existing ones.
package stepdefs

import "errors"

// errNotImplemented marks stubs whose bodies have not been filled in yet.
var errNotImplemented = errors.New("step not implemented")

type stepFunc func() error

type binding struct {
	keyword string
	pattern string
	impl    stepFunc
}

// bindings collects every registered step in file order.
var bindings []binding

func register(keyword, pattern string, impl stepFunc) bool {
	bindings = append(bindings, binding{keyword: keyword, pattern: pattern, impl: impl})
	return true
}
`

// Writer appends rendered stubs to the store's designated file.
type Writer struct {
	Dir string
}

// StorePath returns the file that receives appended stubs.
func (w Writer) StorePath() string {
	return filepath.Join(w.Dir, StoreFilename)
}

// Append renders each stub and appends it to the store file, creating the
// directory and the scaffold header on first use. It returns the number of
// stubs appended. Zero stubs means zero writes: the store is not touched,
// not even created.
func (w Writer) Append(stubs []Stub) (n int, err error) {
	if len(stubs) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating step definition directory: %w", err)
	}

	path := w.StorePath()

	var buf bytes.Buffer
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		buf.WriteString(scaffold)
	} else if statErr != nil {
		return 0, fmt.Errorf("checking step definition store: %w", statErr)
	}

	for _, stub := range stubs {
		rendered, renderErr := stub.Render()
		if renderErr != nil {
			return 0, renderErr
		}
		buf.WriteString("\n")
		buf.WriteString(rendered)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("opening step definition store: %w", err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return 0, fmt.Errorf("appending step definitions: %w", err)
	}

	return len(stubs), nil
}
