// SPDX-License-Identifier: AGPL-3.0-or-later

package feature

import (
	"fmt"
	"os"
	"path/filepath"
)

// Ext is the extension given to rendered feature files.
const Ext = ".feature"

// Filename derives the storage name for one endpoint's feature.
// Two (controller, endpoint) pairs can derive the same name; the caller is
// responsible for detecting that, the later write wins here.
func Filename(controllerName, endpointName string) string {
	return controllerName + "_" + endpointName + Ext
}

// Writer persists rendered features beneath a single output directory.
type Writer struct {
	Dir string
}

// Write renders f and stores it at Dir/<controller>_<endpoint>.feature,
// creating the directory if absent and unconditionally replacing any prior
// content. Generated features are always regenerated from the analysis
// document, never hand-edited. Returns the path written.
func (w Writer) Write(controllerName, endpointName string, f Feature) (string, error) {
	path := filepath.Join(w.Dir, Filename(controllerName, endpointName))
	if err := atomicWrite(path, []byte(f.Render())); err != nil {
		return "", err
	}
	return path, nil
}

// atomicWrite writes content to path via a temp file and rename, so readers
// never observe a half-written feature.
func atomicWrite(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "feature-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing feature content: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("moving temp file to %s: %w", path, err)
	}

	return nil
}
