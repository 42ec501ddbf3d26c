package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateStore persists the last run's report beneath a base directory.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory (e.g. .bddgen).
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) reportPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// ReadLastRun loads the last run's report. A store that was never written
// yields (nil, nil): clean state, not an error.
func (s *StateStore) ReadLastRun() (*Report, error) {
	f, err := os.Open(s.reportPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run report: %w", err)
	}
	defer func() { _ = f.Close() }()

	var report Report
	if err := json.NewDecoder(f).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding last run report: %w", err)
	}
	return &report, nil
}

// WriteLastRun saves the run report.
func (s *StateStore) WriteLastRun(report *Report) (err error) {
	path := s.reportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}
