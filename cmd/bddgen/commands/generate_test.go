// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bddgen/cmd/bddgen/internal/clierr"
)

const healthDoc = `{
  "controllers": [
    {"name": "Health", "endpoints": [{"name": "ping", "service_calls": []}]}
  ],
  "dtos": [],
  "validations": [],
  "exceptions": []
}`

func writeDocFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "analysis.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocFile(t, dir, healthDoc)
	outputDir := filepath.Join(dir, "features")
	stepDefDir := filepath.Join(dir, "stepdefs")
	stateDir := filepath.Join(dir, ".bddgen")

	out, err := runCLI(t,
		"generate", doc,
		"--output-dir", outputDir,
		"--step-def-dir", stepDefDir,
		"--state-dir", stateDir,
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Generated: "+filepath.Join(outputDir, "Health_ping.feature"))
	assert.Contains(t, out, "Added 3 new step definitions to")
	assert.Contains(t, out, "All feature files and step definitions generated.")

	_, err = os.Stat(filepath.Join(stateDir, "last-run.json"))
	require.NoError(t, err)

	// Second run indexes what the first one wrote and appends nothing.
	out, err = runCLI(t,
		"generate", doc,
		"--output-dir", outputDir,
		"--step-def-dir", stepDefDir,
		"--state-dir", stateDir,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "All step definitions already exist.")
}

func TestGenerateCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocFile(t, dir, healthDoc)
	outputDir := filepath.Join(dir, "out")
	stepDefDir := filepath.Join(dir, "defs")
	stateDir := filepath.Join(dir, "state")

	cfgPath := filepath.Join(dir, "bddgen.yaml")
	cfg := fmt.Sprintf("output_dir: %s\nstep_def_dir: %s\nstate_dir: %s\n", outputDir, stepDefDir, stateDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	_, err := runCLI(t, "generate", doc, "--config", cfgPath)
	require.NoError(t, err)

	for _, path := range []string{
		filepath.Join(outputDir, "Health_ping.feature"),
		filepath.Join(stepDefDir, "step_definitions.go"),
		filepath.Join(stateDir, "last-run.json"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestGenerateCommand_FlagBeatsConfig(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocFile(t, dir, healthDoc)

	cfgPath := filepath.Join(dir, "bddgen.yaml")
	cfg := fmt.Sprintf("output_dir: %s\n", filepath.Join(dir, "from-config"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	flagDir := filepath.Join(dir, "from-flag")
	_, err := runCLI(t, "generate", doc,
		"--config", cfgPath,
		"--output-dir", flagDir,
		"--step-def-dir", filepath.Join(dir, "stepdefs"),
		"--state-dir", filepath.Join(dir, ".bddgen"),
	)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(flagDir, "Health_ping.feature"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "from-config"))
	assert.True(t, os.IsNotExist(err), "config dir should not be created when the flag overrides it")
}

func TestGenerateCommand_MissingDocument(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "generate", filepath.Join(dir, "absent.json"),
		"--output-dir", filepath.Join(dir, "features"),
		"--step-def-dir", filepath.Join(dir, "stepdefs"),
		"--state-dir", filepath.Join(dir, ".bddgen"),
	)
	require.Error(t, err)
	assert.Equal(t, 1, clierr.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "reading analysis document")
}

func TestDriftCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocFile(t, dir, healthDoc)
	stepDefDir := filepath.Join(dir, "stepdefs")

	out, err := runCLI(t, "drift", doc, "--step-def-dir", stepDefDir)
	require.Error(t, err)
	assert.Equal(t, 2, clierr.ExitCodeOf(err))
	assert.Contains(t, err.Error(), "step definitions missing")
	assert.Contains(t, out, "missing: Given valid input for ping")
	assert.Contains(t, out, "missing: When the API is called")
	assert.Contains(t, out, "missing: Then the response should indicate success")

	// Generate fills the store; drift then reports clean.
	_, err = runCLI(t, "generate", doc,
		"--output-dir", filepath.Join(dir, "features"),
		"--step-def-dir", stepDefDir,
		"--state-dir", filepath.Join(dir, ".bddgen"),
	)
	require.NoError(t, err)

	out, err = runCLI(t, "drift", doc, "--step-def-dir", stepDefDir)
	require.NoError(t, err)
	assert.Contains(t, out, "covers every generated step")
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocFile(t, dir, healthDoc)

	out, err := runCLI(t, "inspect", doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Analysis Overview")
	assert.Contains(t, out, "| Health | ping |")

	out, err = runCLI(t, "inspect", doc, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"controllers": 1`)
	assert.Contains(t, out, `"file": "Health_ping.feature"`)
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	doc := writeDocFile(t, dir, healthDoc)
	stateDir := filepath.Join(dir, ".bddgen")

	out, err := runCLI(t, "report", "--state-dir", stateDir)
	require.NoError(t, err)
	assert.Contains(t, out, "No run state found.")

	_, err = runCLI(t, "generate", doc,
		"--output-dir", filepath.Join(dir, "features"),
		"--step-def-dir", filepath.Join(dir, "stepdefs"),
		"--state-dir", stateDir,
	)
	require.NoError(t, err)

	out, err = runCLI(t, "report", "--state-dir", stateDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Generation Report")
	assert.Contains(t, out, "**Stubs added**: 3")

	out, err = runCLI(t, "report", "--state-dir", stateDir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"stubs_added": 3`)

	out, err = runCLI(t, "report", "reset", "--state-dir", stateDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Run state cleared")

	out, err = runCLI(t, "report", "--state-dir", stateDir)
	require.NoError(t, err)
	assert.Contains(t, out, "No run state found.")
}
