package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bddgen.yaml")
	content := `output_dir: build/features
step_def_dir: build/stepdefs
state_dir: .state
relay:
  addr: ":9090"
  base_url: https://tachyons.example.com
  model: feature-writer-1
  timeout_seconds: 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "build/features", cfg.OutputDir)
	assert.Equal(t, "build/stepdefs", cfg.StepDefDir)
	assert.Equal(t, ".state", cfg.StateDir)
	assert.Equal(t, ":9090", cfg.Relay.Addr)
	assert.Equal(t, "https://tachyons.example.com", cfg.Relay.BaseURL)
	assert.Equal(t, "feature-writer-1", cfg.Relay.Model)
	assert.Equal(t, 20, cfg.Relay.TimeoutSeconds)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bddgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "flag", FirstNonEmpty("flag", "config", "default"))
	assert.Equal(t, "config", FirstNonEmpty("", "config", "default"))
	assert.Equal(t, "default", FirstNonEmpty("", "", "default"))
	assert.Equal(t, "", FirstNonEmpty("", "", ""))
}
