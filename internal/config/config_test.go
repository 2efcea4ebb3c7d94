package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heron.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `schemas:
  path: model/cubes
  extensions: [".cube.yml"]
output:
  format: json
log:
  verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "model/cubes", cfg.Schemas.Path)
	assert.Equal(t, []string{".cube.yml"}, cfg.Schemas.Extensions)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "output:\n  format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "schemas", cfg.Schemas.Path)
	assert.Equal(t, []string{".yml", ".yaml"}, cfg.Schemas.Extensions)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "output:\n  format: yaml\n")
	t.Setenv("HERON_OUTPUT_FORMAT", "json")
	t.Setenv("HERON_SCHEMAS_PATH", "/srv/cubes")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, "/srv/cubes", cfg.Schemas.Path)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "invalid format", content: "output:\n  format: xml\n", errMsg: "invalid output.format"},
		{name: "empty path", content: "schemas:\n  path: \"\"\n", errMsg: "schemas.path"},
		{name: "malformed", content: "output: [", errMsg: "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
