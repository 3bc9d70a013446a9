package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/htmlpp/pkg/trim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "htmlpp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
serve:
  port: "9090"
trim:
  catalog: basic
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "9090", cfg.Serve.Port)
	assert.Equal(t, trim.CatalogBasic, cfg.Trim.Catalog)
	// Untouched sections keep their defaults
	assert.Equal(t, trim.DefaultLength, cfg.Trim.Length)
	assert.Equal(t, "stdio", cfg.MCP.Transport)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"Bad YAML":      "log: [",
		"Bad Level":     "log:\n  level: loud\n",
		"Bad Catalog":   "trim:\n  catalog: fancy\n",
		"Bad Length":    "trim:\n  length: -1\n",
		"Huge Length":   "trim:\n  length: 5000\n",
		"Bad Transport": "mcp:\n  transport: carrier-pigeon\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
