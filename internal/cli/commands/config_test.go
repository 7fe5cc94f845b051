package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aki/dircontents/internal/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	stdout, _, err := executeCommand(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)

	t.Setenv(ConfigEnv, path)
	stdout, _, err = executeCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := executeCommand(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sort: lexicographic")

	_, _, err = executeCommand(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCommand(t, "config", "init", "--force", "--config", path)
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sort: natural\nwidth: 100\n"), 0o644))

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "config", "show", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "sort: natural")
		assert.Contains(t, stdout, "size_base: 1024")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "config", "show", "--format", "json", "--config", path)
		require.NoError(t, err)

		var cfg config.Config
		require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
		assert.Equal(t, config.SortNatural, cfg.Sort)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, "auto", cfg.Color)
	})

	t.Run("pretty", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "config", "show", "--format", "pretty", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Configuration: "+path)
		assert.Contains(t, stdout, "SETTING")
		assert.Contains(t, stdout, "natural")
	})

	t.Run("defaults without file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "none.yaml")
		stdout, _, err := executeCommand(t, "config", "show", "--format", "pretty", "--config", missing)
		require.NoError(t, err)
		assert.Contains(t, stdout, "not found, using defaults")
		assert.Contains(t, stdout, "detect")
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, _, err := executeCommand(t, "config", "show", "--format", "toml", "--config", path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		expectedError  bool
		expectedOutput string
	}{
		{
			name:           "valid configuration",
			content:        "show_hidden: true\nsort: reversed\ncolor: always\n",
			expectedOutput: "Configuration is valid",
		},
		{
			name:           "unknown key",
			content:        "hidden: true\n",
			expectedError:  true,
			expectedOutput: "Configuration validation failed",
		},
		{
			name:           "bad size base",
			content:        "size_base: 2048\n",
			expectedError:  true,
			expectedOutput: "Configuration validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			stdout, stderr, err := executeCommand(t, "config", "validate", "--config", path)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, stderr, tt.expectedOutput)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, stdout, tt.expectedOutput)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, _, err := executeCommand(t, "config", "validate", "--config", filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no configuration file")
	})
}

func TestVersion(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dircontents version "+Version)

	stdout, _, err = executeCommand(t, "version", "--format", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, Version, info["version"])
	assert.Equal(t, GitCommit, info["gitCommit"])
}
