package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `{
  "oracle": {"type": "openai", "model": "m", "api_key": "k"},
  "backends": {
    "math": {"type": "openai", "model": "m"},
    "vision": {"type": "gemini", "model": "v"},
    "light": {"type": "ollama", "model": "l"}
  },
  "channels": {"console": {}},
  "tool_server": {"command": "./toolserver"}
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", validConfig)
	sysPath := writeFile(t, dir, "system.json", `{"max_retries": 7, "log_level": "debug"}`)

	cfg, sys, err := Load(cfgPath, sysPath)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Oracle)
	assert.Contains(t, cfg.Backends, "math")
	assert.Contains(t, cfg.Channels, "console")
	assert.Equal(t, "./toolserver", cfg.ToolServer.Command)

	// Set values override defaults, the rest stay at defaults.
	assert.Equal(t, 7, sys.MaxRetries)
	assert.Equal(t, "debug", sys.LogLevel)
	assert.Equal(t, DefaultSystemConfig().OracleTimeoutMs, sys.OracleTimeoutMs)
}

func TestLoadMissingConfigIsFatal(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.json"), "also-nope.json")
	require.Error(t, err)
}

func TestLoadSystemConfigFallsBackToDefaults(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		sys := LoadSystemConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Equal(t, DefaultSystemConfig(), sys)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "system.json", "{not json")
		sys := LoadSystemConfig(path)
		assert.Equal(t, DefaultSystemConfig(), sys)
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing oracle", func(t *testing.T) {
		cfg := &Config{ToolServer: ToolServerConfig{Command: "./toolserver"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing tool server command", func(t *testing.T) {
		cfg := &Config{Oracle: []byte(`{"type":"openai"}`)}
		assert.Error(t, cfg.Validate())
	})

	t.Run("complete", func(t *testing.T) {
		cfg := &Config{
			Oracle:     []byte(`{"type":"openai"}`),
			ToolServer: ToolServerConfig{Command: "./toolserver"},
		}
		assert.NoError(t, cfg.Validate())
	})
}
