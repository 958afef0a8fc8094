// Package config loads the two JSON configuration files: config.json holds
// business-level settings (oracle and backend providers, surfaces, tool
// server location) and system.json holds engine-level technical parameters.
package config

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config maps directly to the config.json file. Provider and channel
// payloads stay raw; the llm and channels packages parse them through their
// factory registries.
type Config struct {
	// Oracle configures the decision model that drives the routing loop.
	Oracle jsoniter.RawMessage `json:"oracle"`
	// Backends maps capability names ("math", "vision", "light") to the
	// provider configuration of the model serving that capability.
	Backends map[string]jsoniter.RawMessage `json:"backends"`
	// Channels contains a map of channel identifiers (e.g., "console", "web")
	// to their specific configuration payloads in raw JSON format.
	Channels map[string]jsoniter.RawMessage `json:"channels"`
	// ToolServer describes how the router reaches the capability tools.
	ToolServer ToolServerConfig `json:"tool_server"`
}

// ToolServerConfig locates the MCP tool server. Command is spawned as a
// child process over a stdio transport.
type ToolServerConfig struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Validate ensures the configuration structure contains all mandatory fields.
// It acts as a primary guard before the system proceeds to initialization.
func (c *Config) Validate() error {
	if len(c.Oracle) == 0 {
		return fmt.Errorf("mandatory 'oracle' configuration is missing or empty")
	}
	if c.ToolServer.Command == "" {
		return fmt.Errorf("mandatory 'tool_server.command' is missing or empty")
	}
	return nil
}

// SystemConfig defines engine-level technical parameters.
// These settings are usually stored in system.json and control the
// performance, reliability, and technical behavior of the engine.
type SystemConfig struct {
	// MaxRetries is the number of times the system will attempt to
	// recover from a transient model or network error before giving up.
	MaxRetries int `json:"max_retries"`
	// RetryBackoffMs is the backoff base; the wait before retry attempt n
	// is base * 2^n milliseconds.
	RetryBackoffMs int `json:"retry_backoff_ms"`
	// OracleTimeoutMs is the hard cutoff time (in milliseconds) for a
	// single model request. The context is cancelled if exceeded.
	OracleTimeoutMs int `json:"oracle_timeout_ms"`
	// DownloadTimeoutMs is the timeout (in milliseconds) applied when
	// fetching external media (e.g., image URLs for vision requests).
	DownloadTimeoutMs int `json:"download_timeout_ms"`
	// OllamaDefaultURL is the fallback endpoint used when connecting
	// to a local Ollama instance if no specific URL is provided.
	OllamaDefaultURL string `json:"ollama_default_url"`
	// MaxTokens caps the generated output length for all model calls.
	MaxTokens int `json:"max_tokens"`
	// Temperature is the default sampling temperature for all model calls.
	Temperature float64 `json:"temperature"`
	// TelegramMessageLimit is the maximum character count for a single
	// Telegram message. Longer responses will be split into multiple chunks.
	TelegramMessageLimit int `json:"telegram_message_limit"`
	// InternalChannelBuffer defines the size of the internal Go channels
	// used for buffering outbound replies to prevent production blocking.
	InternalChannelBuffer int `json:"internal_channel_buffer"`
	// LogLevel sets the minimum severity for log output.
	// Accepted values: "debug", "info", "warn", "error". Default: "info".
	LogLevel string `json:"log_level"`
}

// DefaultSystemConfig returns a SystemConfig pointer initialized with
// hardcoded safe default values. This is used as a fallback when the
// system.json file is missing or corrupt, ensuring the engine can always
// start.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		MaxRetries:            3,
		RetryBackoffMs:        1000,
		OracleTimeoutMs:       300000,
		DownloadTimeoutMs:     10000,
		OllamaDefaultURL:      "http://localhost:11434",
		MaxTokens:             4000,
		Temperature:           0.4,
		TelegramMessageLimit:  4000,
		InternalChannelBuffer: 100,
		LogLevel:              "info",
	}
}

// Load reads and parses the application config from path and the system
// config from sysPath. A missing application config is an error; a missing
// or unparsable system config silently falls back to defaults.
func Load(path, sysPath string) (*Config, *SystemConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, LoadSystemConfig(sysPath), nil
}

// LoadSystemConfig attempts to load system settings, returns defaults if it
// fails.
func LoadSystemConfig(path string) *SystemConfig {
	cfg := DefaultSystemConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(file, cfg); err != nil {
		return DefaultSystemConfig()
	}
	return cfg
}
