package llm

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/RVBB-LUV/llm-cooperation/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

// NewFromConfig builds a model client from one raw provider entry of
// config.json, dispatching on the "type" field through the registry.
func NewFromConfig(raw jsoniter.RawMessage, system *config.SystemConfig) (Client, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing provider config")
	}

	var cfg ProviderConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse provider config: %w", err)
	}
	if cfg.Type == "" {
		return nil, fmt.Errorf("provider config is missing 'type'")
	}

	// Let system.json supply defaults for anything the entry omits.
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = system.MaxTokens
	}
	if cfg.Temperature == nil {
		t := system.Temperature
		cfg.Temperature = &t
	}
	if cfg.APIKey == "" && cfg.APIKeyEnv != "" {
		cfg.APIKey = os.Getenv(cfg.APIKeyEnv)
	}

	factory, ok := GetProviderFactory(cfg.Type)
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}

	client, err := factory.Create(cfg, system)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Type, err)
	}

	slog.Debug("Model client initialized", "provider", cfg.Type, "model", cfg.Model)
	return client, nil
}
