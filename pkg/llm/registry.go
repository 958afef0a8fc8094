package llm

import (
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
)

// ProviderConfig is the provider-independent shape of one model entry in
// config.json. The Type field selects the registered factory.
type ProviderConfig struct {
	Type        string         `json:"type"`
	Model       string         `json:"model"`
	APIKey      string         `json:"api_key,omitempty"`
	APIKeyEnv   string         `json:"api_key_env,omitempty"`
	BaseURL     string         `json:"base_url,omitempty"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
	Temperature *float64       `json:"temperature,omitempty"`
	Options     map[string]any `json:"options,omitempty"`
}

// ProviderFactory builds a concrete Client from a provider configuration.
type ProviderFactory interface {
	Create(cfg ProviderConfig, systemConfig *config.SystemConfig) (Client, error)
}

// Global provider registry.
var providerRegistry = make(map[string]ProviderFactory)

// RegisterProvider registers a provider factory under the given type name.
// Provider packages call this from init; main imports them via autoload.
func RegisterProvider(name string, factory ProviderFactory) {
	providerRegistry[name] = factory
}

// GetProviderFactory returns the factory registered for the type name.
func GetProviderFactory(name string) (ProviderFactory, bool) {
	f, ok := providerRegistry[name]
	return f, ok
}
