package openailm

import (
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
)

// Factory handles creation of OpenAI-compatible clients.
type Factory struct{}

// Create implements llm.ProviderFactory.
func (f *Factory) Create(cfg llm.ProviderConfig, sys *config.SystemConfig) (llm.Client, error) {
	temperature := sys.Temperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	return NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens, temperature)
}

func init() {
	llm.RegisterProvider("openai", &Factory{})
}
