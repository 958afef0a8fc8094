package ollama

import (
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
)

// Factory handles creation of Ollama clients.
type Factory struct{}

// Create implements llm.ProviderFactory.
func (f *Factory) Create(cfg llm.ProviderConfig, sys *config.SystemConfig) (llm.Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = sys.OllamaDefaultURL
	}
	temperature := sys.Temperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	return NewClient(cfg.Model, baseURL, cfg.MaxTokens, temperature)
}

func init() {
	llm.RegisterProvider("ollama", &Factory{})
}
