package gemini

import (
	"context"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
)

// Factory handles creation of Gemini clients.
type Factory struct{}

// Create implements llm.ProviderFactory.
func (f *Factory) Create(cfg llm.ProviderConfig, sys *config.SystemConfig) (llm.Client, error) {
	temperature := sys.Temperature
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	downloadTimeout := time.Duration(sys.DownloadTimeoutMs) * time.Millisecond
	return NewClient(context.Background(), cfg.APIKey, cfg.Model, cfg.MaxTokens, temperature, downloadTimeout)
}

func init() {
	llm.RegisterProvider("gemini", &Factory{})
}
