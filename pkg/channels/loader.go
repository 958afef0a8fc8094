package channels

import (
	"log/slog"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

// CreateFromConfig acts as the central orchestration point for dynamic
// channel initialization. It iterates through the provided configuration
// map, resolves factories, and collects the resulting channels.
func CreateFromConfig(configs map[string]jsoniter.RawMessage, system *config.SystemConfig) []api.Channel {
	var result []api.Channel
	for name, rawConfig := range configs {
		factory, ok := GetChannelFactory(name)
		if !ok {
			slog.Warn("Unknown channel type", "name", name)
			continue
		}

		channel, err := factory.Create(rawConfig, system)
		if err != nil {
			slog.Error("Failed to create channel", "name", name, "error", err)
			continue
		}

		// A nil channel means the factory declined without an error
		// (e.g. the channel is disabled in config).
		if channel == nil {
			continue
		}

		result = append(result, channel)
		slog.Info("Channel created", "name", name)
	}
	return result
}
