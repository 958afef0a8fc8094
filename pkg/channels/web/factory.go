package web

import (
	"fmt"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/channels"
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

// WebFactory creates WebSocket channels from raw config.
type WebFactory struct{}

// Create implements channels.ChannelFactory.
func (f *WebFactory) Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (api.Channel, error) {
	var pCfg WebConfig
	pCfg.Port = 9453

	if err := json.Unmarshal(rawConfig, &pCfg); err != nil {
		return nil, fmt.Errorf("failed to parse web config: %w", err)
	}

	return NewWebChannel(pCfg), nil
}

func init() {
	channels.RegisterChannel("web", &WebFactory{})
}
