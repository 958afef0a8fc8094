package telegram

import (
	"fmt"
	"os"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/channels"
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TelegramFactory creates Telegram channels from raw config.
type TelegramFactory struct{}

// Create implements channels.ChannelFactory.
func (f *TelegramFactory) Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (api.Channel, error) {
	var tgCfg TelegramConfig
	if err := json.Unmarshal(rawConfig, &tgCfg); err != nil {
		return nil, fmt.Errorf("failed to parse telegram config: %w", err)
	}

	if tgCfg.Token == "" && tgCfg.TokenEnv != "" {
		tgCfg.Token = os.Getenv(tgCfg.TokenEnv)
	}
	if tgCfg.Token == "" {
		return nil, fmt.Errorf("missing telegram token")
	}

	return NewTelegramChannel(tgCfg, system.TelegramMessageLimit)
}

func init() {
	channels.RegisterChannel("telegram", &TelegramFactory{})
}
