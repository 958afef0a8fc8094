package console

import (
	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/channels"
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"

	jsoniter "github.com/json-iterator/go"
)

// ConsoleFactory creates the interactive terminal channel. It takes
// no configuration beyond being present in the channels map.
type ConsoleFactory struct{}

// Create implements channels.ChannelFactory.
func (f *ConsoleFactory) Create(rawConfig jsoniter.RawMessage, system *config.SystemConfig) (api.Channel, error) {
	return NewConsoleChannel(), nil
}

func init() {
	channels.RegisterChannel("console", &ConsoleFactory{})
}
