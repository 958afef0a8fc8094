package gateway

import (
	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
)

// Re-export types from api package via aliases so gateway consumers do not
// need to import both packages.
type Channel = api.Channel
type MessageResponder = api.MessageResponder
type ChannelContext = api.ChannelContext
type UnifiedMessage = api.UnifiedMessage
type SessionContext = api.SessionContext
type MessageHandler = api.MessageHandler
