// Package api defines the shared contracts between the gateway core and the
// channel implementations.
package api

// Channel defines the standardized lifecycle interface for user-facing
// surfaces (console, web, telegram).
type Channel interface {
	ID() string
	Start(ctx ChannelContext) error
	Stop() error
	Send(session SessionContext, message string) error
}

// ChannelContext provides the interface for a Channel implementation to
// communicate back with the gateway core.
type ChannelContext interface {
	MessageResponder
	OnMessage(channelID string, msg *UnifiedMessage)
}

// MessageResponder defines the capability for sending responses back to a
// channel.
type MessageResponder interface {
	SendReply(session SessionContext, content string) error
}

// UnifiedMessage is the standardized internal data structure for all
// incoming messages.
type UnifiedMessage struct {
	Session SessionContext // Contextual information about the source (user, chat)
	Content string         // Standardized text content of the message
	Raw     any            // Optional storage for the original platform-specific payload
}

// SessionContext encapsulates identity and routing information for a specific
// conversation unit on a specific surface.
type SessionContext struct {
	ChannelID string // Identifier of the channel that originated the session
	UserID    string // Platform-specific unique identifier for the user
	ChatID    string // Platform-specific identifier for the chat (may match UserID for DMs)
	Username  string // Display name of the user as provided by the platform
}

// MessageHandler defines the function signature for processing incoming
// messages.
type MessageHandler func(*UnifiedMessage)
