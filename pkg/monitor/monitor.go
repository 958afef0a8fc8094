package monitor

import "time"

// Message is one monitored event flowing through a surface.
type Message struct {
	Timestamp   time.Time
	MessageType string // "USER" or "ASSISTANT"
	ChannelID   string
	Username    string
	Content     string
}

// Monitor observes the traffic of all surfaces.
type Monitor interface {
	Start() error
	Stop() error
	// OnMessage receives and displays one monitored message.
	OnMessage(msg Message)
}
