// Package gateway manages all registered channels and routes messages
// between them and the core message handler.
package gateway

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/monitor"
)

// Manager owns all channels and provides the unified reply interface.
type Manager struct {
	channels   map[string]Channel
	msgHandler MessageHandler
	monitor    monitor.Monitor
	mu         sync.RWMutex
}

// NewManager creates an empty gateway manager.
func NewManager() *Manager {
	return &Manager{
		channels: make(map[string]Channel),
	}
}

// SetMessageHandler sets the core message processing logic. Each incoming
// message is dispatched on its own goroutine, so handlers run concurrently
// and must be safe for concurrent use.
func (g *Manager) SetMessageHandler(handler MessageHandler) {
	g.msgHandler = handler
}

// SetMonitor attaches a traffic monitor.
func (g *Manager) SetMonitor(m monitor.Monitor) {
	g.monitor = m
}

// Register adds a channel.
func (g *Manager) Register(c Channel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channels[c.ID()] = c
}

// GetChannel retrieves a specific channel.
func (g *Manager) GetChannel(id string) (Channel, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.channels[id]
	return c, ok
}

// StartAll starts every registered channel.
func (g *Manager) StartAll() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for id, c := range g.channels {
		slog.Info("Starting channel", "channel", id)
		if err := c.Start(g); err != nil {
			return fmt.Errorf("failed to start channel %s: %w", id, err)
		}
	}
	return nil
}

// StopAll stops every channel.
func (g *Manager) StopAll() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for id, c := range g.channels {
		slog.Info("Stopping channel", "channel", id)
		if err := c.Stop(); err != nil {
			slog.Error("Error stopping channel", "channel", id, "error", err)
		}
	}
}

// SendReply routes a reply back to the originating channel.
func (g *Manager) SendReply(session SessionContext, content string) error {
	slog.Debug("Gateway reply", "channel", session.ChannelID, "user", session.Username)

	if g.monitor != nil {
		g.monitor.OnMessage(monitor.Message{
			Timestamp:   time.Now(),
			MessageType: "ASSISTANT",
			ChannelID:   session.ChannelID,
			Username:    session.Username,
			Content:     content,
		})
	}

	c, ok := g.GetChannel(session.ChannelID)
	if !ok {
		return fmt.Errorf("channel %s not found", session.ChannelID)
	}
	return c.Send(session, content)
}

// OnMessage implements the ChannelContext interface and forwards incoming
// messages to the core handler, one goroutine per message so queries from
// different surfaces proceed independently.
func (g *Manager) OnMessage(channelID string, msg *UnifiedMessage) {
	slog.Info("Gateway received message",
		"channel", channelID, "user", msg.Session.Username, "preview", previewContent(msg.Content))

	if g.monitor != nil {
		g.monitor.OnMessage(monitor.Message{
			Timestamp:   time.Now(),
			MessageType: "USER",
			ChannelID:   channelID,
			Username:    msg.Session.Username,
			Content:     msg.Content,
		})
	}

	if g.msgHandler == nil {
		slog.Warn("No message handler set")
		return
	}
	go g.msgHandler(msg)
}

func previewContent(content string) string {
	const limit = 80
	if len(content) <= limit {
		return content
	}
	return content[:limit] + "..."
}
