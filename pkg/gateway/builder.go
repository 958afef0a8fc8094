package gateway

import (
	"fmt"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/monitor"
)

// Builder provides a fluent interface for constructing and starting a
// Manager with all its dependencies. Channels and the handler are pre-built
// and injected as instances; the builder assembles and starts them.
type Builder struct {
	gw             *Manager
	monitor        monitor.Monitor
	handlerFactory func(*Manager) api.MessageHandler
	channels       []api.Channel
}

// NewBuilder creates a fresh Builder with an internal Manager.
func NewBuilder() *Builder {
	return &Builder{
		gw: NewManager(),
	}
}

// WithMonitor injects a monitoring implementation. It is started
// automatically during Build.
func (b *Builder) WithMonitor(m monitor.Monitor) *Builder {
	b.monitor = m
	return b
}

// WithChannel adds pre-built channel instances.
func (b *Builder) WithChannel(channels ...api.Channel) *Builder {
	b.channels = append(b.channels, channels...)
	return b
}

// WithHandlerFactory injects a constructor for the core message handler.
// The factory receives the Manager so the handler can send replies through
// it; it is invoked before any channel starts.
func (b *Builder) WithHandlerFactory(factory func(*Manager) api.MessageHandler) *Builder {
	b.handlerFactory = factory
	return b
}

// Build finalizes the configuration, registers all channels, and starts
// everything. Returns the operational Manager or an error if a stage fails.
func (b *Builder) Build() (*Manager, error) {
	if b.monitor != nil {
		b.gw.SetMonitor(b.monitor)
		if err := b.monitor.Start(); err != nil {
			return nil, fmt.Errorf("failed to start monitor: %w", err)
		}
	}

	for _, c := range b.channels {
		b.gw.Register(c)
	}

	if b.handlerFactory != nil {
		b.gw.SetMessageHandler(b.handlerFactory(b.gw))
	}

	if err := b.gw.StartAll(); err != nil {
		return nil, fmt.Errorf("failed to start channels: %w", err)
	}

	return b.gw, nil
}
