package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for decoupled UI
	},
}

type WebConfig struct {
	Port int `json:"port"` // Default: 9453
}

// IncomingMessage is the JSON envelope a browser client sends over the
// socket. Plain text frames are accepted as a fallback.
type IncomingMessage struct {
	Text string `json:"text"`
}

// OutgoingMessage is the JSON envelope pushed back to the client.
type OutgoingMessage struct {
	Type string `json:"type"` // "reply" or "error"
	Text string `json:"text"`
}

// SafeConn serializes writes so replies from concurrent query handlers
// never interleave on the wire.
type SafeConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (sc *SafeConn) WriteMessage(messageType int, data []byte) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.Conn.WriteMessage(messageType, data)
}

type WebChannel struct {
	config      WebConfig
	server      *http.Server
	connections map[string]*SafeConn // Map UserID -> WS Connection
	mu          sync.RWMutex
}

func NewWebChannel(cfg WebConfig) *WebChannel {
	return &WebChannel{
		config:      cfg,
		connections: make(map[string]*SafeConn),
	}
}

func (c *WebChannel) ID() string {
	return "web"
}

func (c *WebChannel) Start(ctx api.ChannelContext) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c.handleWebSocket(w, r, ctx)
	})

	addr := fmt.Sprintf(":%d", c.config.Port)
	c.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	slog.Info("Web API listening", "port", c.config.Port)

	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Web API server error", "error", err)
		}
	}()

	return nil
}

func (c *WebChannel) Stop() error {
	if c.server != nil {
		return c.server.Close()
	}
	return nil
}

func (c *WebChannel) Send(session api.SessionContext, message string) error {
	c.mu.RLock()
	conn, ok := c.connections[session.UserID]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("web user %s not connected", session.UserID)
	}

	out := OutgoingMessage{Type: "reply", Text: message}
	jsonData, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal reply: %w", err)
	}
	return conn.WriteMessage(websocket.TextMessage, jsonData)
}

func (c *WebChannel) handleWebSocket(w http.ResponseWriter, r *http.Request, ctx api.ChannelContext) {
	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WS Upgrade failed", "error", err)
		return
	}

	conn := &SafeConn{Conn: rawConn}

	// Simple UserID based on RemoteAddr
	userID := r.RemoteAddr

	c.mu.Lock()
	c.connections[userID] = conn
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.connections, userID)
		c.mu.Unlock()
		conn.Close()
	}()

	session := api.SessionContext{
		ChannelID: "web",
		UserID:    userID,
		ChatID:    userID,
		Username:  "WebUser",
	}

	for {
		_, msgBytes, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var content string

		var incoming IncomingMessage
		if err := json.Unmarshal(msgBytes, &incoming); err == nil && incoming.Text != "" {
			content = incoming.Text
		} else {
			// Fallback: treat as plain text (backward compatibility)
			content = string(msgBytes)
		}

		if content == "" {
			continue
		}

		ctx.OnMessage(c.ID(), &api.UnifiedMessage{
			Session: session,
			Content: content,
			Raw:     msgBytes,
		})
	}
}
