package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/router"
)

// QueryHandler bridges the channel gateway and the routing engine. Each
// incoming message is processed as an independent query. The gateway
// dispatches messages on their own goroutines, so a slow query on one
// channel never blocks the others.
type QueryHandler struct {
	router    *router.Router
	responder api.MessageResponder
}

// NewQueryHandler initializes a QueryHandler and returns a function
// compatible with api.MessageHandler for registration with the gateway.
func NewQueryHandler(rt *router.Router, responder api.MessageResponder) func(*api.UnifiedMessage) {
	h := &QueryHandler{
		router:    rt,
		responder: responder,
	}
	return h.OnMessage
}

// OnMessage is the primary entry point for incoming user messages. It runs
// the routing loop for the query and sends the final answer, or a readable
// error description, back through the originating channel.
func (h *QueryHandler) OnMessage(msg *api.UnifiedMessage) {
	if msg == nil || msg.Content == "" {
		return
	}

	start := time.Now()
	slog.Info("Query received", "channel", msg.Session.ChannelID, "user", msg.Session.Username)

	answer, err := h.router.ProcessQuery(context.Background(), msg.Content)
	if err != nil {
		slog.Error("Query failed", "channel", msg.Session.ChannelID, "error", err)
		answer = errs.Describe(err, "query processing")
	} else {
		slog.Info("Query answered", "channel", msg.Session.ChannelID, "elapsed", time.Since(start).Round(time.Millisecond))
	}

	if sendErr := h.responder.SendReply(msg.Session, answer); sendErr != nil {
		slog.Error("Failed to send reply", "channel", msg.Session.ChannelID, "error", sendErr)
	}
}
