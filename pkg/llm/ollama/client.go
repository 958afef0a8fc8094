// Package ollama implements the model client for a local Ollama instance
// using the official Ollama API package.
package ollama

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
)

// Client is a wrapper around the Ollama API client.
type Client struct {
	client      *api.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewClient creates an Ollama client targeting baseURL.
func NewClient(model, baseURL string, maxTokens int, temperature float64) (*Client, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama: model is required")
	}
	if baseURL == "" {
		return nil, fmt.Errorf("ollama: base URL is required")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("ollama: invalid base URL: %w", err)
	}

	// Local generation can be slow on first model load; the HTTP client
	// itself imposes no deadline, the caller's context bounds the request.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	httpClient := &http.Client{Transport: transport, Timeout: 0}

	return &Client{
		client:      api.NewClient(u, httpClient),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

// Complete sends the conversation and returns the full reply text. The
// request runs non-streaming; Ollama delivers one final callback.
func (o *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    o.model,
		Messages: convertMessages(messages),
		Stream:   &stream,
		Options: map[string]any{
			"temperature": o.temperature,
		},
	}
	if o.maxTokens > 0 {
		req.Options["num_predict"] = o.maxTokens
	}

	var reply strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", &errs.APIError{Message: "ollama chat request failed", Err: err}
	}

	return reply.String(), nil
}

// convertMessages flattens messages to the Ollama API format. Inline image
// data is forwarded for multimodal models; tool results ride as user turns.
func convertMessages(messages []llm.Message) []api.Message {
	out := make([]api.Message, 0, len(messages))

	for _, m := range messages {
		role := m.Role
		if role == llm.RoleTool {
			role = llm.RoleUser
		}

		msg := api.Message{
			Role:    role,
			Content: m.Text(),
		}

		for _, block := range m.Content {
			if block.Type == llm.BlockImage && block.Source != nil && len(block.Source.Data) > 0 {
				msg.Images = append(msg.Images, api.ImageData(block.Source.Data))
			}
		}

		out = append(out, msg)
	}

	return out
}

// IsTransientError reports whether err looks recoverable by retrying.
func (o *Client) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") {
		return true
	}
	if strings.Contains(msg, "overloaded") {
		return true
	}

	return false
}
