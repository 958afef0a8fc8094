// Package openailm implements the model client for OpenAI and
// OpenAI-compatible endpoints (DeepSeek, Moonshot, local gateways) using the
// official OpenAI Go SDK.
package openailm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
)

// Client is a wrapper around the official OpenAI Go SDK.
type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewClient creates a client for an OpenAI-compatible endpoint. An empty
// baseURL targets the official API.
func NewClient(apiKey, model, baseURL string, maxTokens int, temperature float64) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("openai: model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)

	return &Client{
		client:      &client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}, nil
}

// Complete sends the conversation through the chat completions API and
// returns the reply text.
func (c *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convertMessages(messages),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}
	params.Temperature = openai.Float(c.temperature)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &errs.APIError{Message: "chat completion request failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &errs.APIError{Message: "chat completion returned no choices"}
	}

	return resp.Choices[0].Message.Content, nil
}

// IsTransientError reports whether err looks recoverable by retrying.
func (c *Client) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	// Transient: network-level issues
	if strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") {
		return true
	}

	// Transient: server-side temporary failures
	if strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "500 internal") ||
		strings.Contains(msg, "502 bad gateway") ||
		strings.Contains(msg, "503 service unavailable") ||
		strings.Contains(msg, "overloaded") {
		return true
	}

	// Everything else (400 Bad Request, 401 Unauthorized, etc.) is non-transient
	return false
}

func convertMessages(messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			out = append(out, openai.SystemMessage(m.Text()))
		case llm.RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Text()))
		case llm.RoleUser, llm.RoleTool:
			// Tool results ride as user turns; the routing protocol is
			// plain text, not the native tool calling API.
			if m.HasImages() {
				out = append(out, openai.UserMessage(convertParts(m.Content)))
			} else {
				out = append(out, openai.UserMessage(m.Text()))
			}
		}
	}

	return out
}

func convertParts(blocks []llm.ContentBlock) []openai.ChatCompletionContentPartUnionParam {
	parts := make([]openai.ChatCompletionContentPartUnionParam, 0, len(blocks))
	for _, block := range blocks {
		switch block.Type {
		case llm.BlockText:
			if block.Text != "" {
				parts = append(parts, openai.TextContentPart(block.Text))
			}
		case llm.BlockImage:
			if block.Source == nil {
				continue
			}
			imgURL := block.Source.URL
			if block.Source.Type == "base64" {
				imgURL = fmt.Sprintf("data:%s;base64,%s", block.Source.MediaType, base64.StdEncoding.EncodeToString(block.Source.Data))
			}
			parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: imgURL}))
		}
	}
	return parts
}
