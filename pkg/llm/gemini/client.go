// Package gemini implements the model client for Google Gemini using the
// official GenAI Go SDK. Remote image URLs are downloaded and sent inline,
// since the Gemini API does not fetch arbitrary URLs itself.
package gemini

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
)

// Client is a wrapper around the Google GenAI SDK.
type Client struct {
	client          *genai.Client
	model           string
	maxTokens       int
	temperature     float64
	downloadTimeout time.Duration
	httpClient      *http.Client
}

// NewClient creates a Gemini client for a single model.
func NewClient(ctx context.Context, apiKey, model string, maxTokens int, temperature float64, downloadTimeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini: model is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &Client{
		client:          client,
		model:           model,
		maxTokens:       maxTokens,
		temperature:     temperature,
		downloadTimeout: downloadTimeout,
		httpClient:      &http.Client{Timeout: downloadTimeout},
	}, nil
}

// Complete sends the conversation and returns the model's reply text.
func (g *Client) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	contents, systemInstruction, err := g.convertMessages(ctx, messages)
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: systemInstruction,
		Temperature:       genai.Ptr(float32(g.temperature)),
	}
	if g.maxTokens > 0 {
		cfg.MaxOutputTokens = int32(g.maxTokens)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", &errs.APIError{Message: "gemini generate content failed", Err: err}
	}

	return resp.Text(), nil
}

// convertMessages converts the message list to GenAI format. The system role
// becomes the SystemInstruction; tool results ride as user turns.
func (g *Client) convertMessages(ctx context.Context, messages []llm.Message) ([]*genai.Content, *genai.Content, error) {
	var contents []*genai.Content
	var systemInstruction *genai.Content

	for _, msg := range messages {
		if msg.Role == llm.RoleSystem {
			if text := msg.Text(); text != "" {
				systemInstruction = &genai.Content{Parts: []*genai.Part{{Text: text}}}
			}
			continue
		}

		role := genai.RoleUser
		if msg.Role == llm.RoleAssistant {
			role = genai.RoleModel
		}

		var parts []*genai.Part
		for _, block := range msg.Content {
			switch block.Type {
			case llm.BlockText:
				if block.Text == "" {
					continue
				}
				parts = append(parts, &genai.Part{Text: block.Text})

			case llm.BlockImage:
				if block.Source == nil {
					continue
				}
				data := block.Source.Data
				mimeType := block.Source.MediaType
				if len(data) == 0 && block.Source.URL != "" {
					fetched, fetchedMIME, err := g.fetchImage(ctx, block.Source.URL)
					if err != nil {
						return nil, nil, err
					}
					data = fetched
					if mimeType == "" {
						mimeType = fetchedMIME
					}
				}
				if len(data) > 0 {
					parts = append(parts, &genai.Part{
						InlineData: &genai.Blob{
							MIMEType: mimeType,
							Data:     data,
						},
					})
				}
			}
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{Role: role, Parts: parts})
		}
	}

	return contents, systemInstruction, nil
}

// fetchImage downloads a remote image so it can be sent inline.
func (g *Client) fetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &errs.ClientError{Message: fmt.Sprintf("invalid image url %q", url), Err: err}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, "", &errs.APIError{Message: fmt.Sprintf("failed to download image %q", url), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &errs.APIError{Message: fmt.Sprintf("image download returned status %d for %q", resp.StatusCode, url)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &errs.APIError{Message: fmt.Sprintf("failed to read image body for %q", url), Err: err}
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}

// IsTransientError reports whether err looks recoverable by retrying.
func (g *Client) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	// Google API common 503 Service Unavailable / Overloaded
	if strings.Contains(msg, "503") || strings.Contains(msg, "overloaded") {
		return true
	}
	// 429 Too Many Requests (Rate Limit)
	if strings.Contains(msg, "429") || strings.Contains(msg, "resource exhausted") {
		return true
	}
	// 500 Internal Error (occasional upstream crashes)
	if strings.Contains(msg, "500") || strings.Contains(msg, "internal error") {
		return true
	}

	return false
}
