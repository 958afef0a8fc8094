// Package models manages the capability backends: one model client per
// capability (reasoning, vision, lightweight text), each invoked with its
// dedicated instruction template.
package models

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/RVBB-LUV/llm-cooperation/pkg/contract"
	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
	"github.com/RVBB-LUV/llm-cooperation/pkg/prompts"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// Manager routes capability requests to the configured backend clients.
type Manager struct {
	math   llm.Client
	vision llm.Client
	light  llm.Client
}

// NewManager wires the three capability backends.
func NewManager(math, vision, light llm.Client) *Manager {
	return &Manager{math: math, vision: vision, light: light}
}

func validateQuery(query string, allowEmpty bool) (string, error) {
	query = contract.Sanitize(query)
	if query == "" && !allowEmpty {
		return "", &errs.ValidationError{Reason: "query cannot be empty after sanitization"}
	}
	return query, nil
}

// MathCode runs a reasoning or programming task on the deep reasoning model.
func (m *Manager) MathCode(ctx context.Context, query string) (string, error) {
	query, err := validateQuery(query, false)
	if err != nil {
		return "", err
	}

	slog.Info("Dispatching math_code request", "query_len", len(query))

	messages := []llm.Message{
		llm.NewSystemMessage("You are a professional mathematics and programming assistant with deep reasoning capabilities."),
		llm.NewUserMessage(fmt.Sprintf("User Query: %s\n\n%s", query, prompts.MathCode(query))),
	}
	return m.math.Complete(ctx, messages)
}

// Vision runs an image understanding task on the multimodal model. The
// query must carry the image URL inline; it is extracted and sent as an
// image block alongside the remaining text.
func (m *Manager) Vision(ctx context.Context, query string) (string, error) {
	query, err := validateQuery(query, true)
	if err != nil {
		return "", err
	}

	url := urlPattern.FindString(query)
	if url == "" {
		return "", &errs.ValidationError{Reason: "no image URL found in the vision query"}
	}
	cleaned := strings.TrimSpace(urlPattern.ReplaceAllString(query, ""))

	slog.Info("Dispatching vision request", "url", url, "query_len", len(cleaned))

	userMsg := llm.Message{
		Role: llm.RoleUser,
		Content: []llm.ContentBlock{
			llm.NewTextBlock(cleaned),
			llm.NewImageBlockFromURL(url, ""),
		},
	}
	messages := []llm.Message{
		llm.NewSystemMessage(prompts.Vision()),
		userMsg,
	}
	return m.vision.Complete(ctx, messages)
}

// Light runs a basic text task on the lightweight model.
func (m *Manager) Light(ctx context.Context, query string) (string, error) {
	query, err := validateQuery(query, false)
	if err != nil {
		return "", err
	}

	slog.Info("Dispatching light request", "query_len", len(query))

	messages := []llm.Message{
		llm.NewSystemMessage("You are an efficient text processing assistant focused on quick and accurate basic tasks."),
		llm.NewUserMessage(fmt.Sprintf("User Query: %s\n\n%s", query, prompts.Light(query))),
	}
	return m.light.Complete(ctx, messages)
}
