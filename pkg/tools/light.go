package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/models"
)

// LightTool routes simple text tasks to the lightweight backend.
type LightTool struct {
	manager *models.Manager
}

// NewLightTool builds the tool on top of the backend manager.
func NewLightTool(m *models.Manager) *LightTool {
	return &LightTool{manager: m}
}

func (t *LightTool) Name() string {
	return "light_mode"
}

func (t *LightTool) Description() string {
	return "Lightweight text processing tool. Uses an efficient model for simple text tasks such " +
		"as polishing, basic translation, and information extraction. Fast responses, suited to " +
		"latency-sensitive basic text needs. Examples: improving wording and fluency, translating " +
		"between common languages, extracting key facts and entities, normalizing text formats."
}

func (t *LightTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The text content to process",
			},
		},
		"required": []string{"query"},
	}
}

// Execute runs the task. Backend failures are reported as the tool result
// text so the caller's decision model can react to them.
func (t *LightTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return "", &errs.ValidationError{Reason: "query must be a non-empty string"}
	}

	slog.Info("Processing light_mode request", "query_len", len(query))

	result, err := t.manager.Light(ctx, query)
	if err != nil {
		slog.Error("light_mode processing failed", "error", err)
		return fmt.Sprintf("Processing failed: %s", errs.Describe(err, "light_mode tool")), nil
	}

	slog.Info("light_mode processing completed successfully")
	return result, nil
}
