package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/models"
)

// VisionTool routes image understanding tasks to the multimodal backend.
// The image URL travels inline in the query text.
type VisionTool struct {
	manager *models.Manager
}

// NewVisionTool builds the tool on top of the backend manager.
func NewVisionTool(m *models.Manager) *VisionTool {
	return &VisionTool{manager: m}
}

func (t *VisionTool) Name() string {
	return "vl_mode"
}

func (t *VisionTool) Description() string {
	return "Visual understanding and multimodal reasoning tool. Uses a multimodal model for image " +
		"understanding, cross-modal reasoning, and visual question answering. Reads image content " +
		"from an image link included in the query. Examples: describing the objects, scene, and " +
		"relations in a picture, answering questions about image content, combined image and text analysis."
}

func (t *VisionTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The visual task description, including the image URL",
			},
		},
		"required": []string{"query"},
	}
}

// Execute runs the task. Backend failures are reported as the tool result
// text so the caller's decision model can react to them.
func (t *VisionTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return "", &errs.ValidationError{Reason: "query must be a non-empty string"}
	}

	slog.Info("Processing vl_mode request", "query_len", len(query))

	result, err := t.manager.Vision(ctx, query)
	if err != nil {
		slog.Error("vl_mode processing failed", "error", err)
		return fmt.Sprintf("Processing failed: %s", errs.Describe(err, "vl_mode tool")), nil
	}

	slog.Info("vl_mode processing completed successfully")
	return result, nil
}
