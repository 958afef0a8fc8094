package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/models"
)

// MathCodeTool routes reasoning and programming tasks to the deep reasoning
// backend.
type MathCodeTool struct {
	manager *models.Manager
}

// NewMathCodeTool builds the tool on top of the backend manager.
func NewMathCodeTool(m *models.Manager) *MathCodeTool {
	return &MathCodeTool{manager: m}
}

func (t *MathCodeTool) Name() string {
	return "math_code"
}

func (t *MathCodeTool) Description() string {
	return "Mathematical and programming reasoning tool. Uses a high-performance reasoning model " +
		"for complex proofs, code debugging, and strategy analysis. Suitable for problems that " +
		"require deep logical reasoning. Examples: proving a special case of a theorem, fixing a " +
		"logic error in a recursive algorithm, comparing time and space complexity of algorithms."
}

func (t *MathCodeTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The mathematical or programming problem to solve",
			},
		},
		"required": []string{"query"},
	}
}

// Execute runs the task. Backend failures are reported as the tool result
// text so the caller's decision model can react to them.
func (t *MathCodeTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return "", &errs.ValidationError{Reason: "query must be a non-empty string"}
	}

	slog.Info("Processing math_code request", "query_len", len(query))

	result, err := t.manager.MathCode(ctx, query)
	if err != nil {
		slog.Error("math_code processing failed", "error", err)
		return fmt.Sprintf("Processing failed: %s", errs.Describe(err, "math_code tool")), nil
	}

	slog.Info("math_code processing completed successfully")
	return result, nil
}
