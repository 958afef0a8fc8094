package tools

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

// AddTool performs integer addition. It is a minimal example tool that
// demonstrates the basic tool structure and parameter handling.
type AddTool struct{}

// NewAddTool builds the example addition tool.
func NewAddTool() *AddTool {
	return &AddTool{}
}

func (t *AddTool) Name() string {
	return "add"
}

func (t *AddTool) Description() string {
	return "Adds two integers. Example tool showing the basic tool structure. " +
		"Examples: add(3, 5) -> 8, add(-2, 7) -> 5."
}

func (t *AddTool) InputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "integer", "description": "First addend"},
			"b": map[string]any{"type": "integer", "description": "Second addend"},
		},
		"required": []string{"a", "b"},
	}
}

// Execute adds the two arguments. Unlike the model tools, invalid input is
// returned as an error so callers see a failed invocation.
func (t *AddTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	a, okA := asInt(args["a"])
	b, okB := asInt(args["b"])
	if !okA || !okB {
		return "", &errs.ValidationError{Reason: "both parameters must be integers"}
	}

	result := a + b
	slog.Info("Performed addition", "a", a, "b", b, "result", result)
	return strconv.FormatInt(result, 10), nil
}

// asInt accepts the numeric shapes JSON decoding can produce.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return i, true
		}
	}
	return 0, false
}
