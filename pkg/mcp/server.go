package mcp

import (
	"context"
	"log/slog"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/tools"
)

// NewServer exposes every tool in the registry as an MCP server. Tool errors
// become error results rather than protocol failures, so the calling side
// always receives a well-formed response.
func NewServer(name, version string, registry *tools.Registry) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: name, Version: version}, nil)

	for _, tool := range registry.GetAll() {
		tool := tool
		server.AddTool(&mcpsdk.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: toSchema(tool.InputSchema()),
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			var args map[string]any
			if len(req.Params.Arguments) > 0 {
				if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
					return errorResult(errs.Describe(&errs.ValidationError{Reason: "arguments must be a JSON object"}, tool.Name())), nil
				}
			}

			result, err := tool.Execute(ctx, args)
			if err != nil {
				slog.Error("Tool execution failed", "tool", tool.Name(), "error", err)
				return errorResult(errs.Describe(err, tool.Name())), nil
			}

			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: result}},
			}, nil
		})
	}

	return server
}

// RunStdio serves requests over stdin/stdout until the context is canceled.
func RunStdio(ctx context.Context, server *mcpsdk.Server) error {
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

// toSchema converts a map-based JSON Schema into the SDK's schema type.
func toSchema(m map[string]any) *jsonschema.Schema {
	data, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil
	}
	return &schema
}

func errorResult(message string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: message}},
	}
}
