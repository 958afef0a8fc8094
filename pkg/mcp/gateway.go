// Package mcp connects the router to the capability tool server over the
// Model Context Protocol, and exposes the local tool registry as an MCP
// server for the tool server binary.
package mcp

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// transportBuilder is overridden in tests to stub the transport factory.
var transportBuilder = buildCommandTransport

// ToolDescriptor describes one remote tool as advertised by the server.
type ToolDescriptor struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Schema      jsoniter.RawMessage `json:"parameters"`
}

// Gateway wraps the official MCP SDK client. The connection is established
// lazily on first use and reused afterwards.
type Gateway struct {
	client     *mcpsdk.Client
	session    *mcpsdk.ClientSession
	command    string
	args       []string
	once       sync.Once
	connectErr error
}

// NewGateway prepares a gateway that spawns the configured tool server
// command over a stdio transport.
func NewGateway(cfg config.ToolServerConfig) *Gateway {
	impl := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "llm-cooperation", Version: "1.0.0"}, nil)
	return &Gateway{
		client:  impl,
		command: cfg.Command,
		args:    cfg.Args,
	}
}

func (g *Gateway) ensureConnected(ctx context.Context) error {
	g.once.Do(func() {
		transport, err := transportBuilder(ctx, g.command, g.args)
		if err != nil {
			g.connectErr = &errs.ClientError{Message: "failed to build tool server transport", Err: err}
			return
		}
		session, err := g.client.Connect(ctx, transport, nil)
		if err != nil {
			g.connectErr = &errs.ClientError{Message: "failed to connect to tool server", Err: err}
			return
		}
		g.session = session
	})
	return g.connectErr
}

// ListTools fetches the advertised tool list.
func (g *Gateway) ListTools(ctx context.Context) ([]ToolDescriptor, error) {
	if err := g.ensureConnected(ctx); err != nil {
		return nil, err
	}

	var tools []ToolDescriptor
	for tool, err := range g.session.Tools(ctx, nil) {
		if err != nil {
			return nil, &errs.ClientError{Message: "failed to list tools", Err: err}
		}
		schema, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return nil, &errs.ClientError{Message: fmt.Sprintf("invalid schema for tool %s", tool.Name), Err: err}
		}
		tools = append(tools, ToolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			Schema:      schema,
		})
	}
	return tools, nil
}

// CallTool invokes a remote tool and returns its text output. Remote
// failures, error results, and empty results all surface as
// ToolExecutionError.
func (g *Gateway) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if err := g.ensureConnected(ctx); err != nil {
		return "", err
	}

	result, err := g.session.CallTool(ctx, &mcpsdk.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return "", &errs.ToolExecutionError{Tool: name, Err: err}
	}

	text := joinTextContent(result.Content)
	if result.IsError {
		detail := text
		if detail == "" {
			detail = "tool reported an error"
		}
		return "", &errs.ToolExecutionError{Tool: name, Err: fmt.Errorf("%s", detail)}
	}
	if text == "" {
		return "", &errs.ToolExecutionError{Tool: name, Err: fmt.Errorf("empty result")}
	}
	return text, nil
}

// Close shuts down the underlying session, if any.
func (g *Gateway) Close() error {
	if g == nil || g.session == nil {
		return nil
	}
	err := g.session.Close()
	g.session = nil
	return err
}

func joinTextContent(content []mcpsdk.Content) string {
	var parts []string
	for _, c := range content {
		if tc, ok := c.(*mcpsdk.TextContent); ok && tc.Text != "" {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func buildCommandTransport(ctx context.Context, command string, args []string) (mcpsdk.Transport, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("tool server command is empty")
	}
	cmd := exec.CommandContext(ctx, command, args...)
	return &mcpsdk.CommandTransport{Command: cmd}, nil
}
