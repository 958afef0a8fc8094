// Package router implements the decision loop: the oracle model repeatedly
// picks a capability tool, the tool runs, and the collected results are
// synthesized into the final answer.
package router

import (
	"context"
	"log/slog"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/RVBB-LUV/llm-cooperation/pkg/contract"
	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
	"github.com/RVBB-LUV/llm-cooperation/pkg/mcp"
	"github.com/RVBB-LUV/llm-cooperation/pkg/prompts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxRounds bounds the number of decision rounds per query.
const maxRounds = 5

// NoResultsResponse is returned when the round budget runs out without any
// tool producing a result. No synthesis call is made in that case.
const NoResultsResponse = "Processing finished, but no valid results were collected."

// Oracle is the decision model interface the router drives.
type Oracle interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// CapabilityGateway is the tool server surface the router consumes.
type CapabilityGateway interface {
	ListTools(ctx context.Context) ([]mcp.ToolDescriptor, error)
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
}

// Router orchestrates one query at a time; a single Router value may serve
// concurrent queries since all per-query state lives on the stack.
type Router struct {
	oracle  Oracle
	gateway CapabilityGateway
}

// New wires the router to its oracle and capability gateway.
func New(oracle Oracle, gateway CapabilityGateway) *Router {
	return &Router{oracle: oracle, gateway: gateway}
}

// toolCatalog renders the advertised tools in the function-call JSON shape
// the oracle prompt expects.
func toolCatalog(tools []mcp.ToolDescriptor) (string, error) {
	type function struct {
		Name        string              `json:"name"`
		Description string              `json:"description"`
		Parameters  jsoniter.RawMessage `json:"parameters"`
	}
	type entry struct {
		Type     string   `json:"type"`
		Function function `json:"function"`
	}

	catalog := make([]entry, 0, len(tools))
	for _, t := range tools {
		catalog = append(catalog, entry{
			Type: "function",
			Function: function{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Schema,
			},
		})
	}
	raw, err := json.Marshal(catalog)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ProcessQuery runs the full decision loop for one user query and returns
// the final answer text.
func (r *Router) ProcessQuery(ctx context.Context, query string) (string, error) {
	query = contract.Sanitize(query)
	if query == "" {
		return "", fatal(&errs.ValidationError{Reason: "query cannot be empty"})
	}

	slog.Info("Processing query", "preview", preview(query))

	tools, err := r.gateway.ListTools(ctx)
	if err != nil {
		return "", fatal(err)
	}
	catalog, err := toolCatalog(tools)
	if err != nil {
		return "", fatal(err)
	}

	systemPrompt := prompts.Router(catalog)
	conversation := []llm.Message{
		llm.NewSystemMessage(systemPrompt),
		llm.NewUserMessage(query),
	}

	reply, err := r.oracle.Complete(ctx, conversation)
	if err != nil {
		return "", fatal(err)
	}
	slog.Debug("Initial decision", "preview", preview(reply))

	var evidence []string

	for round := 1; round <= maxRounds; round++ {
		slog.Info("Processing round", "round", round)

		decision := contract.Evaluate(reply)
		switch decision.Kind {
		case contract.NonConforming:
			// No tool call detected. Restart the conversation with an
			// explicit format reminder; the round is still consumed.
			slog.Info("No tool call detected, re-prompting for JSON output", "round", round)
			conversation = []llm.Message{
				llm.NewSystemMessage(systemPrompt),
				llm.NewUserMessage(prompts.Reformat(query)),
			}
			reply, err = r.oracle.Complete(ctx, conversation)
			if err != nil {
				return "", fatal(err)
			}
			continue

		case contract.Malformed:
			return "", fatal(&errs.ValidationError{Reason: "malformed tool call: " + decision.Err.Error()})
		}

		call := decision.Call
		contract.RewriteVisionCall(call)

		result, callErr := r.gateway.CallTool(ctx, call.Name, call.Params)
		if callErr != nil {
			// The failure goes back to the oracle as conversation context,
			// never into the evidence. The round is consumed.
			slog.Error("Tool execution failed", "tool", call.Name, "error", callErr)
			conversation = append(conversation, llm.NewUserMessage(prompts.ToolFailure(errs.Describe(callErr, call.Name))))
			reply, err = r.oracle.Complete(ctx, conversation)
			if err != nil {
				return "", fatal(err)
			}
			continue
		}

		evidence = append(evidence, result)
		conversation = append(conversation,
			llm.NewAssistantMessage(reply),
			llm.NewUserMessage(prompts.ToolResult(result)),
			llm.NewUserMessage(prompts.NextStep(query)),
		)

		reply, err = r.oracle.Complete(ctx, conversation)
		if err != nil {
			return "", fatal(err)
		}
		slog.Debug("Next step decision", "round", round, "preview", preview(reply))

		if strings.Contains(strings.ToLower(reply), prompts.FinishMarker) {
			slog.Info("Task completion detected", "round", round)
			break
		}
	}

	if len(evidence) == 0 {
		slog.Warn("No tool results collected")
		return NoResultsResponse, nil
	}

	conversation = append(conversation, llm.NewUserMessage(prompts.FinishGenerate(evidence, query)))
	final, err := r.oracle.Complete(ctx, conversation)
	if err != nil {
		return "", fatal(err)
	}

	slog.Info("Query processing completed successfully")
	return final, nil
}

func fatal(err error) error {
	return &errs.ClientError{Message: errs.Describe(err, "query processing"), Err: err}
}

func preview(text string) string {
	const limit = 100
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
