// Package contract turns free-text oracle output into typed tool invocations.
// The wire contract is a single fenced block tagged as JSON whose body is an
// object with exactly the required keys "name" (string) and "params"
// (object). Text without such a block is non-conforming (the loop re-prompts);
// a block that fails parsing or validation is malformed (fatal for the query).
package contract

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const fenceTag = "```json"
const fence = "```"

// StructuredCall is a parsed, validated tool invocation request.
type StructuredCall struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params"`
}

// ExtractBlock looks for a fenced JSON block inside text. It is a total
// function: it never fails, and when no block is present it reports
// found=false and returns the input unchanged.
func ExtractBlock(text string) (found bool, payload string) {
	start := strings.Index(text, fenceTag)
	if start < 0 {
		return false, text
	}
	rest := text[start+len(fenceTag):]
	end := strings.Index(rest, fence)
	if end < 0 {
		return false, text
	}
	return true, strings.TrimSpace(rest[:end])
}

// ParseCall parses payload strictly against the wire contract. Any deviation
// (invalid JSON, non-object top level, missing or mistyped "name"/"params")
// yields a ValidationError; there is no partial or best-effort parse.
func ParseCall(payload string) (*StructuredCall, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &errs.ValidationError{Reason: "structured call is not a JSON object: " + err.Error()}
	}

	rawName, ok := raw["name"]
	if !ok {
		return nil, &errs.ValidationError{Reason: `structured call is missing required key "name"`}
	}
	var name string
	if err := json.Unmarshal(rawName, &name); err != nil {
		return nil, &errs.ValidationError{Reason: `"name" must be a string`}
	}
	if name == "" {
		return nil, &errs.ValidationError{Reason: `"name" must not be empty`}
	}

	rawParams, ok := raw["params"]
	if !ok {
		return nil, &errs.ValidationError{Reason: `structured call is missing required key "params"`}
	}
	params := make(map[string]any)
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, &errs.ValidationError{Reason: `"params" must be an object`}
	}

	return &StructuredCall{Name: name, Params: params}, nil
}

// DecisionKind tags the outcome of evaluating one oracle utterance.
type DecisionKind int

const (
	// Conforming: a valid structured call was extracted and parsed.
	Conforming DecisionKind = iota
	// NonConforming: no fenced block at all; the raw text is preserved.
	NonConforming
	// Malformed: a block was present but failed parsing or validation.
	Malformed
)

// Decision is the tagged result the orchestration loop switches on.
type Decision struct {
	Kind DecisionKind
	Call *StructuredCall // set when Kind == Conforming
	Raw  string          // original utterance, set when Kind == NonConforming
	Err  error           // set when Kind == Malformed
}

// Evaluate classifies one oracle utterance against the wire contract.
func Evaluate(text string) Decision {
	found, payload := ExtractBlock(text)
	if !found {
		return Decision{Kind: NonConforming, Raw: text}
	}
	call, err := ParseCall(payload)
	if err != nil {
		return Decision{Kind: Malformed, Err: err}
	}
	return Decision{Kind: Conforming, Call: call}
}
