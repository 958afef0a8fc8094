package contract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RVBB-LUV/llm-cooperation/pkg/errs"
)

func TestExtractBlock(t *testing.T) {
	t.Run("valid fenced block", func(t *testing.T) {
		found, payload := ExtractBlock("thinking...\n```json\n{\"name\":\"add\"}\n```\ndone")
		assert.True(t, found)
		assert.Equal(t, `{"name":"add"}`, payload)
	})

	t.Run("no block returns input unchanged", func(t *testing.T) {
		found, payload := ExtractBlock("plain prose, no fence")
		assert.False(t, found)
		assert.Equal(t, "plain prose, no fence", payload)
	})

	t.Run("unterminated fence is not a block", func(t *testing.T) {
		input := "```json\n{\"name\":\"add\"}"
		found, payload := ExtractBlock(input)
		assert.False(t, found)
		assert.Equal(t, input, payload)
	})

	t.Run("only first block is extracted", func(t *testing.T) {
		found, payload := ExtractBlock("```json\n{\"a\":1}\n```\n```json\n{\"b\":2}\n```")
		assert.True(t, found)
		assert.Equal(t, `{"a":1}`, payload)
	})
}

func TestParseCall(t *testing.T) {
	t.Run("valid call", func(t *testing.T) {
		call, err := ParseCall(`{"name":"math_code","params":{"query":"1+1"}}`)
		require.NoError(t, err)
		assert.Equal(t, "math_code", call.Name)
		assert.Equal(t, "1+1", call.Params["query"])
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseCall(`{"name":`)
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := ParseCall(`{"params":{}}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := ParseCall(`{"name":"","params":{}}`)
		require.Error(t, err)
	})

	t.Run("missing params", func(t *testing.T) {
		_, err := ParseCall(`{"name":"add"}`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "params")
	})

	t.Run("params must be an object", func(t *testing.T) {
		_, err := ParseCall(`{"name":"add","params":[1,2]}`)
		require.Error(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("conforming", func(t *testing.T) {
		d := Evaluate("```json\n{\"name\":\"add\",\"params\":{\"a\":1,\"b\":2}}\n```")
		require.Equal(t, Conforming, d.Kind)
		assert.Equal(t, "add", d.Call.Name)
	})

	t.Run("non-conforming preserves raw text", func(t *testing.T) {
		d := Evaluate("I think the answer is 42.")
		require.Equal(t, NonConforming, d.Kind)
		assert.Equal(t, "I think the answer is 42.", d.Raw)
	})

	t.Run("malformed", func(t *testing.T) {
		d := Evaluate("```json\n{\"name\":\"add\"}\n```")
		require.Equal(t, Malformed, d.Kind)
		assert.Error(t, d.Err)
	})
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("  hello \n"))
	assert.Equal(t, "clean", Sanitize("clean"))

	long := strings.Repeat("x", MaxQueryLength+500)
	got := Sanitize(long)
	assert.Len(t, got, MaxQueryLength)

	t.Run("multibyte input is capped by rune count", func(t *testing.T) {
		got := Sanitize(strings.Repeat("世", MaxQueryLength+500))
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, MaxQueryLength, utf8.RuneCountInString(got))
	})

	t.Run("multibyte input within the cap is untouched", func(t *testing.T) {
		input := strings.Repeat("世", 9000)
		assert.Equal(t, input, Sanitize(input))
	})
}

func TestRewriteVisionCall(t *testing.T) {
	t.Run("url merged into query", func(t *testing.T) {
		call := &StructuredCall{
			Name: VisionToolName,
			Params: map[string]any{
				"query": "describe this image",
				"url":   "https://example.com/cat.png",
			},
		}
		RewriteVisionCall(call)
		assert.NotContains(t, call.Params, "url")
		assert.Equal(t, "describe this image https://example.com/cat.png", call.Params["query"])
	})

	t.Run("url only", func(t *testing.T) {
		call := &StructuredCall{
			Name:   VisionToolName,
			Params: map[string]any{"url": "https://example.com/cat.png"},
		}
		RewriteVisionCall(call)
		assert.Equal(t, "https://example.com/cat.png", call.Params["query"])
	})

	t.Run("other tools untouched", func(t *testing.T) {
		call := &StructuredCall{
			Name:   "math_code",
			Params: map[string]any{"query": "1+1", "url": "https://example.com"},
		}
		RewriteVisionCall(call)
		assert.Contains(t, call.Params, "url")
	})
}
