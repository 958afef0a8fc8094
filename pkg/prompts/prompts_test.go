package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterEmbedsCatalog(t *testing.T) {
	catalog := `[{"type":"function","function":{"name":"add"}}]`
	p := Router(catalog)
	assert.True(t, strings.HasSuffix(p, catalog))
	assert.Contains(t, p, "```json")
}

func TestReformatKeepsQueryFirst(t *testing.T) {
	p := Reformat("add 1 and 3")
	assert.True(t, strings.HasPrefix(p, "add 1 and 3"))
	assert.Contains(t, p, "valid JSON")
}

func TestNextStepNamesFinishMarker(t *testing.T) {
	p := NextStep("the question")
	assert.Contains(t, p, FinishMarker)
	assert.Contains(t, p, "the question")
}

func TestFinishGenerateJoinsEvidence(t *testing.T) {
	p := FinishGenerate([]string{"first result", "second result"}, "the question")
	assert.Contains(t, p, "first result\n\nsecond result")
	assert.Contains(t, p, "the question")
}

func TestConversationWrappers(t *testing.T) {
	assert.Equal(t, "Tool call failed: boom", ToolFailure("boom"))
	assert.Equal(t, "Tool call result: 8", ToolResult("8"))
}
