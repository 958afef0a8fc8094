package contract

import (
	"fmt"
	"strings"
)

// VisionToolName is the multimodal capability. Its backend accepts only free
// text with an embedded location reference, not a structured URL field.
const VisionToolName = "vl_mode"

// RewriteVisionCall adapts a vision call that carries a separate "url"
// parameter: the key is removed and its value appended to "query" as plain
// text. Calls to other tools, or without a "url" key, pass through untouched.
func RewriteVisionCall(call *StructuredCall) {
	if call.Name != VisionToolName {
		return
	}
	rawURL, ok := call.Params["url"]
	if !ok {
		return
	}
	delete(call.Params, "url")

	query, _ := call.Params["query"].(string)
	call.Params["query"] = strings.TrimSpace(fmt.Sprintf("%s %v", query, rawURL))
}
