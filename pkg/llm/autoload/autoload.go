// Package autoload registers all built-in model providers via their init
// side effects. Import it blank from main.
package autoload

import (
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/llm/gemini"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/llm/ollama"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/llm/openailm"
)
