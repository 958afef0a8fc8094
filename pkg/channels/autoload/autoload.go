// Package autoload registers all built-in channel factories.
// Importing it for side effects makes every platform available
// to the config-driven loader.
package autoload

import (
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/channels/console"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/channels/telegram"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/channels/web"
)
