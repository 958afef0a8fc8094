// The toolserver binary exposes the capability tools over MCP stdio.
// The router spawns it as a subprocess; stdout carries the protocol,
// so all logging goes to stderr.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/llm/autoload" // register LLM providers
	"github.com/RVBB-LUV/llm-cooperation/pkg/mcp"
	"github.com/RVBB-LUV/llm-cooperation/pkg/models"
	"github.com/RVBB-LUV/llm-cooperation/pkg/monitor"
	"github.com/RVBB-LUV/llm-cooperation/pkg/resilience"
	"github.com/RVBB-LUV/llm-cooperation/pkg/tools"

	"github.com/joho/godotenv"
)

const serverVersion = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg, sys, err := config.Load("config.json", "system.json")
	if err != nil {
		log.Fatalf("Failed to load config.json: %v", err)
	}

	monitor.SetupSlog(sys.LogLevel)

	math, err := buildBackend(cfg, sys, "math")
	if err != nil {
		log.Fatalf("Failed to init math backend: %v", err)
	}
	vision, err := buildBackend(cfg, sys, "vision")
	if err != nil {
		log.Fatalf("Failed to init vision backend: %v", err)
	}
	light, err := buildBackend(cfg, sys, "light")
	if err != nil {
		log.Fatalf("Failed to init light backend: %v", err)
	}

	manager := models.NewManager(math, vision, light)

	registry := tools.NewRegistry()
	registry.Register(tools.NewMathCodeTool(manager))
	registry.Register(tools.NewVisionTool(manager))
	registry.Register(tools.NewLightTool(manager))
	registry.Register(tools.NewAddTool())

	server := mcp.NewServer("intelligent-ai-router", serverVersion, registry)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mcp.RunStdio(ctx, server); err != nil {
		log.Fatalf("Tool server stopped: %v", err)
	}
}

// buildBackend creates one model client from the backends config map and
// wraps it with timeout and retry handling.
func buildBackend(cfg *config.Config, sys *config.SystemConfig, name string) (llm.Client, error) {
	raw, ok := cfg.Backends[name]
	if !ok {
		log.Fatalf("Missing backend config: %s", name)
	}

	client, err := llm.NewFromConfig(raw, sys)
	if err != nil {
		return nil, err
	}

	return llm.NewResilientClient(
		client,
		time.Duration(sys.OracleTimeoutMs)*time.Millisecond,
		resilience.RetryConfig{
			MaxRetries: sys.MaxRetries,
			Base:       time.Duration(sys.RetryBackoffMs) * time.Millisecond,
		},
	), nil
}
