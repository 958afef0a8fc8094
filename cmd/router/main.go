package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RVBB-LUV/llm-cooperation/pkg/api"
	"github.com/RVBB-LUV/llm-cooperation/pkg/channels"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/channels/autoload" // register channel factories
	"github.com/RVBB-LUV/llm-cooperation/pkg/config"
	"github.com/RVBB-LUV/llm-cooperation/pkg/gateway"
	"github.com/RVBB-LUV/llm-cooperation/pkg/handler"
	"github.com/RVBB-LUV/llm-cooperation/pkg/llm"
	_ "github.com/RVBB-LUV/llm-cooperation/pkg/llm/autoload" // register LLM providers
	"github.com/RVBB-LUV/llm-cooperation/pkg/mcp"
	"github.com/RVBB-LUV/llm-cooperation/pkg/monitor"
	"github.com/RVBB-LUV/llm-cooperation/pkg/resilience"
	"github.com/RVBB-LUV/llm-cooperation/pkg/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	monitor.PrintBanner()

	cfg, sys, err := config.Load("config.json", "system.json")
	if err != nil {
		log.Fatalf("Failed to load config.json: %v", err)
	}

	monitor.SetupSlog(sys.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Live-reload engine settings that can change at runtime
	config.WatchSystemConfig(ctx, "system.json", func(updated *config.SystemConfig) {
		monitor.SetLevel(updated.LogLevel)
	})

	oracle, err := llm.NewFromConfig(cfg.Oracle, sys)
	if err != nil {
		log.Fatalf("Failed to init oracle client: %v", err)
	}

	resilient := llm.NewResilientClient(
		oracle,
		time.Duration(sys.OracleTimeoutMs)*time.Millisecond,
		resilience.RetryConfig{
			MaxRetries: sys.MaxRetries,
			Base:       time.Duration(sys.RetryBackoffMs) * time.Millisecond,
		},
	)

	toolGateway := mcp.NewGateway(cfg.ToolServer)
	defer toolGateway.Close()

	rt := router.New(resilient, toolGateway)

	chans := channels.CreateFromConfig(cfg.Channels, sys)
	if len(chans) == 0 {
		log.Fatal("No channels configured, nothing to serve")
	}

	gw, err := gateway.NewBuilder().
		WithMonitor(monitor.NewCLIMonitor()).
		WithChannel(chans...).
		WithHandlerFactory(func(g *gateway.Manager) api.MessageHandler {
			return handler.NewQueryHandler(rt, g)
		}).
		Build()
	if err != nil {
		log.Fatalf("Failed to build gateway: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// An interactive console session ending is a shutdown request too:
	// a console-only deployment would otherwise hang with no surface left.
	var sessionDone <-chan struct{}
	for _, c := range chans {
		if d, ok := c.(interface{ Done() <-chan struct{} }); ok {
			sessionDone = d.Done()
		}
	}

	select {
	case <-sigChan:
		log.Println("Received shutdown signal. Stopping services...")
	case <-sessionDone:
		log.Println("Interactive session ended. Stopping services...")
	}

	gw.StopAll()
	log.Println("Bye!")
}
