package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hidenb/internal/adapters/memory"
	mcpadapter "hidenb/internal/adapters/mcp"
	"hidenb/internal/config"
)

func main() {
	cfgFile := flag.String("config", "", "config file (default is $XDG_CONFIG_HOME/hidenb/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatalf("hidenb-mcp: %v", err)
	}

	svc, err := config.InitService(context.Background(), cfg, config.Host{
		Dialogs:   memory.NewDialogs(false),
		Workspace: &memory.Workspace{},
	})
	if err != nil {
		log.Fatalf("hidenb-mcp: %v", err)
	}
	defer svc.Close()

	mcpServer := server.NewMCPServer(
		"hidenb-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc.Env)
	mcpadapter.RegisterWriteTools(mcpServer, svc.Env)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("hidenb-mcp: %v", err)
	}
}
