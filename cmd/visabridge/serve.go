package main

import (
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/10aParikh/visabridge/internal/logutil"
	"github.com/10aParikh/visabridge/internal/mcpbridge"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool catalog to an MCP host over stdio",
		RunE:  runServeCmd,
	}
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	dispatcher, registry := dispatcherFromViper(logger)

	srv := server.NewMCPServer("visabridge", strings.TrimSpace(version))
	mcpbridge.Register(srv, dispatcher, registry)

	logger.Info("serving MCP on stdio",
		"tools", registry.ToolNames(),
		"environment", viper.GetString("visa.environment"))
	return server.ServeStdio(srv)
}
