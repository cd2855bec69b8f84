package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uiprobe/uiprobe/internal/introspect"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing uiprobe tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the
introspection methods of a running application as tools. AI agents can
call tools directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for Claude Code / MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  uiprobe serve
  uiprobe serve --transport streamable-http --port 8080
  uiprobe serve --socket /tmp/myapp.sock`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	cfg := MCPConfig{
		Transport:  transport,
		Port:       port,
		SocketPath: introspect.ResolveSocketPath(viper.GetString("socket")),
		Timeout:    time.Duration(viper.GetInt("timeout")) * time.Second,
	}

	return newMCPServer(cfg).serve(cfg)
}
