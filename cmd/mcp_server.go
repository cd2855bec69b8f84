package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

// mcpServer bridges MCP tools to a running application's introspection
// socket. A fresh connection is dialed per call so a long MCP session
// survives application restarts.
type mcpServer struct {
	socketPath string
	timeout    time.Duration
	callMu     sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport  string
	Port       int
	SocketPath string
	Timeout    time.Duration
}

// newMCPServer creates and configures an MCP server with all uiprobe tools.
func newMCPServer(cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		socketPath: cfg.SocketPath,
		timeout:    cfg.Timeout,
	}

	s.mcp = mcpserver.NewMCPServer(
		"uiprobe",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// forward issues one socket call and renders the payload as YAML text.
func (s *mcpServer) forward(method string, params any) (*mcp.CallToolResult, error) {
	s.callMu.Lock()
	defer s.callMu.Unlock()

	c, err := client.Dial(s.socketPath, s.timeout)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer c.Close()

	raw, err := c.Call(method, params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return mcp.NewToolResultText(string(raw)), nil
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultText(string(raw)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) registerTools() {
	// get_windows
	s.mcp.AddTool(
		mcp.NewTool("get_windows",
			mcp.WithDescription("List all live windows of the connected application with bounds and active-window flag"),
		),
		s.handleGetWindows,
	)

	// click_element
	s.mcp.AddTool(
		mcp.NewTool("click_element",
			mcp.WithDescription("Synthesize a mouse click at logical coordinates in the application's active window"),
			mcp.WithNumber("x", mcp.Description("Click at X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Click at Y coordinate"), mcp.Required()),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle")),
		),
		s.handleClickElement,
	)

	// send_key
	s.mcp.AddTool(
		mcp.NewTool("send_key",
			mcp.WithDescription("Send a key chord to the active window (modifiers applied in order ctrl, alt, shift, meta)"),
			mcp.WithString("key", mcp.Description("Key to send (e.g. 's', 'enter', 'tab')"), mcp.Required()),
			mcp.WithBoolean("ctrl", mcp.Description("Hold ctrl")),
			mcp.WithBoolean("alt", mcp.Description("Hold alt")),
			mcp.WithBoolean("shift", mcp.Description("Hold shift")),
			mcp.WithBoolean("meta", mcp.Description("Hold meta/cmd")),
		),
		s.handleSendKey,
	)

	// get_app_state
	s.mcp.AddTool(
		mcp.NewTool("get_app_state",
			mcp.WithDescription("Window count, active window id, and a compact per-window summary"),
		),
		s.handleGetAppState,
	)

	// get_logs
	s.mcp.AddTool(
		mcp.NewTool("get_logs",
			mcp.WithDescription("Snapshot of the application's bounded in-memory diagnostic log buffer"),
		),
		s.handleGetLogs,
	)

	// inspect_ui_tree
	s.mcp.AddTool(
		mcp.NewTool("inspect_ui_tree",
			mcp.WithDescription("Reconstruct the hierarchical UI element tree for every live window"),
		),
		s.handleInspectUITree,
	)

	// get_element
	s.mcp.AddTool(
		mcp.NewTool("get_element",
			mcp.WithDescription("Look up a single UI element by window id, composite id, exact global id, or global-id suffix"),
			mcp.WithString("element_id", mcp.Description("Element identifier to search for"), mcp.Required()),
		),
		s.handleGetElement,
	)

	// take_screenshot
	s.mcp.AddTool(
		mcp.NewTool("take_screenshot",
			mcp.WithDescription("Request a screenshot; the server replies with a stable not-supported stub"),
		),
		s.handleTakeScreenshot,
	)

	// execute_action
	s.mcp.AddTool(
		mcp.NewTool("execute_action",
			mcp.WithDescription("Request a named action; dynamic dispatch is unsupported and reports not_implemented"),
			mcp.WithString("action", mcp.Description("Action name"), mcp.Required()),
			mcp.WithString("args", mcp.Description("Action arguments as a JSON value")),
		),
		s.handleExecuteAction,
	)
}

func (s *mcpServer) handleGetWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(protocol.MethodGetWindows, nil)
}

func (s *mcpServer) handleClickElement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(protocol.MethodClickElement, protocol.ClickParams{
		X:      FloatParam(params, "x", 0),
		Y:      FloatParam(params, "y", 0),
		Button: StringParam(params, "button", "left"),
	})
}

func (s *mcpServer) handleSendKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(protocol.MethodSendKey, protocol.KeyParams{
		Key: StringParam(params, "key", ""),
		Modifiers: protocol.Modifiers{
			Ctrl:  BoolParam(params, "ctrl", false),
			Alt:   BoolParam(params, "alt", false),
			Shift: BoolParam(params, "shift", false),
			Meta:  BoolParam(params, "meta", false),
		},
	})
}

func (s *mcpServer) handleGetAppState(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(protocol.MethodGetAppState, nil)
}

func (s *mcpServer) handleGetLogs(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(protocol.MethodGetLogs, nil)
}

func (s *mcpServer) handleInspectUITree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(protocol.MethodInspectUITree, nil)
}

func (s *mcpServer) handleGetElement(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(protocol.MethodGetElement, protocol.GetElementParams{
		ElementID: StringParam(params, "element_id", ""),
	})
}

func (s *mcpServer) handleTakeScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(protocol.MethodTakeScreenshot, nil)
}

func (s *mcpServer) handleExecuteAction(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	args := StringParam(params, "args", "null")
	if !json.Valid([]byte(args)) {
		return mcp.NewToolResultError(fmt.Sprintf("args is not valid JSON: %s", args)), nil
	}
	return s.forward(protocol.MethodExecuteAction, protocol.ExecuteActionParams{
		Action: StringParam(params, "action", ""),
		Args:   json.RawMessage(args),
	})
}
