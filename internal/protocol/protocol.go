// Package protocol defines the request/response types for the uiprobe
// introspection socket. Messages are JSON-encoded and sent over a Unix
// domain socket, one per line in each direction.
package protocol

import "encoding/json"

// Method names understood by the introspection server. Names are
// case-sensitive; anything else yields an "Unknown method" error result.
const (
	MethodGetWindows     = "get_windows"
	MethodClickElement   = "click_element"
	MethodSendKey        = "send_key"
	MethodGetAppState    = "get_app_state"
	MethodGetLogs        = "get_logs"
	MethodInspectUITree  = "inspect_ui_tree"
	MethodGetElement     = "get_element"
	MethodTakeScreenshot = "take_screenshot"
	MethodExecuteAction  = "execute_action"
)

// Request is sent from a controller to the introspection server.
type Request struct {
	// ID is an opaque correlation token chosen by the caller and
	// reflected verbatim in the response. Uniqueness is the caller's
	// responsibility.
	ID string `json:"id"`
	// Method selects the handler, e.g. "get_windows".
	Method string `json:"method"`
	// Params carries method-specific arguments.
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is sent back for every accepted request, including timeouts.
type Response struct {
	ID     string `json:"id"`
	Result Result `json:"result"`
}

// Bounds is a rectangle in logical window coordinates.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WindowInfo describes one live window at request time. It is derived
// fresh from the UI host on every call and never cached.
type WindowInfo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Bounds    Bounds  `json:"bounds"`
	IsActive  bool    `json:"is_active"`
	DisplayID *string `json:"display_id"`
}

// UiElement is a node in the inspected element tree. The forest is rooted
// at a synthetic "Application" node whose children are one "Window" node
// per live window.
type UiElement struct {
	ID             string         `json:"id"`
	ElementType    string         `json:"element_type"`
	Bounds         Bounds         `json:"bounds"`
	Visible        bool           `json:"visible"`
	Children       []UiElement    `json:"children"`
	Properties     map[string]any `json:"properties"`
	SourceLocation *string        `json:"source_location"`
	StyleJSON      *string        `json:"style_json"`
	ContentSize    *[2]float64    `json:"content_size"`
}

// UiTree is the result of inspect_ui_tree.
type UiTree struct {
	Root        UiElement `json:"root"`
	WindowCount int       `json:"window_count"`
	// Timestamp is seconds since the Unix epoch at capture time.
	Timestamp int64 `json:"timestamp"`
}

// ClickParams are the parameters for click_element.
type ClickParams struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button string  `json:"button"`
}

// Modifiers are the key chord modifiers for send_key. The canonical chord
// string orders them ctrl, alt, shift, meta.
type Modifiers struct {
	Ctrl  bool `json:"ctrl"`
	Alt   bool `json:"alt"`
	Shift bool `json:"shift"`
	Meta  bool `json:"meta"`
}

// KeyParams are the parameters for send_key.
type KeyParams struct {
	Key       string    `json:"key"`
	Modifiers Modifiers `json:"modifiers"`
}

// GetElementParams are the parameters for get_element.
type GetElementParams struct {
	ElementID string `json:"element_id"`
}

// ExecuteActionParams are the parameters for execute_action. Args is
// passed through opaquely.
type ExecuteActionParams struct {
	Action string          `json:"action"`
	Args   json.RawMessage `json:"args"`
}

// ClickResult is the result payload of click_element.
type ClickResult struct {
	Success bool `json:"success"`
}

// KeyResult is the result payload of send_key. Dispatched reports whether
// the host handled the chord.
type KeyResult struct {
	Success    bool `json:"success"`
	Dispatched bool `json:"dispatched"`
}

// LogsResult is the result payload of get_logs, a snapshot of the log
// ring buffer in insertion order.
type LogsResult struct {
	Logs []string `json:"logs"`
}

// WindowSummary is the compact per-window entry in AppState.
type WindowSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Bounds Bounds `json:"bounds"`
}

// AppState is the result payload of get_app_state.
type AppState struct {
	WindowCount  int             `json:"window_count"`
	ActiveWindow *string         `json:"active_window"`
	Windows      []WindowSummary `json:"windows"`
}

// ScreenshotResult is the result payload of take_screenshot. Screenshots
// are not supported; the payload is a stable stub with zero dimensions
// and a non-empty Error.
type ScreenshotResult struct {
	Error               string   `json:"error"`
	PNGBase64           string   `json:"png_base64"`
	Width               int      `json:"width"`
	Height              int      `json:"height"`
	HighlightedElements []string `json:"highlighted_elements"`
}

// ActionResult is the result payload of execute_action. Status is always
// "not_implemented": actions cannot be safely constructed from a string
// name alone.
type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
