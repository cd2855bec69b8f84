package introspect

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/uiprobe/uiprobe/internal/host"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

// handlerFunc runs one method synchronously inside the UI context. It
// must not block or suspend; any failure becomes an error result.
type handlerFunc func(params json.RawMessage) protocol.Result

// methodHandlers builds the fixed method-name dispatch table. New methods
// are added here, never via runtime introspection.
func (s *Server) methodHandlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		protocol.MethodGetWindows:     s.handleGetWindows,
		protocol.MethodClickElement:   s.handleClickElement,
		protocol.MethodSendKey:        s.handleSendKey,
		protocol.MethodGetAppState:    s.handleGetAppState,
		protocol.MethodGetLogs:        s.handleGetLogs,
		protocol.MethodInspectUITree:  s.handleInspectUITree,
		protocol.MethodGetElement:     s.handleGetElement,
		protocol.MethodTakeScreenshot: s.handleTakeScreenshot,
		protocol.MethodExecuteAction:  s.handleExecuteAction,
	}
}

func (s *Server) handleGetWindows(json.RawMessage) protocol.Result {
	activeID, _ := s.host.ActiveWindowID()

	windows := make([]protocol.WindowInfo, 0)
	for _, w := range s.host.Windows() {
		windows = append(windows, protocol.WindowInfo{
			ID:       w.ID,
			Title:    w.Title,
			Bounds:   w.Bounds,
			IsActive: w.ID == activeID,
		})
	}
	return protocol.Ok(windows)
}

func (s *Server) handleClickElement(params json.RawMessage) protocol.Result {
	var ev protocol.ClickParams
	if err := json.Unmarshal(params, &ev); err != nil {
		return protocol.Err(err.Error())
	}

	button, err := host.ParseMouseButton(ev.Button)
	if err != nil {
		return protocol.Err(err.Error())
	}

	activeID, ok := s.host.ActiveWindowID()
	if !ok {
		return protocol.Err("No active window")
	}

	if err := s.host.DispatchClick(activeID, ev.X, ev.Y, button); err != nil {
		return protocol.Err(err.Error())
	}

	Logf("Click at (%g, %g)", ev.X, ev.Y)
	return protocol.Ok(protocol.ClickResult{Success: true})
}

// buildChord assembles the canonical modifier-prefixed chord string in
// fixed order: ctrl, alt, shift, meta, then key. Meta uses the "cmd"
// token the host keystroke parser expects.
func buildChord(ev protocol.KeyParams) string {
	var chord string
	if ev.Modifiers.Ctrl {
		chord += "ctrl-"
	}
	if ev.Modifiers.Alt {
		chord += "alt-"
	}
	if ev.Modifiers.Shift {
		chord += "shift-"
	}
	if ev.Modifiers.Meta {
		chord += "cmd-"
	}
	return chord + ev.Key
}

func (s *Server) handleSendKey(params json.RawMessage) protocol.Result {
	var ev protocol.KeyParams
	if err := json.Unmarshal(params, &ev); err != nil {
		return protocol.Err(err.Error())
	}

	chord := buildChord(ev)

	activeID, ok := s.host.ActiveWindowID()
	if !ok {
		return protocol.Err("No active window")
	}

	dispatched, err := s.host.DispatchKey(activeID, chord)
	if err != nil {
		return protocol.Err(err.Error())
	}

	Logf("Key '%s' dispatched: %t", chord, dispatched)
	return protocol.Ok(protocol.KeyResult{Success: true, Dispatched: dispatched})
}

func (s *Server) handleGetAppState(json.RawMessage) protocol.Result {
	windows := s.host.Windows()

	var activeWindow *string
	if id, ok := s.host.ActiveWindowID(); ok {
		activeWindow = &id
	}

	summaries := make([]protocol.WindowSummary, 0, len(windows))
	for _, w := range windows {
		summaries = append(summaries, protocol.WindowSummary{
			ID:     w.ID,
			Title:  w.Title,
			Bounds: w.Bounds,
		})
	}

	return protocol.Ok(protocol.AppState{
		WindowCount:  len(windows),
		ActiveWindow: activeWindow,
		Windows:      summaries,
	})
}

func (s *Server) handleGetLogs(json.RawMessage) protocol.Result {
	return protocol.Ok(protocol.LogsResult{Logs: defaultRing.Snapshot()})
}

// windowElement builds the "Window" node for one live window, with its
// inspected subtree as children.
func (s *Server) windowElement(w host.Window, active bool, withActive bool) protocol.UiElement {
	props := map[string]any{"title": w.Title}
	if withActive {
		props["is_active"] = active
	}
	return protocol.UiElement{
		ID:          w.ID,
		ElementType: "Window",
		Bounds:      w.Bounds,
		Visible:     true,
		Children:    buildElementTree(w.ID, s.host.InspectorRecords(w.ID)),
		Properties:  props,
		ContentSize: &[2]float64{w.Bounds.Width, w.Bounds.Height},
	}
}

func (s *Server) handleInspectUITree(json.RawMessage) protocol.Result {
	activeID, _ := s.host.ActiveWindowID()
	windows := s.host.Windows()

	children := make([]protocol.UiElement, 0, len(windows))
	for _, w := range windows {
		children = append(children, s.windowElement(w, w.ID == activeID, true))
	}

	tree := protocol.UiTree{
		Root: protocol.UiElement{
			ID:          "app",
			ElementType: "Application",
			Visible:     true,
			Children:    children,
			Properties:  map[string]any{},
		},
		WindowCount: len(windows),
		Timestamp:   time.Now().Unix(),
	}
	return protocol.Ok(tree)
}

func (s *Server) handleGetElement(params json.RawMessage) protocol.Result {
	var p protocol.GetElementParams
	if err := json.Unmarshal(params, &p); err != nil {
		return protocol.Err(err.Error())
	}
	query := p.ElementID

	for _, w := range s.host.Windows() {
		// A window-id match returns the window with its full subtree.
		if w.ID == query {
			return protocol.Ok(s.windowElement(w, false, false))
		}

		// Otherwise scan the flat records: exact composite id, exact
		// global id, or global-id suffix. First match wins, in the
		// host's enumeration order.
		for _, rec := range s.host.InspectorRecords(w.ID) {
			fullID := compositeID(w.ID, rec)
			if fullID == query || rec.GlobalID == query || strings.HasSuffix(rec.GlobalID, query) {
				return protocol.Ok(recordElement(w.ID, rec))
			}
		}
	}

	return protocol.Errf("Element not found: %s", query)
}

func (s *Server) handleTakeScreenshot(json.RawMessage) protocol.Result {
	// Stable stub: rendered-frame capture is not exposed by the host.
	return protocol.Ok(protocol.ScreenshotResult{
		Error:               "Screenshots are not yet supported",
		PNGBase64:           "",
		Width:               0,
		Height:              0,
		HighlightedElements: []string{},
	})
}

func (s *Server) handleExecuteAction(params json.RawMessage) protocol.Result {
	var p protocol.ExecuteActionParams
	if err := json.Unmarshal(params, &p); err != nil {
		return protocol.Err(err.Error())
	}

	args := string(p.Args)
	if args == "" {
		args = "null"
	}
	Logf("Execute action: %s (args: %s)", p.Action, args)

	// Actions cannot be safely constructed from a string name alone, so
	// dynamic dispatch stays unsupported.
	return protocol.Ok(protocol.ActionResult{
		Status: "not_implemented",
		Message: fmt.Sprintf(
			"Dynamic action dispatch not yet supported. Action: '%s', Args: %s",
			p.Action, args,
		),
	})
}
