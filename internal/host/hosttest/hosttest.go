// Package hosttest provides a scripted in-memory Host implementation for
// tests.
package hosttest

import (
	"github.com/uiprobe/uiprobe/internal/host"
)

// Click records one dispatched click.
type Click struct {
	WindowID string
	X, Y     float64
	Button   host.MouseButton
}

// Key records one dispatched chord.
type Key struct {
	WindowID string
	Chord    string
}

// Host is a fake host.Host backed by fixed data. The zero value is a
// host with no windows.
type Host struct {
	WindowList []host.Window
	ActiveID   string // empty = no active window
	Records    map[string][]host.InspectorRecord

	KeyHandled bool  // value DispatchKey reports
	KeyErr     error // forced DispatchKey failure
	ClickErr   error // forced DispatchClick failure

	Clicks []Click
	Keys   []Key
}

var _ host.Host = (*Host)(nil)

func (h *Host) Windows() []host.Window { return h.WindowList }

func (h *Host) ActiveWindowID() (string, bool) {
	return h.ActiveID, h.ActiveID != ""
}

func (h *Host) DispatchClick(windowID string, x, y float64, button host.MouseButton) error {
	if h.ClickErr != nil {
		return h.ClickErr
	}
	h.Clicks = append(h.Clicks, Click{WindowID: windowID, X: x, Y: y, Button: button})
	return nil
}

func (h *Host) DispatchKey(windowID, chord string) (bool, error) {
	if h.KeyErr != nil {
		return false, h.KeyErr
	}
	h.Keys = append(h.Keys, Key{WindowID: windowID, Chord: chord})
	return h.KeyHandled, nil
}

func (h *Host) InspectorRecords(windowID string) []host.InspectorRecord {
	return h.Records[windowID]
}
