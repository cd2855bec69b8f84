// Package host defines the capability surface the introspection server
// consumes from the embedding UI application. The server never touches
// window or widget state except through these narrow calls.
package host

import "github.com/uiprobe/uiprobe/internal/protocol"

// Window is one live window as reported by the host.
type Window struct {
	ID     string
	Title  string
	Bounds protocol.Bounds
}

// InspectorRecord is one flat inspection entry for a window. GlobalID is
// the dot-separated ancestry path; InstanceID disambiguates otherwise
// identical paths produced by repeated constructs.
type InspectorRecord struct {
	GlobalID       string
	InstanceID     int
	Bounds         protocol.Bounds
	SourceLocation string
	ContentMask    protocol.Bounds
}

// Host is implemented by the embedding application. All methods are
// invoked from the single goroutine that drains the request bridge, never
// concurrently, so implementations do not need their own locking.
type Host interface {
	// Windows returns all live windows in enumeration order.
	Windows() []Window

	// ActiveWindowID returns the id of the currently active window.
	ActiveWindowID() (string, bool)

	// DispatchClick synthesizes a mouse click at a logical position
	// within the given window.
	DispatchClick(windowID string, x, y float64, button MouseButton) error

	// DispatchKey parses a canonical chord string such as "ctrl-shift-s"
	// and dispatches it to the given window, reporting whether the host
	// handled it. An unparseable chord is an error.
	DispatchKey(windowID, chord string) (bool, error)

	// InspectorRecords returns the flat inspection entries for one
	// window. Order is not stable across calls.
	InspectorRecords(windowID string) []InspectorRecord
}
