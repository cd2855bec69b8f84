package introspect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uiprobe/uiprobe/internal/host"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

// flatEntry pairs an element with the identifiers driving tree placement.
type flatEntry struct {
	fullID   string
	globalID string
	element  protocol.UiElement
}

// compositeID derives the externally visible element id for a record.
func compositeID(windowID string, rec host.InspectorRecord) string {
	return fmt.Sprintf("%s/%s[%d]", windowID, rec.GlobalID, rec.InstanceID)
}

// elementTypeFromSource derives a human element-type label from the last
// path segment of a source location, minus extension.
func elementTypeFromSource(source string) string {
	filename := source
	if idx := strings.LastIndex(source, "/"); idx >= 0 {
		filename = source[idx+1:]
	}
	if idx := strings.Index(filename, "."); idx >= 0 {
		filename = filename[:idx]
	}
	if filename == "" {
		return "Element"
	}
	return filename
}

// recordElement converts one inspector record into a leaf UiElement.
func recordElement(windowID string, rec host.InspectorRecord) protocol.UiElement {
	source := rec.SourceLocation
	return protocol.UiElement{
		ID:          compositeID(windowID, rec),
		ElementType: elementTypeFromSource(source),
		Bounds:      rec.Bounds,
		Visible:     true,
		Children:    []protocol.UiElement{},
		Properties: map[string]any{
			"instance_id":  rec.InstanceID,
			"content_mask": rec.ContentMask,
		},
		SourceLocation: &source,
		ContentSize:    &[2]float64{rec.Bounds.Width, rec.Bounds.Height},
	}
}

// buildElementTree reconstructs a window's element forest from its flat
// inspector records. Dotted global ids only express ancestry, not direct
// adjacency (intermediate levels may be missing from the flat list), so
// each element is attached to the element holding the longest dot-bounded
// prefix of its global id. Processing runs deepest-first so a child is
// always attached before its parent can move.
func buildElementTree(windowID string, records []host.InspectorRecord) []protocol.UiElement {
	entries := make([]flatEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, flatEntry{
			fullID:   compositeID(windowID, rec),
			globalID: rec.GlobalID,
			element:  recordElement(windowID, rec),
		})
	}

	// Depth-first ordering independent of the host-reported order:
	// shallower paths first, ties broken lexicographically.
	sort.SliceStable(entries, func(i, j int) bool {
		di := strings.Count(entries[i].globalID, ".")
		dj := strings.Count(entries[j].globalID, ".")
		if di != dj {
			return di < dj
		}
		return entries[i].globalID < entries[j].globalID
	})

	idToElement := make(map[string]*protocol.UiElement, len(entries))
	idToGlobal := make(map[string]string, len(entries))
	order := make([]string, 0, len(entries))
	for i := range entries {
		e := entries[i]
		elem := e.element
		idToElement[e.fullID] = &elem
		idToGlobal[e.fullID] = e.globalID
		order = append(order, e.fullID)
	}

	assigned := make(map[string]bool)

	for i := len(order) - 1; i >= 0; i-- {
		childID := order[i]
		childGlobal := idToGlobal[childID]

		// Nearest ancestor: the longest other global id that is a strict
		// dot-bounded prefix of the child's.
		bestParent := ""
		bestLen := 0
		for j, candidateID := range order {
			if j == i {
				continue
			}
			candGlobal := idToGlobal[candidateID]
			if len(candGlobal) >= len(childGlobal) {
				continue
			}
			if strings.HasPrefix(childGlobal, candGlobal) &&
				childGlobal[len(candGlobal)] == '.' &&
				len(candGlobal) > bestLen {
				bestLen = len(candGlobal)
				bestParent = candidateID
			}
		}

		if bestParent == "" {
			continue
		}
		child, ok := idToElement[childID]
		if !ok {
			continue
		}
		delete(idToElement, childID)
		if parent, ok := idToElement[bestParent]; ok {
			parent.Children = append(parent.Children, *child)
			assigned[childID] = true
		}
	}

	// Everything never assigned to a parent is a direct child of the
	// window, returned in processing order.
	roots := make([]protocol.UiElement, 0)
	for _, id := range order {
		if assigned[id] {
			continue
		}
		if elem, ok := idToElement[id]; ok {
			roots = append(roots, *elem)
			delete(idToElement, id)
		}
	}
	return roots
}
