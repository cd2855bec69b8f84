package introspect

import (
	"sort"
	"strings"
	"testing"

	"github.com/uiprobe/uiprobe/internal/host"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

func rec(globalID string, instance int) host.InspectorRecord {
	return host.InspectorRecord{
		GlobalID:       globalID,
		InstanceID:     instance,
		Bounds:         protocol.Bounds{Width: 100, Height: 20},
		SourceLocation: "internal/widgets/panel.go",
	}
}

// edges flattens a forest into "parentID->childID" strings.
func edges(forest []protocol.UiElement) []string {
	var out []string
	var walk func(parent string, nodes []protocol.UiElement)
	walk = func(parent string, nodes []protocol.UiElement) {
		for _, n := range nodes {
			if parent != "" {
				out = append(out, parent+"->"+n.ID)
			}
			walk(n.ID, n.Children)
		}
	}
	walk("", forest)
	sort.Strings(out)
	return out
}

func findNode(forest []protocol.UiElement, id string) *protocol.UiElement {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if found := findNode(forest[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildElementTree_BasicHierarchy(t *testing.T) {
	// Host-reported order is deliberately scrambled.
	records := []host.InspectorRecord{
		rec("a.b.c", 0),
		rec("x", 0),
		rec("a", 0),
		rec("a.b", 0),
	}

	roots := buildElementTree("w1", records)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	rootIDs := []string{roots[0].ID, roots[1].ID}
	sort.Strings(rootIDs)
	if rootIDs[0] != "w1/a[0]" || rootIDs[1] != "w1/x[0]" {
		t.Errorf("roots: got %v", rootIDs)
	}

	a := findNode(roots, "w1/a[0]")
	if a == nil || len(a.Children) != 1 || a.Children[0].ID != "w1/a.b[0]" {
		t.Fatalf("a.b should be the only child of a, got %+v", a)
	}
	ab := a.Children[0]
	if len(ab.Children) != 1 || ab.Children[0].ID != "w1/a.b.c[0]" {
		t.Errorf("a.b.c should be the only child of a.b, got %+v", ab.Children)
	}
}

func TestBuildElementTree_MissingIntermediateLevel(t *testing.T) {
	// "a.b" is absent from the flat list; "a.b.c" attaches to the
	// nearest present ancestor.
	records := []host.InspectorRecord{
		rec("a", 0),
		rec("a.b.c", 0),
	}

	roots := buildElementTree("w1", records)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ID != "w1/a[0]" {
		t.Fatalf("root: got %s", roots[0].ID)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "w1/a.b.c[0]" {
		t.Errorf("a.b.c should attach to a, got %+v", roots[0].Children)
	}
}

func TestBuildElementTree_DuplicateGlobalIDs(t *testing.T) {
	records := []host.InspectorRecord{
		rec("a", 0),
		rec("a", 1),
		rec("a.b", 0),
	}

	roots := buildElementTree("w1", records)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots for the duplicated path, got %d", len(roots))
	}
	for _, r := range roots {
		if !strings.HasPrefix(r.ID, "w1/a[") {
			t.Errorf("unexpected root %s", r.ID)
		}
	}

	// a.b must be attached to one of the two, never promoted to a root.
	if findNode(roots, "w1/a.b[0]") == nil {
		t.Fatal("a.b missing from the forest")
	}
	childCount := len(roots[0].Children) + len(roots[1].Children)
	if childCount != 1 {
		t.Errorf("a.b should be a child exactly once, got %d children", childCount)
	}
}

func TestBuildElementTree_OrderIndependence(t *testing.T) {
	base := []host.InspectorRecord{
		rec("view", 0),
		rec("view.panel", 0),
		rec("view.panel.row", 0),
		rec("view.panel.row", 1),
		rec("view.sidebar", 0),
		rec("toolbar", 0),
	}

	want := edges(buildElementTree("w1", base))

	// Reversed and rotated inputs must yield the same parent/child edges.
	permutations := [][]host.InspectorRecord{
		{base[5], base[4], base[3], base[2], base[1], base[0]},
		{base[2], base[5], base[0], base[3], base[1], base[4]},
	}
	for i, perm := range permutations {
		got := edges(buildElementTree("w1", perm))
		if len(got) != len(want) {
			t.Fatalf("permutation %d: edge count %d != %d", i, len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("permutation %d: edge %d: got %s, want %s", i, j, got[j], want[j])
			}
		}
	}
}

func TestBuildElementTree_NoSelfParenting(t *testing.T) {
	records := []host.InspectorRecord{
		rec("a", 0),
		rec("a", 1),
	}
	roots := buildElementTree("w1", records)
	if len(roots) != 2 {
		t.Fatalf("equal paths must both stay roots, got %d", len(roots))
	}
	for _, r := range roots {
		if len(r.Children) != 0 {
			t.Errorf("element %s must not adopt its twin", r.ID)
		}
	}
}

func TestElementTypeFromSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"internal/widgets/switch.go", "switch"},
		{"internal/widgets/title_bar.go", "title_bar"},
		{"panel.go", "panel"},
		{"Custom", "Custom"},
		{"", "Element"},
	}
	for _, tt := range tests {
		if got := elementTypeFromSource(tt.source); got != tt.want {
			t.Errorf("elementTypeFromSource(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestRecordElement_Properties(t *testing.T) {
	r := host.InspectorRecord{
		GlobalID:       "view.panel",
		InstanceID:     3,
		Bounds:         protocol.Bounds{X: 1, Y: 2, Width: 30, Height: 40},
		SourceLocation: "internal/widgets/panel.go",
		ContentMask:    protocol.Bounds{Width: 30, Height: 40},
	}

	el := recordElement("w9", r)
	if el.ID != "w9/view.panel[3]" {
		t.Errorf("composite id: got %s", el.ID)
	}
	if el.ElementType != "panel" {
		t.Errorf("element type: got %s", el.ElementType)
	}
	if el.Properties["instance_id"] != 3 {
		t.Errorf("instance_id property: got %v", el.Properties["instance_id"])
	}
	if el.ContentSize == nil || el.ContentSize[0] != 30 || el.ContentSize[1] != 40 {
		t.Errorf("content size: got %v", el.ContentSize)
	}
}
