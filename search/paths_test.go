package search_test

import (
	"reflect"
	"testing"

	"github.com/jenshnielsen/stationgraph/core"
	"github.com/jenshnielsen/stationgraph/search"
)

// drain pulls every remaining path from the iterator.
func drain(it *search.PathIterator) [][]core.NodeId {
	var out [][]core.NodeId
	for {
		path, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, path)
	}
}

// TestShortestPathsAscending checks that paths come out in non-decreasing
// hop count.
func TestShortestPathsAscending(t *testing.T) {
	g := edgeGraph(t,
		core.EdgeId{From: "a", To: "b"},
		core.EdgeId{From: "b", To: "d"},
		core.EdgeId{From: "a", To: "c"},
		core.EdgeId{From: "c", To: "e"},
		core.EdgeId{From: "e", To: "d"},
	)

	got := drain(search.ShortestPaths(g, "a", "d"))
	want := [][]core.NodeId{
		{"a", "b", "d"},
		{"a", "c", "e", "d"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v; want %v", got, want)
	}
}

// TestShortestPathsLexicographicTies checks equal-length ordering.
func TestShortestPathsLexicographicTies(t *testing.T) {
	g := edgeGraph(t,
		core.EdgeId{From: "a", To: "c"},
		core.EdgeId{From: "c", To: "d"},
		core.EdgeId{From: "a", To: "b"},
		core.EdgeId{From: "b", To: "d"},
	)

	got := drain(search.ShortestPaths(g, "a", "d"))
	want := [][]core.NodeId{
		{"a", "b", "d"},
		{"a", "c", "d"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v; want %v", got, want)
	}
}

// TestShortestPathsSimpleOnly verifies that a cycle does not produce
// non-simple paths.
func TestShortestPathsSimpleOnly(t *testing.T) {
	g := edgeGraph(t,
		core.EdgeId{From: "a", To: "b"},
		core.EdgeId{From: "b", To: "a"},
		core.EdgeId{From: "b", To: "c"},
	)

	got := drain(search.ShortestPaths(g, "a", "c"))
	want := [][]core.NodeId{{"a", "b", "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v; want %v", got, want)
	}
}

// TestShortestPathsNoRoute checks immediate exhaustion.
func TestShortestPathsNoRoute(t *testing.T) {
	g := edgeGraph(t, core.EdgeId{From: "b", To: "a"})
	if _, ok := search.ShortestPaths(g, "a", "b").Next(); ok {
		t.Error("want no path over a reversed edge")
	}
	if _, ok := search.ShortestPaths(g, "a", "missing").Next(); ok {
		t.Error("want no path to an unknown node")
	}
}

// TestShortestPathsTrivial covers the from == to case.
func TestShortestPathsTrivial(t *testing.T) {
	g := edgeGraph(t, core.EdgeId{From: "a", To: "b"})
	got := drain(search.ShortestPaths(g, "a", "a"))
	want := [][]core.NodeId{{"a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v; want %v", got, want)
	}
}

// TestShortestPathsGrid enumerates all four monotone routes of a 2x2 grid
// and checks count, length order and uniqueness.
func TestShortestPathsGrid(t *testing.T) {
	g := edgeGraph(t,
		core.EdgeId{From: "aa", To: "ab"},
		core.EdgeId{From: "aa", To: "ba"},
		core.EdgeId{From: "ab", To: "bb"},
		core.EdgeId{From: "ba", To: "bb"},
		core.EdgeId{From: "ab", To: "ac"},
		core.EdgeId{From: "ac", To: "bc"},
		core.EdgeId{From: "bb", To: "bc"},
	)

	got := drain(search.ShortestPaths(g, "aa", "bc"))
	seen := make(map[string]struct{})
	prev := 0
	for _, path := range got {
		if len(path) < prev {
			t.Fatalf("path lengths not non-decreasing: %v", got)
		}
		prev = len(path)
		key := ""
		for _, id := range path {
			key += string(id) + "/"
		}
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate path %v", path)
		}
		seen[key] = struct{}{}
	}
	if len(got) != 3 {
		t.Errorf("found %d paths, want 3: %v", len(got), got)
	}
}
