package scan

import (
	"context"
	"testing"
)

func TestFilterWalkerStopsAtMatch(t *testing.T) {
	tmp := t.TempDir()
	// outerfoo matches; the nested innerfoo must not be listed separately,
	// but its bytes count towards outerfoo's total.
	writeFile(t, tmp, "outerfoo/a.bin", 3)
	writeFile(t, tmp, "outerfoo/innerfoo/b.bin", 5)

	w := &FilterWalker{Filter: "foo", Agg: &Aggregator{}}
	entries := w.Find(context.Background(), tmp)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %v", len(entries), entryNames(entries))
	}
	if entries[0].Name != "outerfoo" {
		t.Errorf("matched %q, want outerfoo", entries[0].Name)
	}
	if entries[0].SizeRaw != 8 {
		t.Errorf("SizeRaw = %d, want 8", entries[0].SizeRaw)
	}
}

func TestFilterWalkerRecursesThroughNonMatches(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "one/two/three-foo/data.bin", 9)
	writeFile(t, tmp, "one/other/data.bin", 4)

	w := &FilterWalker{Filter: "foo", Agg: &Aggregator{}}
	entries := w.Find(context.Background(), tmp)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %v", len(entries), entryNames(entries))
	}
	if entries[0].Name != "three-foo" || entries[0].SizeRaw != 9 {
		t.Errorf("got %q/%d, want three-foo/9", entries[0].Name, entries[0].SizeRaw)
	}
}

func TestFilterWalkerIgnoresFiles(t *testing.T) {
	tmp := t.TempDir()
	// A file whose name contains the filter is still not a match.
	writeFile(t, tmp, "somefoo.txt", 12)
	writeFile(t, tmp, "dir/alsofoo.txt", 3)

	w := &FilterWalker{Filter: "foo", Agg: &Aggregator{}}
	entries := w.Find(context.Background(), tmp)

	if len(entries) != 0 {
		t.Errorf("got %v, want no matches", entryNames(entries))
	}
}

func TestFilterWalkerCaseSensitive(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "Foo/data.bin", 1)

	w := &FilterWalker{Filter: "foo", Agg: &Aggregator{}}
	if entries := w.Find(context.Background(), tmp); len(entries) != 0 {
		t.Errorf("matching is case-sensitive; got %v", entryNames(entries))
	}
}

func TestFilterWalkerEmptySubtree(t *testing.T) {
	tmp := t.TempDir()

	w := &FilterWalker{Filter: "foo", Agg: &Aggregator{}}
	if entries := w.Find(context.Background(), tmp); len(entries) != 0 {
		t.Errorf("got %v from an empty tree", entryNames(entries))
	}
}
