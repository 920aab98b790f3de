package model

import "testing"

// mk builds a sequence, using each item's text as its id.
func mk(items ...Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.ID = it.Text
		out[i] = it
	}
	return out
}

func completed(t *testing.T, items []Item) map[string]bool {
	t.Helper()
	m := make(map[string]bool, len(items))
	for _, it := range items {
		m[it.Text] = it.Completed
	}
	return m
}

func TestToggleCompletesAllDescendants(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0},
		Item{Text: "child1", Depth: 1},
		Item{Text: "grand", Depth: 2},
		Item{Text: "child2", Depth: 1},
	)

	got := completed(t, Toggle(items, "root"))
	for _, name := range []string{"root", "child1", "grand", "child2"} {
		if !got[name] {
			t.Errorf("%s: want completed after toggling root", name)
		}
	}
}

func TestToggleGrandchildOffFlipsAncestorsOff(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0, Completed: true},
		Item{Text: "child1", Depth: 1, Completed: true},
		Item{Text: "grand1", Depth: 2, Completed: true},
		Item{Text: "grand2", Depth: 2, Completed: true},
		Item{Text: "child2", Depth: 1, Completed: true},
	)

	got := completed(t, Toggle(items, "grand1"))
	if got["grand1"] {
		t.Error("grand1: want incomplete")
	}
	if got["child1"] {
		t.Error("child1: want incomplete, one grandchild is incomplete")
	}
	if got["root"] {
		t.Error("root: want incomplete, transitively")
	}
	// Un-completion never cascades sideways or downward.
	if !got["grand2"] {
		t.Error("grand2: sibling must stay completed")
	}
	if !got["child2"] {
		t.Error("child2: must stay completed, its own subtree is untouched")
	}
}

func TestToggleLeafOffKeepsCompletedSiblings(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0, Completed: true},
		Item{Text: "a", Depth: 1, Completed: true},
		Item{Text: "b", Depth: 1, Completed: true},
	)

	got := completed(t, Toggle(items, "a"))
	if got["a"] {
		t.Error("a: want incomplete")
	}
	if !got["b"] {
		t.Error("b: want still completed")
	}
	if got["root"] {
		t.Error("root: want incomplete, child a is incomplete")
	}
}

func TestToggleChildlessParentUntouchedByUpwardPass(t *testing.T) {
	items := mk(
		Item{Text: "alone", Depth: 0, Completed: true},
		Item{Text: "other", Depth: 0},
		Item{Text: "kid", Depth: 1},
	)

	got := completed(t, Toggle(items, "kid"))
	if !got["alone"] {
		t.Error("alone: childless item must keep its state")
	}
	if !got["kid"] || !got["other"] {
		t.Error("kid toggle must complete kid and roll up to other")
	}
}

func TestToggleSecondSiblingCompletesParent(t *testing.T) {
	items := mk(
		Item{Text: "A", Depth: 0},
		Item{Text: "B", Depth: 1},
		Item{Text: "C", Depth: 1},
	)

	after := Toggle(items, "B")
	got := completed(t, after)
	if got["A"] {
		t.Error("A: want incomplete while C is incomplete")
	}

	got = completed(t, Toggle(after, "C"))
	if !got["A"] {
		t.Error("A: want completed once both children are")
	}
}

func TestToggleGrandchildRollsUpTwoLevels(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0},
		Item{Text: "child", Depth: 1},
		Item{Text: "grand", Depth: 2},
	)

	got := completed(t, Toggle(items, "grand"))
	if !got["child"] {
		t.Error("child: want completed, its only grandchild is")
	}
	if !got["root"] {
		t.Error("root: want completed, the child change must be visible to it")
	}
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0},
		Item{Text: "child", Depth: 1, Completed: true},
	)

	got := Toggle(items, "missing")
	if len(got) != len(items) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("item %d changed: got %+v, want %+v", i, got[i], items[i])
		}
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0},
		Item{Text: "child", Depth: 1},
	)

	Toggle(items, "root")
	for _, it := range items {
		if it.Completed {
			t.Fatalf("%s: input sequence was mutated", it.Text)
		}
	}
}

func TestDirectChildrenSkipDeeperRuns(t *testing.T) {
	items := mk(
		Item{Text: "root", Depth: 0},
		Item{Text: "c1", Depth: 1},
		Item{Text: "g1", Depth: 2},
		Item{Text: "g2", Depth: 2},
		Item{Text: "c2", Depth: 1},
		Item{Text: "next", Depth: 0},
	)

	kids := directChildren(items, 0)
	want := []int{1, 4}
	if len(kids) != len(want) {
		t.Fatalf("got %v, want %v", kids, want)
	}
	for i := range want {
		if kids[i] != want[i] {
			t.Fatalf("got %v, want %v", kids, want)
		}
	}

	if got := directChildren(items, 5); got != nil {
		t.Errorf("next: want no children, got %v", got)
	}
}
