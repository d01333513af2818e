package props

import "testing"

func TestMerge_AddsNewKeys(t *testing.T) {
	bag := NewBag()

	if !bag.Merge(map[string]any{"name": "Alice"}) {
		t.Error("expected merge of a new key to report a change")
	}
	value, ok := bag.Get("name")
	if !ok || value != "Alice" {
		t.Errorf("expected name=Alice, got %v (ok=%v)", value, ok)
	}
}

func TestMerge_IsIdempotent(t *testing.T) {
	bag := NewBag()
	partial := map[string]any{"name": "Alice", "count": 3}

	if !bag.Merge(partial) {
		t.Fatal("expected first merge to report a change")
	}
	if bag.Merge(partial) {
		t.Error("expected second identical merge to report no change")
	}
}

func TestMerge_IsAdditive(t *testing.T) {
	bag := NewBag()
	bag.Merge(map[string]any{"a": 1, "b": 2})
	bag.Merge(map[string]any{"b": 3})

	if a, _ := bag.Get("a"); a != 1 {
		t.Errorf("expected key a to survive the merge, got %v", a)
	}
	if b, _ := bag.Get("b"); b != 3 {
		t.Errorf("expected key b to be overwritten, got %v", b)
	}
	if bag.Len() != 2 {
		t.Errorf("expected 2 keys, got %d", bag.Len())
	}
}

func TestMerge_ValueChangeReported(t *testing.T) {
	bag := NewBag()
	bag.Merge(map[string]any{"count": 1})

	if !bag.Merge(map[string]any{"count": 2}) {
		t.Error("expected merge with a changed value to report a change")
	}
}

func TestMerge_SameSliceReferenceIsIdempotent(t *testing.T) {
	bag := NewBag()
	partial := map[string]any{"items": []string{"a", "b"}}

	if !bag.Merge(partial) {
		t.Fatal("expected first merge to report a change")
	}
	if bag.Merge(partial) {
		t.Error("expected re-merge of the identical slice to report no change")
	}
}

func TestMerge_EqualButDistinctSlicesChange(t *testing.T) {
	bag := NewBag()
	bag.Merge(map[string]any{"items": []string{"a"}})

	// A fresh slice is a new value even when its contents match.
	if !bag.Merge(map[string]any{"items": []string{"a"}}) {
		t.Error("expected a distinct slice to report a change")
	}
}

func TestMerge_ReslicedValueChanges(t *testing.T) {
	backing := []string{"a", "b"}
	bag := NewBag()
	bag.Merge(map[string]any{"items": backing})

	// Same backing array, different length: a different view of the data.
	if !bag.Merge(map[string]any{"items": backing[:1]}) {
		t.Error("expected a reslice with a different length to report a change")
	}
}

func TestMerge_SameMapReferenceIsIdempotent(t *testing.T) {
	bag := NewBag()
	detail := map[string]int{"count": 1}

	bag.Merge(map[string]any{"detail": detail})
	if bag.Merge(map[string]any{"detail": detail}) {
		t.Error("expected re-merge of the identical map to report no change")
	}
}

func TestMerge_NilValues(t *testing.T) {
	bag := NewBag()

	if !bag.Merge(map[string]any{"maybe": nil}) {
		t.Error("expected merge of a new nil value to report a change")
	}
	if bag.Merge(map[string]any{"maybe": nil}) {
		t.Error("expected repeated nil merge to report no change")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	bag := NewBag()
	bag.Merge(map[string]any{"a": 1})

	snapshot := bag.Snapshot()
	snapshot["a"] = 99
	snapshot["b"] = 2

	if a, _ := bag.Get("a"); a != 1 {
		t.Errorf("expected bag to be unaffected by snapshot mutation, got %v", a)
	}
	if _, ok := bag.Get("b"); ok {
		t.Error("expected bag to be unaffected by snapshot insertion")
	}
}
