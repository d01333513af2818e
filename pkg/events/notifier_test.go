package events

import "testing"

func TestEmit_DeliversToLocalListener(t *testing.T) {
	n := NewNotifier()

	var got Notification
	n.On("item-selected", func(notification Notification) { got = notification })

	n.Emit("item-selected", map[string]any{"id": 7})

	if got.Name != "item-selected" {
		t.Errorf("expected name item-selected, got %q", got.Name)
	}
	detail, ok := got.Detail.(map[string]any)
	if !ok || detail["id"] != 7 {
		t.Errorf("expected detail with id=7, got %v", got.Detail)
	}
}

func TestEmit_BubblesToAncestors(t *testing.T) {
	root := NewNotifier()
	middle := NewNotifier()
	leaf := NewNotifier()
	middle.SetParent(root)
	leaf.SetParent(middle)

	var seen []string
	middle.On("ping", func(Notification) { seen = append(seen, "middle") })
	root.On("ping", func(Notification) { seen = append(seen, "root") })

	leaf.Emit("ping", nil)

	if len(seen) != 2 || seen[0] != "middle" || seen[1] != "root" {
		t.Errorf("expected bubbling order [middle root], got %v", seen)
	}
}

func TestEmit_NameFiltering(t *testing.T) {
	n := NewNotifier()

	called := false
	n.On("other", func(Notification) { called = true })

	n.Emit("ping", nil)

	if called {
		t.Error("expected listener for a different name to stay silent")
	}
}

func TestOn_CancelStopsDelivery(t *testing.T) {
	n := NewNotifier()

	count := 0
	cancel := n.On("ping", func(Notification) { count++ })

	n.Emit("ping", nil)
	cancel()
	cancel() // idempotent
	n.Emit("ping", nil)

	if count != 1 {
		t.Errorf("expected 1 delivery, got %d", count)
	}
}

func TestEmit_NoParentNoListeners(t *testing.T) {
	n := NewNotifier()
	n.Emit("ping", nil) // must not panic
}
