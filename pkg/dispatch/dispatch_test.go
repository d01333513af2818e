package dispatch

import "testing"

func TestDispatch_NoFunctionRegistered(t *testing.T) {
	RegisterDispatch(nil)

	if Dispatch(func() {}) {
		t.Error("expected Dispatch to return false with no function registered")
	}
}

func TestDispatch_NilCallback(t *testing.T) {
	RegisterDispatch(func(cb func()) { cb() })
	defer RegisterDispatch(nil)

	if Dispatch(nil) {
		t.Error("expected Dispatch to return false for nil callback")
	}
}

func TestDispatch_RunsThroughRegisteredFunction(t *testing.T) {
	q := NewQueue()
	RegisterDispatch(q.Enqueue)
	defer RegisterDispatch(nil)

	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("expected Dispatch to schedule the callback")
	}
	if ran {
		t.Error("expected callback to be deferred until Flush")
	}

	q.Flush()
	if !ran {
		t.Error("expected callback to run on Flush")
	}
}

func TestQueue_FlushRunsInOrder(t *testing.T) {
	q := NewQueue()

	var order []int
	q.Enqueue(func() { order = append(order, 1) })
	q.Enqueue(func() { order = append(order, 2) })
	q.Enqueue(func() { order = append(order, 3) })

	if got := q.Flush(); got != 3 {
		t.Fatalf("expected 3 callbacks run, got %d", got)
	}
	for i, v := range order {
		if v != i+1 {
			t.Fatalf("expected in-order execution, got %v", order)
		}
	}
}

func TestQueue_FlushRunsNestedEnqueues(t *testing.T) {
	q := NewQueue()

	nested := false
	q.Enqueue(func() {
		q.Enqueue(func() { nested = true })
	})

	if got := q.Flush(); got != 2 {
		t.Fatalf("expected 2 callbacks run, got %d", got)
	}
	if !nested {
		t.Error("expected nested callback to run in the same flush")
	}
}

func TestQueue_Len(t *testing.T) {
	q := NewQueue()
	q.Enqueue(func() {})
	q.Enqueue(nil) // ignored

	if q.Len() != 1 {
		t.Errorf("expected length 1, got %d", q.Len())
	}
}
