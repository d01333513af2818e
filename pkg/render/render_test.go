package render

import "testing"

func TestNewTarget_UniqueIDs(t *testing.T) {
	a := NewTarget()
	b := NewTarget()
	if a.ID() == b.ID() {
		t.Fatalf("expected distinct target ids, both %q", a.ID())
	}
}

func TestMemoryRenderer_RecordsLastFragmentPerTarget(t *testing.T) {
	r := NewMemoryRenderer()
	target := r.CreateTarget()

	if _, ok := r.Output(target); ok {
		t.Fatal("expected no output before Apply")
	}

	if err := r.Apply(target, Fragment{Markup: "<p>one</p>"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := r.Apply(target, Fragment{Markup: "<p>two</p>"}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	out, ok := r.Output(target)
	if !ok || out.Markup != "<p>two</p>" {
		t.Errorf("expected last fragment to win, got %+v (ok=%v)", out, ok)
	}
	if r.Applies() != 2 {
		t.Errorf("expected 2 applies, got %d", r.Applies())
	}
}
