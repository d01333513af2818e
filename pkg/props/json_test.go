package props

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestFromJSON_FlatObject(t *testing.T) {
	partial, err := FromJSON([]byte(`{"name":"Alice","count":3,"active":true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if partial["name"] != "Alice" {
		t.Errorf("expected name=Alice, got %v", partial["name"])
	}
	if partial["count"] != float64(3) {
		t.Errorf("expected count=3.0, got %v", partial["count"])
	}
	if partial["active"] != true {
		t.Errorf("expected active=true, got %v", partial["active"])
	}
}

func TestFromJSON_NestedValues(t *testing.T) {
	partial, err := FromJSON([]byte(`{"user":{"id":7},"tags":["a","b"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, ok := partial["user"].(map[string]any)
	if !ok || user["id"] != float64(7) {
		t.Errorf("expected nested object, got %v", partial["user"])
	}
	tags, ok := partial["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("expected array of 2, got %v", partial["tags"])
	}
}

func TestFromJSON_RejectsNonObjects(t *testing.T) {
	for _, doc := range []string{`[1,2]`, `"text"`, `42`, `not json`} {
		if _, err := FromJSON([]byte(doc)); err == nil {
			t.Errorf("expected error for %s", doc)
		}
	}
}

func TestToJSON_RoundTrip(t *testing.T) {
	bag := NewBag()
	bag.Merge(map[string]any{"name": "Alice", "count": 3})

	doc, err := ToJSON(bag.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gjson.GetBytes(doc, "name").String(); got != "Alice" {
		t.Errorf("expected name=Alice, got %q", got)
	}
	if got := gjson.GetBytes(doc, "count").Int(); got != 3 {
		t.Errorf("expected count=3, got %d", got)
	}
}

func TestToJSON_DottedKeyStaysFlat(t *testing.T) {
	doc, err := ToJSON(map[string]any{"data.label": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gjson.GetBytes(doc, `data\.label`).String(); got != "x" {
		t.Errorf("expected flat dotted key, got %s", doc)
	}
	if gjson.GetBytes(doc, "data").IsObject() {
		t.Errorf("expected no nested object, got %s", doc)
	}
}
