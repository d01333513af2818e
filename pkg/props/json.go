package props

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// FromJSON parses a top-level JSON object into a property partial suitable
// for Bag.Merge. Nested objects and arrays come back as map[string]any and
// []any respectively; numbers come back as float64.
func FromJSON(doc []byte) (map[string]any, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("props: invalid JSON document")
	}
	parsed := gjson.ParseBytes(doc)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("props: expected a JSON object, got %s", parsed.Type)
	}

	partial := make(map[string]any)
	parsed.ForEach(func(key, value gjson.Result) bool {
		partial[key.String()] = value.Value()
		return true
	})
	return partial, nil
}

// ToJSON serializes a property snapshot to a JSON object. Keys are written
// verbatim (no dot-path expansion), so "a.b" stays a single key.
func ToJSON(snapshot map[string]any) ([]byte, error) {
	doc := []byte("{}")
	var err error
	for key, value := range snapshot {
		doc, err = sjson.SetBytesOptions(doc, escapePath(key), value, &sjson.Options{ReplaceInPlace: true})
		if err != nil {
			return nil, fmt.Errorf("props: cannot serialize key %q: %w", key, err)
		}
	}
	return doc, nil
}

// escapePath protects sjson path metacharacters so a property key like
// "a.b" is written as one key rather than a nested object.
func escapePath(key string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		".", "\\.",
		"*", "\\*",
		"?", "\\?",
		"|", "\\|",
	)
	return replacer.Replace(key)
}
