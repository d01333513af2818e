// Package navigation defines the client-side navigation capability consumed
// by components, plus the transient parameter stash used to hand complex
// values to the component mounted at the destination.
//
// Path matching and history management are the navigator implementation's
// problem; this package only carries the contracts.
package navigation

import (
	"net/url"
	"strings"
)

// Navigator changes the active path. Implementations wrap a real client
// router (history pushState, hash routing, a test double).
type Navigator interface {
	// Go navigates to path, which may carry a query string.
	Go(path string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string) error

func (f NavigatorFunc) Go(path string) error { return f(path) }

// Location describes a matched route as seen by a component entering it.
type Location struct {
	// Path is the matched path without query or fragment.
	Path string
	// Params holds the path parameters extracted by the router.
	Params map[string]string
	// Query holds the parsed query parameters.
	Query url.Values
}

// Key returns the stash key for this location: path plus canonical query
// string. Locations differing only in query parameter order share a key.
func (l Location) Key() string {
	return StashKey(l.Path, l.Query)
}

// SplitPath separates a navigation path into its path and query components.
// A missing or malformed query yields empty values.
func SplitPath(path string) (string, url.Values) {
	raw := path
	if idx := strings.IndexAny(raw, "#"); idx >= 0 {
		raw = raw[:idx]
	}
	if idx := strings.Index(raw, "?"); idx >= 0 {
		query, err := url.ParseQuery(raw[idx+1:])
		if err != nil {
			return raw[:idx], url.Values{}
		}
		return raw[:idx], query
	}
	return raw, url.Values{}
}

// StashKey builds the canonical path+query key used by the Stash.
func StashKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
