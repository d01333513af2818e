// Package dispatch marshals callbacks onto the host's UI loop.
//
// Hosts with a single logical thread of control (a browser event loop, a
// platform main thread) register a dispatch function once at startup; runtime
// code then posts work through Dispatch instead of invoking callbacks on
// whatever goroutine produced them.
package dispatch

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on
// the host loop. This should be called once by the host during initialization.
// Pass nil to clear it.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the host loop.
// Returns true if the callback was successfully scheduled, false if no
// dispatch function is registered or the callback is nil. Callers that need
// the work done either way should run the callback inline on false.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
