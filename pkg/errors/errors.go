// Package errors provides structured error handling for the Glint runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindReduce indicates a failure inside a store's event-to-state mapper.
	KindReduce
	// KindRender indicates a rendering error.
	KindRender
	// KindNavigation indicates a navigation error.
	KindNavigation
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindReduce:
		return "reduce"
	case KindRender:
		return "render"
	case KindNavigation:
		return "navigation"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// GlintError represents a structured error in the Glint runtime.
type GlintError struct {
	// Op is the operation that failed (e.g., "component.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GlintError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GlintError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "component.Render").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ReduceError represents a failure while reducing an event to new states.
// The store that produced it stays open; the failed event is dropped.
type ReduceError struct {
	// Store names the store instance, when one was configured.
	Store string
	// Event is the event whose reduction failed.
	Event any
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ReduceError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic reducing %T: %v", e.Event, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error reducing %T: %v", e.Event, e.Err)
	}
	return fmt.Sprintf("unknown error reducing %T", e.Event)
}

func (e *ReduceError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Glint runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GlintError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleReduceError is called when an event reduction fails.
	HandleReduceError(err *ReduceError)
}
