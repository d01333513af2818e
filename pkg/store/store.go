// Package store implements an event-driven state container: a current state
// value, an intake of discrete events, and an externally supplied mapper
// that reduces each event to zero or more successive states.
//
// A store is decoupled from rendering. Components (or anything else) observe
// it through Listen; the component lifecycle controller in pkg/component
// binds to it through the Container interface.
package store

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glintui/glint/pkg/errors"
	"github.com/glintui/glint/pkg/telemetry"
)

// ErrClosed is returned by Add once the store has left the Open phase.
var ErrClosed = fmt.Errorf("store: event added after close")

// Phase describes the lifecycle of a store.
type Phase int32

const (
	// Open accepts events and emits states.
	Open Phase = iota
	// Closing drains queued and in-flight reductions; Add is rejected.
	Closing
	// Closed is terminal: no reductions run and subscriptions are released.
	Closed
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "open"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	default:
		return "invalid"
	}
}

// Mapper reduces one event to zero or more successive states. It receives
// the state current at the start of the reduction and publishes each new
// state through emit, in order. emit is only valid for the duration of the
// call. A returned error (or a panic) aborts the remaining yields for this
// event only; states already emitted stand and the store stays open.
type Mapper[S any] func(ctx context.Context, event any, current S, emit func(S)) error

// listener pairs a subscription handle with its callback.
type listener[S any] struct {
	sub *Subscription
	fn  func(S)
}

// Store holds exactly one current state value and reduces events to new
// states one at a time, in the order added, on a dedicated loop goroutine.
// Listeners observe every emitted state in subscription order before the
// next yield is processed.
type Store[S any] struct {
	name    string
	mapper  Mapper[S]
	onError func(event any, err error)
	tracer  trace.Tracer

	mu        sync.Mutex
	cond      *sync.Cond
	state     S
	phase     Phase
	queue     []any
	reducing  bool
	listeners []*listener[S]
	done      chan struct{}
}

// Option configures a Store at construction.
type Option[S any] func(*Store[S])

// WithName names the store for telemetry and error reports.
func WithName[S any](name string) Option[S] {
	return func(s *Store[S]) { s.name = name }
}

// WithOnError registers a callback invoked with every reduction failure, in
// addition to the global error handler. The callback runs on the store's
// loop goroutine.
func WithOnError[S any](fn func(event any, err error)) Option[S] {
	return func(s *Store[S]) { s.onError = fn }
}

// WithTracerProvider traces each reduction through the given provider.
func WithTracerProvider[S any](provider trace.TracerProvider) Option[S] {
	return func(s *Store[S]) {
		if provider != nil {
			s.tracer = provider.Tracer("glint/store")
		}
	}
}

// New creates an Open store with the given initial state and mapper and
// starts its reduction loop.
func New[S any](initial S, mapper Mapper[S], opts ...Option[S]) *Store[S] {
	s := &Store[S]{
		state:  initial,
		mapper: mapper,
		phase:  Open,
		done:   make(chan struct{}),
	}
	s.cond = sync.NewCond(&s.mu)
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = telemetry.NewProvider().Tracer("glint/store")
	}
	go s.loop()
	return s
}

// Add enqueues an event for reduction and returns without blocking.
// It returns ErrClosed once the store is no longer Open; that is the only
// failure mode. Reduction failures are delivered asynchronously (see
// WithOnError and the global error handler), never through Add's result.
func (s *Store[S]) Add(event any) error {
	s.mu.Lock()
	if s.phase != Open {
		s.mu.Unlock()
		return ErrClosed
	}
	s.queue = append(s.queue, event)
	s.mu.Unlock()
	s.cond.Broadcast()
	return nil
}

// Listen registers a callback invoked with every state emitted after this
// call; past states are not replayed. Listening after Close has been called
// is permitted but the callback will never run, even while queued events are
// still draining.
func (s *Store[S]) Listen(fn func(S)) *Subscription {
	sub := &Subscription{id: newSubscriptionID()}
	if fn == nil {
		return sub
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Open {
		return sub
	}
	s.listeners = append(s.listeners, &listener[S]{sub: sub, fn: fn})
	sub.cancel = func() { s.removeListener(sub) }
	return sub
}

// ListenAny is Listen with the state delivered as any. It lets non-generic
// consumers (like the component controller) bind to stores of any state type.
func (s *Store[S]) ListenAny(fn func(any)) *Subscription {
	if fn == nil {
		return s.Listen(nil)
	}
	return s.Listen(func(state S) { fn(state) })
}

// CurrentState returns the latest emitted (or initial) state.
func (s *Store[S]) CurrentState() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentAny is CurrentState as any; see ListenAny.
func (s *Store[S]) CurrentAny() any {
	return s.CurrentState()
}

// Phase returns the store's lifecycle phase.
func (s *Store[S]) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Close stops intake, drains queued and in-flight reductions, then
// transitions to Closed and releases all subscriptions. Idempotent.
func (s *Store[S]) Close() {
	s.mu.Lock()
	if s.phase != Open {
		s.mu.Unlock()
		return
	}
	s.phase = Closing
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Done is closed once the store reaches the Closed phase.
func (s *Store[S]) Done() <-chan struct{} {
	return s.done
}

// Settle blocks until the event queue is empty and no reduction is in
// flight, or until ctx is done. It is the synchronization point for callers
// that need to observe the effects of previously added events.
func (s *Store[S]) Settle(ctx context.Context) error {
	// cancelled is guarded by s.mu so the waiter cannot miss the wakeup.
	cancelled := false
	done := make(chan struct{})
	go func() {
		s.mu.Lock()
		for (len(s.queue) > 0 || s.reducing) && !cancelled {
			s.cond.Wait()
		}
		s.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.mu.Lock()
		cancelled = true
		s.mu.Unlock()
		s.cond.Broadcast()
		// The waiter exits before Settle returns; a timed-out Settle never
		// leaves a goroutine parked on the store.
		<-done
		return ctx.Err()
	}
}

// loop is the store's single reduction goroutine. Running reductions on one
// goroutine is what guarantees the one-at-a-time serialization of events and
// the ordering of emissions.
func (s *Store[S]) loop() {
	for {
		s.mu.Lock()
		for len(s.queue) == 0 && s.phase == Open {
			s.cond.Wait()
		}
		if len(s.queue) == 0 {
			// Closing with the queue drained: terminal transition.
			s.phase = Closed
			s.listeners = nil
			s.mu.Unlock()
			s.cond.Broadcast()
			close(s.done)
			return
		}
		event := s.queue[0]
		s.queue = s.queue[1:]
		s.reducing = true
		current := s.state
		s.mu.Unlock()

		s.reduce(event, current)

		s.mu.Lock()
		s.reducing = false
		s.mu.Unlock()
		s.cond.Broadcast()
	}
}

// reduce runs the mapper for one event, publishing every emitted state to
// all listeners (in subscription order) before the mapper can yield again.
func (s *Store[S]) reduce(event any, current S) {
	ctx, span := s.tracer.Start(context.Background(), "store.reduce",
		trace.WithAttributes(
			attribute.String("store.name", s.name),
			attribute.String("store.event_type", fmt.Sprintf("%T", event)),
		))
	defer span.End()

	emit := func(next S) {
		s.mu.Lock()
		s.state = next
		active := make([]*listener[S], len(s.listeners))
		copy(active, s.listeners)
		s.mu.Unlock()
		for _, l := range active {
			l.fn(next)
		}
	}

	if err := s.runMapper(ctx, event, current, emit); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.reportFailure(event, err)
		return
	}
	span.SetStatus(codes.Ok, "")
}

// runMapper invokes the mapper with panic recovery so a failing event never
// takes down the loop.
func (s *Store[S]) runMapper(ctx context.Context, event any, current S, emit func(S)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.ReduceError{
				Store:      s.name,
				Event:      event,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			}
		}
	}()
	return s.mapper(ctx, event, current, emit)
}

// reportFailure surfaces a reduction failure without poisoning the store.
func (s *Store[S]) reportFailure(event any, err error) {
	reduceErr, ok := err.(*errors.ReduceError)
	if !ok {
		reduceErr = &errors.ReduceError{
			Store: s.name,
			Event: event,
			Err:   err,
		}
	}
	errors.ReportReduceError(reduceErr)
	if s.onError != nil {
		s.onError(event, reduceErr)
	}
}
