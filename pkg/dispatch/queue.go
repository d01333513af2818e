package dispatch

import "sync"

// Queue is a FIFO of pending callbacks for hosts that pump their loop
// manually. Register its Enqueue method with RegisterDispatch and call Flush
// once per turn:
//
//	q := dispatch.NewQueue()
//	dispatch.RegisterDispatch(q.Enqueue)
//	for running {
//	    q.Flush()
//	}
type Queue struct {
	mu        sync.Mutex
	callbacks []func()
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends a callback to the queue. Safe to call from any goroutine.
func (q *Queue) Enqueue(callback func()) {
	if callback == nil {
		return
	}
	q.mu.Lock()
	q.callbacks = append(q.callbacks, callback)
	q.mu.Unlock()
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.callbacks)
}

// Flush runs all pending callbacks in order, including ones enqueued while
// flushing, and returns the number of callbacks run.
func (q *Queue) Flush() int {
	ran := 0
	for {
		q.mu.Lock()
		if len(q.callbacks) == 0 {
			q.mu.Unlock()
			return ran
		}
		pending := q.callbacks
		q.callbacks = nil
		q.mu.Unlock()

		for _, callback := range pending {
			callback()
			ran++
		}
	}
}
