package store

import (
	"sync"

	"github.com/google/uuid"
)

// Subscription is the handle returned by Listen. It is owned by the
// subscriber, not the store.
type Subscription struct {
	id     string
	once   sync.Once
	cancel func()
}

// ID uniquely identifies the subscription.
func (s *Subscription) ID() string {
	return s.id
}

// Unsubscribe stops future callback delivery. It is idempotent and safe to
// call after the store has closed. It does not cancel an in-flight emission
// already being delivered.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

func newSubscriptionID() string {
	return uuid.NewString()
}

// removeListener drops the listener registered under sub, if still present.
func (s *Store[S]) removeListener(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listeners {
		if l.sub == sub {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}
