// Package events provides the one-way upward notification channel components
// use to signal ancestors: a bubbling custom event carrying an opaque detail
// payload.
package events

import "sync"

// Notification is an upward-bubbling message from a component.
type Notification struct {
	// Name identifies the notification (e.g., "item-selected").
	Name string
	// Detail is the payload (e.g., an item descriptor).
	Detail any
}

// Notifier delivers notifications to local listeners and then bubbles them
// to its parent, crossing component boundaries the way a composed DOM event
// would. Delivery is one-way: parents never notify children through it.
type Notifier struct {
	mu        sync.Mutex
	parent    *Notifier
	nextID    int
	listeners map[string]map[int]func(Notification)
}

// NewNotifier creates a Notifier with no parent.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[string]map[int]func(Notification))}
}

// SetParent links this notifier into a bubbling chain. Pass nil to detach.
func (n *Notifier) SetParent(parent *Notifier) {
	n.mu.Lock()
	n.parent = parent
	n.mu.Unlock()
}

// On registers a listener for notifications with the given name and returns
// a cancel function. Cancel is idempotent.
func (n *Notifier) On(name string, fn func(Notification)) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	byID, ok := n.listeners[name]
	if !ok {
		byID = make(map[int]func(Notification))
		n.listeners[name] = byID
	}
	id := n.nextID
	n.nextID++
	byID[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners[name], id)
			n.mu.Unlock()
		})
	}
}

// Emit delivers the notification to local listeners for its name, then
// bubbles it to the parent notifier, repeating until the chain ends.
func (n *Notifier) Emit(name string, detail any) {
	notification := Notification{Name: name, Detail: detail}
	current := n
	for current != nil {
		current.mu.Lock()
		byID := current.listeners[name]
		active := make([]func(Notification), 0, len(byID))
		for _, fn := range byID {
			active = append(active, fn)
		}
		parent := current.parent
		current.mu.Unlock()

		for _, fn := range active {
			fn(notification)
		}
		current = parent
	}
}
