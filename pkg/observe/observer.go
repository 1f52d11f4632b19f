// Package observe provides the change-notification mechanism that keeps host
// widgets in sync with an observable item collection.
//
// Notifications carry no payload: any mutation collapses to "the collection
// changed", and subscribers re-pull whatever they need. Delivery is
// at-least-once; rapid mutations may be coalesced downstream.
package observe

import "github.com/go-drift/listbind/pkg/errors"

type listenerEntry struct {
	fn func()
}

// ListObserver broadcasts "collection changed" notifications to registered
// listeners.
//
// Listeners may be added or removed from inside a listener callback. Removal
// during dispatch takes effect immediately; co-registered listeners are
// neither skipped nor notified twice. A panicking listener is reported through
// the errors handler and does not prevent delivery to the remaining listeners.
type ListObserver struct {
	listeners []*listenerEntry
}

// AddListener registers a callback for change notifications and returns a
// function that removes it. Removing twice is harmless. A nil listener is
// ignored and the returned remove function is a no-op.
func (o *ListObserver) AddListener(listener func()) (remove func()) {
	if listener == nil {
		return func() {}
	}
	entry := &listenerEntry{fn: listener}
	o.listeners = append(o.listeners, entry)
	return func() {
		entry.fn = nil
		for i, e := range o.listeners {
			if e == entry {
				o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
				break
			}
		}
	}
}

// NotifyChanged delivers a generic change notification to every listener
// registered at the time of the call, in registration order.
func (o *ListObserver) NotifyChanged() {
	// Snapshot so listener mutation during dispatch cannot skip or duplicate
	// a co-registered listener; removed entries are skipped via the nil fn.
	snapshot := make([]*listenerEntry, len(o.listeners))
	copy(snapshot, o.listeners)
	for _, entry := range snapshot {
		fn := entry.fn
		if fn == nil {
			continue
		}
		o.invoke(fn)
	}
}

func (o *ListObserver) invoke(fn func()) {
	defer errors.Recover("observe.NotifyChanged")
	fn()
}

// ListenerCount reports how many listeners are registered.
func (o *ListObserver) ListenerCount() int {
	return len(o.listeners)
}
