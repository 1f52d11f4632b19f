// Package uithread marshals callbacks onto the single UI-owned thread.
//
// The host platform owns the UI thread; this package only records the
// platform's dispatch function and forwards callbacks to it. Submission order
// is preserved relative to other submissions made through this package, which
// the converters rely on when coalescing refresh notifications.
package uithread

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// Register sets the dispatch function used to schedule callbacks on the UI
// thread. This should be called once by the host integration during startup.
func Register(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was scheduled, false if no dispatch function
// is registered or the callback is nil. The callback is never run inline.
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
