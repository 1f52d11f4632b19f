package uithread

import "sync"

// Queue is an in-process dispatcher that collects callbacks for explicit
// draining. Hosts without a platform event loop (tests, the demo binary)
// register Queue.Dispatch and call Drain at frame boundaries, which stands in
// for the UI thread emptying its message queue.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// Dispatch appends a callback to the queue in submission order.
func (q *Queue) Dispatch(callback func()) {
	if callback == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, callback)
	q.mu.Unlock()
}

// Drain runs the callbacks queued so far, in submission order, and returns
// how many ran. Callbacks enqueued while draining run on the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, callback := range batch {
		callback()
	}
	return len(batch)
}

// Len reports how many callbacks are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
