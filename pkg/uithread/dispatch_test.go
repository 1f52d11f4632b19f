package uithread

import (
	"fmt"
	"testing"
)

func TestDispatchWithoutRegistration(t *testing.T) {
	Register(nil)
	if Dispatch(func() {}) {
		t.Error("Dispatch should report false with no dispatcher registered")
	}
}

func TestDispatchNilCallback(t *testing.T) {
	var q Queue
	Register(q.Dispatch)
	defer Register(nil)

	if Dispatch(nil) {
		t.Error("Dispatch should report false for a nil callback")
	}
	if q.Len() != 0 {
		t.Errorf("queue length = %d, want 0", q.Len())
	}
}

func TestDispatchForwardsToRegisteredFunc(t *testing.T) {
	var q Queue
	Register(q.Dispatch)
	defer Register(nil)

	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch should report true with a dispatcher registered")
	}
	if ran {
		t.Error("callback must not run inline")
	}
	q.Drain()
	if !ran {
		t.Error("callback should run when the queue drains")
	}
}

func TestQueuePreservesSubmissionOrder(t *testing.T) {
	var q Queue
	var order []string
	for i := 0; i < 5; i++ {
		i := i
		q.Dispatch(func() { order = append(order, fmt.Sprintf("cb%d", i)) })
	}
	if got := q.Drain(); got != 5 {
		t.Fatalf("Drain ran %d callbacks, want 5", got)
	}
	for i, name := range order {
		if want := fmt.Sprintf("cb%d", i); name != want {
			t.Errorf("order[%d] = %q, want %q", i, name, want)
		}
	}
}

func TestQueueDrainDefersNestedDispatch(t *testing.T) {
	var q Queue
	nestedRan := false
	q.Dispatch(func() {
		q.Dispatch(func() { nestedRan = true })
	})

	if got := q.Drain(); got != 1 {
		t.Fatalf("first Drain ran %d callbacks, want 1", got)
	}
	if nestedRan {
		t.Error("callback enqueued during Drain must wait for the next Drain")
	}
	q.Drain()
	if !nestedRan {
		t.Error("nested callback should run on the second Drain")
	}
}
