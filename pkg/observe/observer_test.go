package observe

import (
	"testing"

	"github.com/go-drift/listbind/pkg/errors"
)

type silentHandler struct{}

func (silentHandler) HandleError(*errors.BindError) {}

func TestAddListenerAndNotify(t *testing.T) {
	var o ListObserver
	calls := 0
	o.AddListener(func() { calls++ })

	o.NotifyChanged()
	o.NotifyChanged()

	if calls != 2 {
		t.Errorf("listener ran %d times, want 2", calls)
	}
}

func TestRemoveStopsNotifications(t *testing.T) {
	var o ListObserver
	calls := 0
	remove := o.AddListener(func() { calls++ })

	o.NotifyChanged()
	remove()
	o.NotifyChanged()

	if calls != 1 {
		t.Errorf("listener ran %d times after removal, want 1", calls)
	}
	if o.ListenerCount() != 0 {
		t.Errorf("listener count = %d, want 0", o.ListenerCount())
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	var o ListObserver
	remove := o.AddListener(func() {})
	o.AddListener(func() {})

	remove()
	remove()

	if o.ListenerCount() != 1 {
		t.Errorf("listener count = %d, want 1", o.ListenerCount())
	}
}

func TestNilListenerIgnored(t *testing.T) {
	var o ListObserver
	remove := o.AddListener(nil)
	remove()

	if o.ListenerCount() != 0 {
		t.Errorf("listener count = %d, want 0", o.ListenerCount())
	}
	o.NotifyChanged()
}

func TestNotificationOrderIsRegistrationOrder(t *testing.T) {
	var o ListObserver
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		o.AddListener(func() { order = append(order, i) })
	}
	o.NotifyChanged()
	for i, got := range order {
		if got != i {
			t.Fatalf("order = %v, want ascending registration order", order)
		}
	}
}

func TestRemoveDuringDispatchDoesNotSkipOthers(t *testing.T) {
	var o ListObserver
	var removeSecond func()
	firstCalls, secondCalls, thirdCalls := 0, 0, 0

	o.AddListener(func() {
		firstCalls++
		removeSecond()
	})
	removeSecond = o.AddListener(func() { secondCalls++ })
	o.AddListener(func() { thirdCalls++ })

	o.NotifyChanged()

	if firstCalls != 1 {
		t.Errorf("first listener ran %d times, want 1", firstCalls)
	}
	if secondCalls != 0 {
		t.Errorf("listener removed mid-dispatch ran %d times, want 0", secondCalls)
	}
	if thirdCalls != 1 {
		t.Errorf("co-registered listener ran %d times, want 1 (neither skipped nor duplicated)", thirdCalls)
	}
}

func TestRemoveSelfDuringDispatch(t *testing.T) {
	var o ListObserver
	var removeSelf func()
	calls := 0
	removeSelf = o.AddListener(func() {
		calls++
		removeSelf()
	})
	after := 0
	o.AddListener(func() { after++ })

	o.NotifyChanged()
	o.NotifyChanged()

	if calls != 1 {
		t.Errorf("self-removing listener ran %d times, want 1", calls)
	}
	if after != 2 {
		t.Errorf("remaining listener ran %d times, want 2", after)
	}
}

func TestAddDuringDispatchRunsNextNotify(t *testing.T) {
	var o ListObserver
	lateCalls := 0
	o.AddListener(func() {
		if o.ListenerCount() == 1 {
			o.AddListener(func() { lateCalls++ })
		}
	})

	o.NotifyChanged()
	if lateCalls != 0 {
		t.Errorf("listener added mid-dispatch ran %d times in the same dispatch, want 0", lateCalls)
	}
	o.NotifyChanged()
	if lateCalls != 1 {
		t.Errorf("listener added mid-dispatch ran %d times on the next dispatch, want 1", lateCalls)
	}
}

func TestPanickingListenerDoesNotBlockOthers(t *testing.T) {
	errors.SetHandler(silentHandler{})
	defer errors.SetHandler(nil)

	var o ListObserver
	o.AddListener(func() { panic("bad listener") })
	calls := 0
	o.AddListener(func() { calls++ })

	o.NotifyChanged()

	if calls != 1 {
		t.Errorf("listener after a panicking one ran %d times, want 1", calls)
	}
}
