package converter_test

import (
	"testing"

	"github.com/go-drift/listbind/pkg/adapter"
	"github.com/go-drift/listbind/pkg/converter"
	"github.com/go-drift/listbind/pkg/errors"
	"github.com/go-drift/listbind/pkg/host"
	"github.com/go-drift/listbind/pkg/uithread"
)

type rowView struct {
	label string
}

type rowHolder struct {
	view *rowView
	text string
}

func (h *rowHolder) ItemView() host.View { return h.view }

func textBinding() adapter.Binding[string, *rowHolder] {
	return adapter.Binding[string, *rowHolder]{
		CreateHolder: func(parent host.Container, viewType int) *rowHolder {
			return &rowHolder{view: &rowView{}}
		},
		BindHolder: func(h *rowHolder, item string, position int) {
			h.text = item
			h.view.label = item
		},
	}
}

type silentHandler struct{}

func (silentHandler) HandleError(*errors.BindError) {}

type captureHandler struct {
	errs []*errors.BindError
}

func (h *captureHandler) HandleError(err *errors.BindError) {
	h.errs = append(h.errs, err)
}

// fakeListWidget is a minimal legacy recycling list widget.
type fakeListWidget struct {
	source       host.LegacyDataSource
	onItemClick  host.ItemClickFunc
	refreshCalls int
}

func (w *fakeListWidget) SetDataSource(source host.LegacyDataSource) { w.source = source }
func (w *fakeListWidget) SetOnItemClick(fn host.ItemClickFunc)       { w.onItemClick = fn }
func (w *fakeListWidget) RefreshVisibleRows()                        { w.refreshCalls++ }

func newLegacyFixture(items ...string) (*adapter.ListAdapter[string, *rowHolder], *converter.LegacyConverter[string, *rowHolder], *fakeListWidget) {
	a := adapter.New(textBinding(), items...)
	c := converter.NewLegacyConverter(a)
	w := &fakeListWidget{}
	c.Register(w)
	return a, c, w
}

func TestLegacyRegisterWiresWidget(t *testing.T) {
	_, c, w := newLegacyFixture("a")

	if w.source == nil {
		t.Fatal("Register should install the converter as the widget's data source")
	}
	if w.onItemClick == nil {
		t.Fatal("Register should install the click handler")
	}
	if got := w.source.Count(); got != 1 {
		t.Errorf("data source Count() = %d, want 1", got)
	}
	if c.Adapter() == nil {
		t.Error("Adapter() should return the bound adapter")
	}
}

func TestLegacyMutationQueuesOneRefresh(t *testing.T) {
	var q uithread.Queue
	uithread.Register(q.Dispatch)
	defer uithread.Register(nil)

	a, _, w := newLegacyFixture("a")

	a.Append("b")
	if w.refreshCalls != 0 {
		t.Fatal("refresh must not run inline with the mutation")
	}
	q.Drain()
	if w.refreshCalls != 1 {
		t.Errorf("refresh ran %d times, want 1", w.refreshCalls)
	}
}

func TestLegacyNotifyDataSetChangedForcesRefresh(t *testing.T) {
	var q uithread.Queue
	uithread.Register(q.Dispatch)
	defer uithread.Register(nil)

	_, c, w := newLegacyFixture("a")

	c.NotifyDataSetChanged()
	q.Drain()

	if w.refreshCalls != 1 {
		t.Errorf("refresh ran %d times, want 1", w.refreshCalls)
	}
}

func TestLegacyNoDispatcherReportsDrop(t *testing.T) {
	uithread.Register(nil)
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	a, _, w := newLegacyFixture("a")
	a.Append("b")

	if w.refreshCalls != 0 {
		t.Error("refresh must not run without a dispatcher")
	}
	if len(capture.errs) != 1 || capture.errs[0].Kind != errors.KindDispatch {
		t.Errorf("expected one KindDispatch report, got %v", capture.errs)
	}
}

func TestLegacyDataSourceDelegation(t *testing.T) {
	binding := textBinding()
	binding.ViewTypeCount = 3
	binding.ViewType = func(item string, position int) int { return position % 3 }
	binding.ItemID = func(item string, position int) int64 { return int64(len(item)) }
	a := adapter.New(binding, "a", "bb", "ccc")
	c := converter.NewLegacyConverter(a)

	if got := c.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := c.ViewTypeCount(); got != 3 {
		t.Errorf("ViewTypeCount() = %d, want 3", got)
	}
	if got := c.ItemViewType(2); got != 2 {
		t.Errorf("ItemViewType(2) = %d, want 2", got)
	}
	if got := c.ItemID(1); got != 2 {
		t.Errorf("ItemID(1) = %d, want 2", got)
	}
}

func TestLegacyViewCreatesAndBinds(t *testing.T) {
	_, c, _ := newLegacyFixture("a", "b")

	view := c.View(1, nil, nil)
	row, ok := view.(*rowView)
	if !ok {
		t.Fatalf("View returned %T, want *rowView", view)
	}
	if row.label != "b" {
		t.Errorf("bound label = %q, want %q", row.label, "b")
	}
}

func TestLegacyViewReusesRecycledHolder(t *testing.T) {
	_, c, _ := newLegacyFixture("a", "b")

	first := c.View(0, nil, nil)
	second := c.View(1, first, nil)

	if first != second {
		t.Error("a recycled convertView should be rebound, not replaced")
	}
	if label := first.(*rowView).label; label != "b" {
		t.Errorf("recycled view label = %q, want %q", label, "b")
	}
}

func TestLegacyDropDownViewSharesBindPath(t *testing.T) {
	_, c, _ := newLegacyFixture("a")

	view := c.DropDownView(0, nil, nil)
	if label := view.(*rowView).label; label != "a" {
		t.Errorf("drop-down label = %q, want %q", label, "a")
	}
}

func TestLegacyClickDispatch(t *testing.T) {
	a, c, w := newLegacyFixture("a", "b")

	var gotItem string
	var gotHolder *rowHolder
	gotPosition := -1
	c.SetItemClickedListener(func(listAdapter *adapter.ListAdapter[string, *rowHolder], item string, holder *rowHolder, position int) {
		if listAdapter != a {
			t.Error("listener should receive the bound adapter")
		}
		gotItem, gotHolder, gotPosition = item, holder, position
	})

	view := c.View(1, nil, nil)
	w.onItemClick(1, view)

	if gotItem != "b" || gotPosition != 1 {
		t.Errorf("click = (%q, %d), want (%q, 1)", gotItem, gotPosition, "b")
	}
	if gotHolder == nil || gotHolder.text != "b" {
		t.Errorf("click holder = %#v, want the holder bound to %q", gotHolder, "b")
	}
}

func TestLegacyClickWithoutListenerIsNoOp(t *testing.T) {
	_, c, w := newLegacyFixture("a")

	view := c.View(0, nil, nil)
	w.onItemClick(0, view)
}

func TestLegacyClickUnknownViewDropped(t *testing.T) {
	errors.SetHandler(silentHandler{})
	defer errors.SetHandler(nil)

	_, c, w := newLegacyFixture("a")
	clicks := 0
	c.SetItemClickedListener(func(*adapter.ListAdapter[string, *rowHolder], string, *rowHolder, int) {
		clicks++
	})

	w.onItemClick(0, &rowView{}) // a view this converter never bound

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for an unknown view", clicks)
	}
}

func TestLegacyReRegisterOverwrites(t *testing.T) {
	var q uithread.Queue
	uithread.Register(q.Dispatch)
	defer uithread.Register(nil)

	a, c, w1 := newLegacyFixture("a")
	w2 := &fakeListWidget{}
	c.Register(w2)

	a.Append("b")
	q.Drain()

	if w1.refreshCalls != 0 {
		t.Errorf("previous widget refreshed %d times after re-register, want 0", w1.refreshCalls)
	}
	if w2.refreshCalls != 1 {
		t.Errorf("new widget refreshed %d times, want 1", w2.refreshCalls)
	}
}
