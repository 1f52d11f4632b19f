package adapter

import (
	"fmt"

	"github.com/go-drift/listbind/pkg/errors"
	"github.com/go-drift/listbind/pkg/host"
	"github.com/go-drift/listbind/pkg/observe"
)

// ItemClickedListener receives an item-range click resolved to the item, its
// holder, and its item position.
type ItemClickedListener[Item any, H host.ViewHolder] func(item Item, holder H, position int)

// FixedRowClickedListener receives a header or footer click with the row's
// index within its group.
type FixedRowClickedListener func(index int, holder host.ViewHolder)

// ListAdapter owns an ordered item collection and the Binding that turns
// items into bound view holders. Mutations emit a generic change notification
// through the adapter's ListObserver.
//
// Between one change notification and the next, Count and ItemAt are stable
// when queried from the UI thread; the adapter itself performs no locking.
type ListAdapter[Item any, H host.ViewHolder] struct {
	binding  Binding[Item, H]
	items    []Item
	observer observe.ListObserver

	headers []FixedRow
	footers []FixedRow

	bound bool

	itemClicked       ItemClickedListener[Item, H]
	itemLongClicked   ItemClickedListener[Item, H]
	headerClicked     FixedRowClickedListener
	headerLongClicked FixedRowClickedListener
	footerClicked     FixedRowClickedListener
	footerLongClicked FixedRowClickedListener
}

// New creates a ListAdapter from the given binding and initial items.
// Binding.CreateHolder and Binding.BindHolder are required.
func New[Item any, H host.ViewHolder](binding Binding[Item, H], items ...Item) *ListAdapter[Item, H] {
	if binding.CreateHolder == nil {
		panic("adapter: Binding.CreateHolder is required")
	}
	if binding.BindHolder == nil {
		panic("adapter: Binding.BindHolder is required")
	}
	return &ListAdapter[Item, H]{
		binding: binding,
		items:   append([]Item(nil), items...),
	}
}

// Observer returns the adapter's change-notification source.
func (a *ListAdapter[Item, H]) Observer() *observe.ListObserver {
	return &a.observer
}

// Count returns the current number of items, excluding fixed rows.
func (a *ListAdapter[Item, H]) Count() int {
	return len(a.items)
}

// ItemAt returns the item at position, or an IndexError if position lies
// outside [0, Count).
func (a *ListAdapter[Item, H]) ItemAt(position int) (Item, error) {
	if position < 0 || position >= len(a.items) {
		var zero Item
		return zero, errors.NewIndexError("adapter.ItemAt", position, len(a.items))
	}
	return a.items[position], nil
}

// IDAt returns the item's stable identity if the binding supplies one, else
// the position itself.
func (a *ListAdapter[Item, H]) IDAt(position int) int64 {
	if a.binding.ItemID == nil || position < 0 || position >= len(a.items) {
		return int64(position)
	}
	return a.binding.ItemID(a.items[position], position)
}

// HasStableIDs reports whether IDAt values persist across dataset changes.
func (a *ListAdapter[Item, H]) HasStableIDs() bool {
	return a.binding.ItemID != nil
}

// ViewTypeAt classifies the item at position. Out-of-range positions map to
// the default type 0.
func (a *ListAdapter[Item, H]) ViewTypeAt(position int) int {
	if a.binding.ViewType == nil || position < 0 || position >= len(a.items) {
		return 0
	}
	return a.binding.ViewType(a.items[position], position)
}

// ViewTypeCount returns how many distinct view types the binding declares.
func (a *ListAdapter[Item, H]) ViewTypeCount() int {
	return a.binding.viewTypeCount()
}

// IsEnabledAt reports whether the item at position accepts clicks.
func (a *ListAdapter[Item, H]) IsEnabledAt(position int) bool {
	if a.binding.Enabled == nil {
		return true
	}
	if position < 0 || position >= len(a.items) {
		return false
	}
	return a.binding.Enabled(a.items[position], position)
}

// CreateViewHolder builds a fresh holder for the given item view type.
func (a *ListAdapter[Item, H]) CreateViewHolder(parent host.Container, viewType int) H {
	return a.binding.CreateHolder(parent, viewType)
}

// BindViewHolder binds the item at position into holder. Returns an
// IndexError for positions outside [0, Count).
func (a *ListAdapter[Item, H]) BindViewHolder(holder H, position int) error {
	item, err := a.ItemAt(position)
	if err != nil {
		return err
	}
	a.binding.BindHolder(holder, item, position)
	return nil
}

// Append adds items to the end of the collection and emits a change.
func (a *ListAdapter[Item, H]) Append(items ...Item) {
	if len(items) == 0 {
		return
	}
	a.items = append(a.items, items...)
	a.observer.NotifyChanged()
}

// Insert adds an item at position, shifting later items. Position may equal
// Count to append. Emits a change on success.
func (a *ListAdapter[Item, H]) Insert(position int, item Item) error {
	if position < 0 || position > len(a.items) {
		return errors.NewIndexError("adapter.Insert", position, len(a.items)+1)
	}
	a.items = append(a.items, item)
	copy(a.items[position+1:], a.items[position:])
	a.items[position] = item
	a.observer.NotifyChanged()
	return nil
}

// Set replaces the item at position and emits a change on success.
func (a *ListAdapter[Item, H]) Set(position int, item Item) error {
	if position < 0 || position >= len(a.items) {
		return errors.NewIndexError("adapter.Set", position, len(a.items))
	}
	a.items[position] = item
	a.observer.NotifyChanged()
	return nil
}

// Remove deletes and returns the item at position, emitting a change on
// success.
func (a *ListAdapter[Item, H]) Remove(position int) (Item, error) {
	if position < 0 || position >= len(a.items) {
		var zero Item
		return zero, errors.NewIndexError("adapter.Remove", position, len(a.items))
	}
	removed := a.items[position]
	a.items = append(a.items[:position], a.items[position+1:]...)
	a.observer.NotifyChanged()
	return removed, nil
}

// Clear removes all items and emits a change.
func (a *ListAdapter[Item, H]) Clear() {
	a.items = a.items[:0]
	a.observer.NotifyChanged()
}

// NotifyDataSetChanged emits a generic change without a mutation, forcing
// subscribed converters to refresh their widgets.
func (a *ListAdapter[Item, H]) NotifyDataSetChanged() {
	a.observer.NotifyChanged()
}

// SetItemClickedListener registers the listener for item clicks routed
// through OnItemClicked. Pass nil to clear.
func (a *ListAdapter[Item, H]) SetItemClickedListener(listener ItemClickedListener[Item, H]) {
	a.itemClicked = listener
}

// SetItemLongClickedListener registers the listener for item long presses.
func (a *ListAdapter[Item, H]) SetItemLongClickedListener(listener ItemClickedListener[Item, H]) {
	a.itemLongClicked = listener
}

// SetHeaderClickedListener registers the listener for header clicks.
func (a *ListAdapter[Item, H]) SetHeaderClickedListener(listener FixedRowClickedListener) {
	a.headerClicked = listener
}

// SetHeaderLongClickedListener registers the listener for header long presses.
func (a *ListAdapter[Item, H]) SetHeaderLongClickedListener(listener FixedRowClickedListener) {
	a.headerLongClicked = listener
}

// SetFooterClickedListener registers the listener for footer clicks.
func (a *ListAdapter[Item, H]) SetFooterClickedListener(listener FixedRowClickedListener) {
	a.footerClicked = listener
}

// SetFooterLongClickedListener registers the listener for footer long presses.
func (a *ListAdapter[Item, H]) SetFooterLongClickedListener(listener FixedRowClickedListener) {
	a.footerLongClicked = listener
}

// OnItemClicked is the adapter's click-accounting hook, invoked by a
// converter with an internal position after its enabled check. It routes the
// click to the header, footer, or item listener for that position.
func (a *ListAdapter[Item, H]) OnItemClicked(position int, holder host.ViewHolder) {
	a.routeClick(position, holder, a.itemClicked, a.headerClicked, a.footerClicked)
}

// OnItemLongClicked is the long-press counterpart of OnItemClicked.
func (a *ListAdapter[Item, H]) OnItemLongClicked(position int, holder host.ViewHolder) {
	a.routeClick(position, holder, a.itemLongClicked, a.headerLongClicked, a.footerLongClicked)
}

func (a *ListAdapter[Item, H]) routeClick(position int, holder host.ViewHolder,
	item ItemClickedListener[Item, H], header, footer FixedRowClickedListener) {
	switch role, index := a.roleAt(position); role {
	case rowHeader:
		if header != nil {
			header(index, holder)
		}
	case rowFooter:
		if footer != nil {
			footer(index, holder)
		}
	case rowItem:
		if item == nil {
			return
		}
		value, err := a.ItemAt(index)
		if err != nil {
			errors.Report(&errors.BindError{Op: "adapter.routeClick", Kind: errors.KindIndex, Err: err})
			return
		}
		typed, ok := holder.(H)
		if !ok {
			// Stale or recycled holder the widget has not reconciled yet;
			// dropping is the contract, the report is for observability.
			errors.Report(&errors.BindError{
				Op:   "adapter.routeClick",
				Kind: errors.KindTypeMismatch,
				Err:  fmt.Errorf("holder %T does not match the adapter's holder type", holder),
			})
			return
		}
		item(value, typed, index)
	}
}

// Acquire marks the adapter as backing a converter. It returns false if the
// adapter is already bound; an adapter backs at most one virtualized
// converter at a time.
func (a *ListAdapter[Item, H]) Acquire() bool {
	if a.bound {
		return false
	}
	a.bound = true
	return true
}

// Release clears the bound mark set by Acquire.
func (a *ListAdapter[Item, H]) Release() {
	a.bound = false
}
