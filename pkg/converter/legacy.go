package converter

import (
	"fmt"

	"github.com/go-drift/listbind/pkg/adapter"
	"github.com/go-drift/listbind/pkg/errors"
	"github.com/go-drift/listbind/pkg/host"
	"github.com/go-drift/listbind/pkg/uithread"
)

// LegacyItemClickedListener receives a resolved click from the legacy widget:
// the adapter the item came from, the item, its holder, and its position.
type LegacyItemClickedListener[Item any, H host.ViewHolder] func(
	listAdapter *adapter.ListAdapter[Item, H], item Item, holder H, position int)

// LegacyConverter adapts a ListAdapter to the legacy recycling list widget's
// callback surface.
//
// The converter binds to exactly one adapter at construction and cannot be
// rebound; the legacy widget's single-adapter-per-lifetime model makes a
// rebind path pointless. There is no unregister operation either — the
// binding ends when the widget is discarded.
type LegacyConverter[Item any, H host.ViewHolder] struct {
	listAdapter *adapter.ListAdapter[Item, H]
	widget      host.AdapterListView

	// holders maps a row view back to the holder bound to it, replacing the
	// view-tag cast the click path would otherwise need.
	holders map[host.View]H

	itemClicked LegacyItemClickedListener[Item, H]
}

// NewLegacyConverter creates a converter for the given adapter and subscribes
// to its change notifications. Refreshes reach the widget on the UI thread
// only after Register has been called.
func NewLegacyConverter[Item any, H host.ViewHolder](listAdapter *adapter.ListAdapter[Item, H]) *LegacyConverter[Item, H] {
	c := &LegacyConverter[Item, H]{
		listAdapter: listAdapter,
		holders:     make(map[host.View]H),
	}
	listAdapter.Observer().AddListener(c.onCollectionChanged)
	return c
}

// Adapter returns the adapter this converter presents.
func (c *LegacyConverter[Item, H]) Adapter() *adapter.ListAdapter[Item, H] {
	return c.listAdapter
}

// Register installs this converter as the widget's data source and click
// handler. The widget subsequently pulls all row data through the converter.
// Calling Register again overwrites the widget's wiring; the previous widget
// simply stops receiving refreshes.
func (c *LegacyConverter[Item, H]) Register(widget host.AdapterListView) {
	c.widget = widget
	widget.SetDataSource(c)
	widget.SetOnItemClick(c.onItemClick)
}

// SetItemClickedListener registers the listener invoked when a row is
// clicked. Pass nil to clear; clicks are then ignored.
func (c *LegacyConverter[Item, H]) SetItemClickedListener(listener LegacyItemClickedListener[Item, H]) {
	c.itemClicked = listener
}

// NotifyDataSetChanged forces a refresh through the adapter's own
// notification path, without a collection mutation.
func (c *LegacyConverter[Item, H]) NotifyDataSetChanged() {
	c.listAdapter.NotifyDataSetChanged()
}

func (c *LegacyConverter[Item, H]) onCollectionChanged() {
	if !uithread.Dispatch(c.refresh) {
		errors.Report(&errors.BindError{
			Op:   "converter.LegacyConverter.onCollectionChanged",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("no UI-thread dispatcher registered; refresh dropped"),
		})
	}
}

// refresh runs on the UI thread.
func (c *LegacyConverter[Item, H]) refresh() {
	if c.widget != nil {
		c.widget.RefreshVisibleRows()
	}
}

// Count implements host.LegacyDataSource.
func (c *LegacyConverter[Item, H]) Count() int {
	return c.listAdapter.Count()
}

// ViewTypeCount implements host.LegacyDataSource.
func (c *LegacyConverter[Item, H]) ViewTypeCount() int {
	return c.listAdapter.ViewTypeCount()
}

// ItemViewType implements host.LegacyDataSource.
func (c *LegacyConverter[Item, H]) ItemViewType(position int) int {
	return c.listAdapter.ViewTypeAt(position)
}

// ItemID implements host.LegacyDataSource.
func (c *LegacyConverter[Item, H]) ItemID(position int) int64 {
	return c.listAdapter.IDAt(position)
}

// View implements host.LegacyDataSource. A recycled convertView is rebound
// through its holder from the side table; anything else gets a fresh holder,
// recorded under its root view for click resolution.
func (c *LegacyConverter[Item, H]) View(position int, convertView host.View, parent host.Container) host.View {
	holder, ok := c.holders[convertView]
	if !ok {
		holder = c.listAdapter.CreateViewHolder(parent, c.listAdapter.ViewTypeAt(position))
		c.holders[holder.ItemView()] = holder
	}
	if err := c.listAdapter.BindViewHolder(holder, position); err != nil {
		errors.Report(&errors.BindError{
			Op:   "converter.LegacyConverter.View",
			Kind: errors.KindIndex,
			Err:  err,
		})
	}
	return holder.ItemView()
}

// DropDownView implements host.LegacyDataSource by reusing the View path.
func (c *LegacyConverter[Item, H]) DropDownView(position int, convertView host.View, parent host.Container) host.View {
	return c.View(position, convertView, parent)
}

func (c *LegacyConverter[Item, H]) onItemClick(position int, view host.View) {
	if c.itemClicked == nil {
		return
	}
	holder, ok := c.holders[view]
	if !ok {
		// The widget reported a view this converter never bound; a stale row
		// mid-recycle. Drop the click.
		errors.Report(&errors.BindError{
			Op:   "converter.LegacyConverter.onItemClick",
			Kind: errors.KindTypeMismatch,
			Err:  fmt.Errorf("no holder recorded for clicked view at position %d", position),
		})
		return
	}
	item, err := c.listAdapter.ItemAt(position)
	if err != nil {
		errors.Report(&errors.BindError{
			Op:   "converter.LegacyConverter.onItemClick",
			Kind: errors.KindIndex,
			Err:  err,
		})
		return
	}
	c.itemClicked(c.listAdapter, item, holder, position)
}
