package converter

import (
	"fmt"

	"github.com/go-drift/listbind/pkg/adapter"
	"github.com/go-drift/listbind/pkg/errors"
	"github.com/go-drift/listbind/pkg/host"
	"github.com/go-drift/listbind/pkg/uithread"
)

// RecyclerItemClickListener receives the rich click information the
// virtualized widget reports: the holder, the host it lives in, the internal
// position, and the touch coordinates.
type RecyclerItemClickListener[H host.ViewHolder] func(
	holder H, parent host.RecyclerHost, position int, x, y float64)

// RecyclerConverter adapts a ListAdapter to the virtualized list widget's
// callback surface, including fixed rows, stable IDs, and enabled-filtered
// click dispatch.
//
// A converter may be rebound to a different adapter with SetAdapter, and must
// be released with Cleanup before being discarded; otherwise its observer
// subscription keeps the adapter's listener list from shrinking.
type RecyclerConverter[Item any, H host.ViewHolder] struct {
	listAdapter *adapter.ListAdapter[Item, H]
	widget      host.RecyclerHost

	removeObserver func()

	itemClick     RecyclerItemClickListener[H]
	itemLongClick RecyclerItemClickListener[H]
}

// NewRecyclerConverter creates a converter for the given adapter and binds it
// to widget. Widget may be nil; call BindToRecyclerView later in that case.
// Construction forces one refresh of the bound widget so it pulls the initial
// dataset.
func NewRecyclerConverter[Item any, H host.ViewHolder](
	listAdapter *adapter.ListAdapter[Item, H], widget host.RecyclerHost) *RecyclerConverter[Item, H] {
	c := &RecyclerConverter[Item, H]{}
	if !listAdapter.Acquire() {
		errors.Report(&errors.BindError{
			Op:   "converter.NewRecyclerConverter",
			Kind: errors.KindLifecycle,
			Err:  fmt.Errorf("adapter already backs another converter"),
		})
	}
	c.SetAdapter(listAdapter)
	c.BindToRecyclerView(widget)
	if c.widget != nil {
		c.widget.NotifyDataSetChanged()
	}
	return c
}

// Adapter returns the adapter this converter currently presents.
func (c *RecyclerConverter[Item, H]) Adapter() *adapter.ListAdapter[Item, H] {
	return c.listAdapter
}

// SetAdapter replaces the presented adapter. The observer subscription on the
// previous adapter is removed first, so mutating the old adapter afterwards
// produces no refresh through this converter. The new adapter's stable-ID
// capability is propagated to the bound widget.
func (c *RecyclerConverter[Item, H]) SetAdapter(listAdapter *adapter.ListAdapter[Item, H]) {
	if c.removeObserver != nil {
		c.removeObserver()
		c.removeObserver = nil
	}
	c.listAdapter = listAdapter
	c.removeObserver = listAdapter.Observer().AddListener(c.onCollectionChanged)
	if c.widget != nil {
		c.widget.SetHasStableIDs(listAdapter.HasStableIDs())
	}
}

// BindToRecyclerView installs this converter as the widget's data source and
// touch listener. A nil widget is a no-op so callers can bind later; the
// converter still functions as a data source without one, but click events
// and refreshes need the binding.
func (c *RecyclerConverter[Item, H]) BindToRecyclerView(widget host.RecyclerHost) {
	if widget == nil {
		return
	}
	c.widget = widget
	widget.SetDataSource(c)
	widget.AddItemTouchListener(c)
	widget.SetHasStableIDs(c.listAdapter.HasStableIDs())
}

// Cleanup removes this converter's listener from the adapter's observer and
// releases the adapter for use by another converter. Call before discarding
// the converter; a forgotten Cleanup leaves a dangling subscription.
func (c *RecyclerConverter[Item, H]) Cleanup() {
	if c.removeObserver != nil {
		c.removeObserver()
		c.removeObserver = nil
	}
	if c.listAdapter != nil {
		c.listAdapter.Release()
	}
}

// SetRecyclerItemClickListener registers the rich click listener. Pass nil to
// clear.
func (c *RecyclerConverter[Item, H]) SetRecyclerItemClickListener(listener RecyclerItemClickListener[H]) {
	c.itemClick = listener
}

// SetRecyclerItemLongClickListener registers the rich long-press listener.
func (c *RecyclerConverter[Item, H]) SetRecyclerItemLongClickListener(listener RecyclerItemClickListener[H]) {
	c.itemLongClick = listener
}

// SetItemClickedListener delegates to the adapter's click listener registry.
func (c *RecyclerConverter[Item, H]) SetItemClickedListener(listener adapter.ItemClickedListener[Item, H]) {
	c.listAdapter.SetItemClickedListener(listener)
}

// SetItemLongClickedListener delegates to the adapter's registry.
func (c *RecyclerConverter[Item, H]) SetItemLongClickedListener(listener adapter.ItemClickedListener[Item, H]) {
	c.listAdapter.SetItemLongClickedListener(listener)
}

// SetHeaderClickedListener delegates to the adapter's registry.
func (c *RecyclerConverter[Item, H]) SetHeaderClickedListener(listener adapter.FixedRowClickedListener) {
	c.listAdapter.SetHeaderClickedListener(listener)
}

// SetHeaderLongClickedListener delegates to the adapter's registry.
func (c *RecyclerConverter[Item, H]) SetHeaderLongClickedListener(listener adapter.FixedRowClickedListener) {
	c.listAdapter.SetHeaderLongClickedListener(listener)
}

// SetFooterClickedListener delegates to the adapter's registry.
func (c *RecyclerConverter[Item, H]) SetFooterClickedListener(listener adapter.FixedRowClickedListener) {
	c.listAdapter.SetFooterClickedListener(listener)
}

// SetFooterLongClickedListener delegates to the adapter's registry.
func (c *RecyclerConverter[Item, H]) SetFooterLongClickedListener(listener adapter.FixedRowClickedListener) {
	c.listAdapter.SetFooterLongClickedListener(listener)
}

func (c *RecyclerConverter[Item, H]) onCollectionChanged() {
	if !uithread.Dispatch(c.refresh) {
		errors.Report(&errors.BindError{
			Op:   "converter.RecyclerConverter.onCollectionChanged",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("no UI-thread dispatcher registered; refresh dropped"),
		})
	}
}

// refresh runs on the UI thread.
func (c *RecyclerConverter[Item, H]) refresh() {
	if c.widget != nil {
		c.widget.NotifyDataSetChanged()
	}
}

// ItemCount implements host.RecyclerDataSource.
func (c *RecyclerConverter[Item, H]) ItemCount() int {
	return c.listAdapter.InternalCount()
}

// ItemViewType implements host.RecyclerDataSource.
func (c *RecyclerConverter[Item, H]) ItemViewType(position int) int {
	return c.listAdapter.InternalItemViewType(position)
}

// ItemID implements host.RecyclerDataSource.
func (c *RecyclerConverter[Item, H]) ItemID(position int) int64 {
	return c.listAdapter.InternalItemID(position)
}

// CreateViewHolder implements host.RecyclerDataSource.
func (c *RecyclerConverter[Item, H]) CreateViewHolder(parent host.Container, viewType int) host.ViewHolder {
	return c.listAdapter.CreateInternalViewHolder(parent, viewType)
}

// BindViewHolder implements host.RecyclerDataSource.
func (c *RecyclerConverter[Item, H]) BindViewHolder(holder host.ViewHolder, position int) {
	if err := c.listAdapter.BindInternalViewHolder(holder, position); err != nil {
		errors.Report(&errors.BindError{
			Op:   "converter.RecyclerConverter.BindViewHolder",
			Kind: errors.KindIndex,
			Err:  err,
		})
	}
}

// OnItemClick implements host.TouchListener.
func (c *RecyclerConverter[Item, H]) OnItemClick(holder host.ViewHolder, parent host.RecyclerHost, position int, x, y float64) {
	c.dispatchPress(holder, parent, position, x, y, false)
}

// OnItemLongClick implements host.TouchListener.
func (c *RecyclerConverter[Item, H]) OnItemLongClick(holder host.ViewHolder, parent host.RecyclerHost, position int, x, y float64) {
	c.dispatchPress(holder, parent, position, x, y, true)
}

// dispatchPress drops events at disabled positions entirely. For enabled
// positions it invokes the rich listener first, then the adapter's
// click-accounting hook so header/footer listeners registered on the adapter
// fire as well.
func (c *RecyclerConverter[Item, H]) dispatchPress(holder host.ViewHolder, parent host.RecyclerHost, position int, x, y float64, long bool) {
	if !c.listAdapter.InternalIsEnabled(position) {
		return
	}
	listener := c.itemClick
	if long {
		listener = c.itemLongClick
	}
	if listener != nil {
		if typed, ok := holder.(H); ok {
			listener(typed, parent, position, x, y)
		} else {
			// Fixed-row holders and mid-recycle strays are not the binding's
			// holder type; the rich listener is item-typed, so skip it. The
			// adapter hook below still routes headers and footers.
			errors.Report(&errors.BindError{
				Op:   "converter.RecyclerConverter.dispatchPress",
				Kind: errors.KindTypeMismatch,
				Err:  fmt.Errorf("holder %T does not match the adapter's holder type", holder),
			})
		}
	}
	if long {
		c.listAdapter.OnItemLongClicked(position, holder)
	} else {
		c.listAdapter.OnItemClicked(position, holder)
	}
}
