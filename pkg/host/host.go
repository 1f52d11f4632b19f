// Package host declares the boundary contracts between the listbind library
// and the platform list-rendering widgets.
//
// The widgets themselves are external collaborators: this package only names
// the callback surfaces they pull from (data sources), the handles they hand
// back (views and holders), and the refresh and touch entry points the
// converters drive. Nothing here renders.
package host

// View is an opaque handle to a platform-owned row view. Hosts must supply
// comparable (pointer-shaped) values so a View can key identity maps.
type View = any

// Container is the parent view group a holder factory inflates into.
type Container = any

// ViewHolder is a reusable handle for the on-screen representation of one
// row. Holders are created by an adapter's factory, rebound to different
// items as rows recycle, and destroyed by the host widget — never by this
// library.
type ViewHolder interface {
	// ItemView returns the root view of the row this holder manages.
	ItemView() View
}

// LegacyDataSource is the callback surface the legacy recycling list widget
// pulls row data from.
type LegacyDataSource interface {
	// Count returns the number of rows.
	Count() int
	// ViewTypeCount returns how many distinct view types View may produce.
	ViewTypeCount() int
	// ItemViewType classifies the row at position.
	ItemViewType(position int) int
	// ItemID returns the row's identity, stable if the backing adapter
	// supports stable IDs.
	ItemID(position int) int64
	// View returns a bound row view for position, reusing convertView when
	// the widget recycles one.
	View(position int, convertView View, parent Container) View
	// DropDownView is the drop-down variant of View.
	DropDownView(position int, convertView View, parent Container) View
}

// ItemClickFunc receives the clicked row's position and view from the legacy
// widget.
type ItemClickFunc func(position int, view View)

// AdapterListView is the legacy recycling list widget boundary.
type AdapterListView interface {
	// SetDataSource installs the widget's row data source.
	SetDataSource(source LegacyDataSource)
	// SetOnItemClick installs the widget's item click callback.
	SetOnItemClick(fn ItemClickFunc)
	// RefreshVisibleRows rebuilds the currently visible rows. Must only be
	// called on the UI thread.
	RefreshVisibleRows()
}

// RecyclerDataSource is the callback surface the virtualized list widget
// pulls row data from.
type RecyclerDataSource interface {
	// ItemCount returns the number of rows, including fixed rows.
	ItemCount() int
	// ItemViewType classifies the row at position.
	ItemViewType(position int) int
	// ItemID returns the row's identity.
	ItemID(position int) int64
	// CreateViewHolder builds a fresh holder for the given view type.
	CreateViewHolder(parent Container, viewType int) ViewHolder
	// BindViewHolder binds the row at position into a (possibly reused)
	// holder.
	BindViewHolder(holder ViewHolder, position int)
}

// TouchListener receives the virtualized widget's low-level per-item touch
// events, already resolved to a row.
type TouchListener interface {
	OnItemClick(holder ViewHolder, parent RecyclerHost, position int, x, y float64)
	OnItemLongClick(holder ViewHolder, parent RecyclerHost, position int, x, y float64)
}

// RecyclerHost is the virtualized list widget boundary.
type RecyclerHost interface {
	// SetDataSource installs the widget's row data source.
	SetDataSource(source RecyclerDataSource)
	// AddItemTouchListener installs a low-level touch listener.
	AddItemTouchListener(listener TouchListener)
	// SetHasStableIDs tells the widget whether ItemID values persist across
	// dataset changes.
	SetHasStableIDs(stable bool)
	// NotifyDataSetChanged tells the widget to re-pull everything. Must only
	// be called on the UI thread.
	NotifyDataSetChanged()
}
