// Package converter translates a generic ListAdapter into the specific
// callback surface each concrete host widget requires.
//
// LegacyConverter drives the older view-recycling list widget
// (host.AdapterListView): it serves as the widget's data source, pushes
// refreshes by calling RefreshVisibleRows, and resolves row clicks back to
// items through a view-to-holder side table.
//
// RecyclerConverter drives the virtualized list widget (host.RecyclerHost):
// it serves the internal, fixed-row-aware data source, translates the
// widget's low-level touch events into enabled-filtered click callbacks, and
// manages its own observer subscription, including rebinding to a different
// adapter and cleanup.
//
// Both converters subscribe to the adapter's ListObserver and marshal every
// change notification onto the UI thread through pkg/uithread before touching
// the widget, so a mutation made on a background goroutine never triggers a
// rendering call inline.
package converter
