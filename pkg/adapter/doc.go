// Package adapter provides ListAdapter, an observable ordered item collection
// paired with the application's item-to-view binding logic.
//
// A ListAdapter answers the position-indexed queries a list widget needs
// (count, item, ID, view type), creates and binds view holders through an
// injected Binding, and emits a generic change notification through its
// ListObserver whenever the collection mutates. It never talks to a widget
// directly; the converter packages translate between a ListAdapter and a
// concrete host widget's callback surface.
//
// # Threading
//
// All queries and mutations are expected on the single UI thread; the library
// adds no locking around the collection. Mutating from a background goroutine
// requires external coordination, but the resulting change notification is
// always marshaled onto the UI thread by the converters before any widget
// refresh.
//
// # Fixed rows
//
// Header and footer rows sit above and below the item range in the internal
// position space used by the virtualized converter:
//
//	[0, headers) [headers, headers+count) [headers+count, internalCount)
//
// Fixed rows render themselves at creation and are skipped by the bind path.
package adapter
