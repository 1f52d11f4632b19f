package adapter

import "github.com/go-drift/listbind/pkg/host"

// Binding supplies the application-defined rendering logic for a ListAdapter.
//
// CreateHolder and BindHolder are required; the remaining fields are optional
// refinements with single-view-type, position-identity defaults. BindHolder
// must be idempotent: holders are recycled and rebound with different items
// over their lifetime.
type Binding[Item any, H host.ViewHolder] struct {
	// CreateHolder builds a fresh holder for the given view type.
	CreateHolder func(parent host.Container, viewType int) H

	// BindHolder binds the item at position into a (possibly reused) holder.
	// Its only side effect should be mutating the holder's visual state.
	BindHolder func(holder H, item Item, position int)

	// ViewType classifies a position. Nil means every position uses type 0.
	// Returned values must lie in [0, ViewTypeCount) and stay stable for a
	// position's semantic role.
	ViewType func(item Item, position int) int

	// ViewTypeCount is the number of distinct values ViewType may return.
	// Zero means one.
	ViewTypeCount int

	// ItemID derives a persistent identity for an item. Nil means positions
	// are used as IDs and the adapter does not advertise stable IDs.
	ItemID func(item Item, position int) int64

	// Enabled reports whether the item at position accepts clicks.
	// Nil means every item is enabled.
	Enabled func(item Item, position int) bool
}

func (b Binding[Item, H]) viewTypeCount() int {
	if b.ViewTypeCount < 1 {
		return 1
	}
	return b.ViewTypeCount
}
