package adapter

import (
	"fmt"

	"github.com/go-drift/listbind/pkg/errors"
	"github.com/go-drift/listbind/pkg/host"
)

// FixedRow describes a header or footer row. Fixed rows render themselves
// when created and are never rebound, so they carry no binding function.
type FixedRow struct {
	// Create builds the row's holder. Required.
	Create func(parent host.Container) host.ViewHolder
	// Enabled reports whether the row accepts clicks. Fixed rows default to
	// not clickable.
	Enabled bool
}

type rowRole int

const (
	rowHeader rowRole = iota
	rowItem
	rowFooter
)

// AddHeader appends a header row above the item range and emits a change.
func (a *ListAdapter[Item, H]) AddHeader(row FixedRow) {
	if row.Create == nil {
		panic("adapter: FixedRow.Create is required")
	}
	a.headers = append(a.headers, row)
	a.observer.NotifyChanged()
}

// AddFooter appends a footer row below the item range and emits a change.
func (a *ListAdapter[Item, H]) AddFooter(row FixedRow) {
	if row.Create == nil {
		panic("adapter: FixedRow.Create is required")
	}
	a.footers = append(a.footers, row)
	a.observer.NotifyChanged()
}

// HeaderCount returns the number of header rows.
func (a *ListAdapter[Item, H]) HeaderCount() int {
	return len(a.headers)
}

// FooterCount returns the number of footer rows.
func (a *ListAdapter[Item, H]) FooterCount() int {
	return len(a.footers)
}

// roleAt resolves an internal position to its role and the index within that
// role's group (header index, item position, or footer index).
func (a *ListAdapter[Item, H]) roleAt(position int) (rowRole, int) {
	if position < len(a.headers) {
		return rowHeader, position
	}
	position -= len(a.headers)
	if position < len(a.items) {
		return rowItem, position
	}
	return rowFooter, position - len(a.items)
}

// InternalCount returns the row count including headers and footers. This is
// the count the virtualized converter reports to its host.
func (a *ListAdapter[Item, H]) InternalCount() int {
	return len(a.headers) + len(a.items) + len(a.footers)
}

// InternalItemViewType classifies an internal position. Header rows occupy
// types [0, headers), item types follow offset by the header count, and
// footer types come after the item type range. Types stay disjoint across
// roles so a recycled holder is never handed to the wrong construction path.
func (a *ListAdapter[Item, H]) InternalItemViewType(position int) int {
	switch role, index := a.roleAt(position); role {
	case rowHeader:
		return index
	case rowFooter:
		return len(a.headers) + a.ViewTypeCount() + index
	default:
		return len(a.headers) + a.ViewTypeAt(index)
	}
}

// InternalItemID returns the identity of an internal position. Fixed rows use
// negative IDs derived from their index so they never collide with item IDs.
func (a *ListAdapter[Item, H]) InternalItemID(position int) int64 {
	switch role, index := a.roleAt(position); role {
	case rowHeader:
		return -(int64(index) + 1)
	case rowFooter:
		return -(int64(len(a.headers)+index) + 1)
	default:
		return a.IDAt(index)
	}
}

// InternalIsEnabled reports whether the row at an internal position accepts
// clicks. Converters consult this before any click dispatch; disabled rows
// produce no callbacks at all.
func (a *ListAdapter[Item, H]) InternalIsEnabled(position int) bool {
	switch role, index := a.roleAt(position); role {
	case rowHeader:
		return a.headers[index].Enabled
	case rowFooter:
		if index >= len(a.footers) {
			return false
		}
		return a.footers[index].Enabled
	default:
		return a.IsEnabledAt(index)
	}
}

// CreateInternalViewHolder builds a holder for an internal view type,
// routing fixed-row types to their row's creator and item types to the
// binding's factory.
func (a *ListAdapter[Item, H]) CreateInternalViewHolder(parent host.Container, viewType int) host.ViewHolder {
	if viewType < 0 || viewType >= len(a.headers)+a.ViewTypeCount()+len(a.footers) {
		errors.Report(&errors.BindError{
			Op:   "adapter.CreateInternalViewHolder",
			Kind: errors.KindIndex,
			Err:  fmt.Errorf("view type %d out of range", viewType),
		})
		return nil
	}
	if viewType < len(a.headers) {
		return a.headers[viewType].Create(parent)
	}
	viewType -= len(a.headers)
	if viewType < a.ViewTypeCount() {
		return a.binding.CreateHolder(parent, viewType)
	}
	return a.footers[viewType-a.ViewTypeCount()].Create(parent)
}

// BindInternalViewHolder binds the row at an internal position. Fixed rows
// are self-rendering and skipped. A holder whose type does not match the
// binding's holder type is dropped, not propagated: the tag was attached by
// this library during creation, so a mismatch means the widget handed back a
// stale holder it has not reconciled yet.
func (a *ListAdapter[Item, H]) BindInternalViewHolder(holder host.ViewHolder, position int) error {
	role, index := a.roleAt(position)
	if role != rowItem {
		return nil
	}
	if index >= len(a.items) {
		return errors.NewIndexError("adapter.BindInternalViewHolder", position, a.InternalCount())
	}
	typed, ok := holder.(H)
	if !ok {
		errors.Report(&errors.BindError{
			Op:   "adapter.BindInternalViewHolder",
			Kind: errors.KindTypeMismatch,
			Err:  fmt.Errorf("holder %T does not match the adapter's holder type", holder),
		})
		return nil
	}
	return a.BindViewHolder(typed, index)
}
