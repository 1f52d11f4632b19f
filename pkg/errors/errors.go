// Package errors provides structured error handling for the listbind library.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindIndex indicates a position outside the valid range of a collection.
	KindIndex
	// KindTypeMismatch indicates a holder of an unexpected type during dispatch.
	KindTypeMismatch
	// KindDispatch indicates a failure to marshal a callback onto the UI thread.
	KindDispatch
	// KindLifecycle indicates misuse of an adapter or converter lifetime contract.
	KindLifecycle
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindDispatch:
		return "dispatch"
	case KindLifecycle:
		return "lifecycle"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BindError represents a structured error in the listbind library.
type BindError struct {
	// Op is the operation that failed (e.g., "converter.RecyclerConverter.OnItemClick").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// IndexError reports a position outside [0, Count).
type IndexError struct {
	// Op is the operation that was given the bad position.
	Op string
	// Position is the requested position.
	Position int
	// Count is the number of valid positions.
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: position %d out of range [0, %d)", e.Op, e.Position, e.Count)
}

// NewIndexError returns an IndexError for the given operation and range.
func NewIndexError(op string, position, count int) *IndexError {
	return &IndexError{Op: op, Position: position, Count: count}
}
