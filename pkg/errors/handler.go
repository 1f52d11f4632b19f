package errors

import (
	"fmt"
	"sync"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// ErrorHandler receives errors reported by the listbind library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BindError)
}

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// getHandler returns the current error handler.
func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
func Report(err *BindError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// Recover is a helper for deferred panic recovery around application-supplied
// callbacks. A recovered panic is reported as a KindPanic error.
// Usage: defer errors.Recover("observe.NotifyChanged")
func Recover(op string) {
	if r := recover(); r != nil {
		Report(&BindError{
			Op:   op,
			Kind: KindPanic,
			Err:  fmt.Errorf("%v", r),
		})
	}
}
