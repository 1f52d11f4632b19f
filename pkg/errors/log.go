package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including the error kind.
	Verbose bool
}

// HandleError logs a BindError to stderr.
func (h *LogHandler) HandleError(err *BindError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[listbind error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[listbind error] %s: %v\n", err.Op, err.Err)
	}
}
