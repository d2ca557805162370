// Package logger implements a small central logger used throughout the
// emulator for non-fatal, recoverable conditions (see the error handling
// design in SPEC_FULL.md section 7). Entries are de-duplicated and capped
// at a maximum count so a noisy ROM can't exhaust memory.
package logger

import (
	"io"
)

// maximum number of entries in the central logger.
const maxCentral = 256

// central is the package-level logger used by package-level Log/Logf/Write
// etc. Most callers use this; the exported Logger type exists so tests (and
// any caller that wants an isolated log) don't have to share global state.
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, pattern string, args ...interface{}) {
	central.Logf(perm, tag, pattern, args...)
}

// Clear removes all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the entire contents of the central logger to w.
func Write(w io.Writer) bool {
	return central.Write(w)
}

// Tail writes the last n entries of the central logger to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// SetEcho causes every new central log entry to also be written to w as it
// is created. Pass nil to disable echoing.
func SetEcho(w io.Writer) {
	central.SetEcho(w)
}
