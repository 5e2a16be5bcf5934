// Completion: 100% - Module complete
package main

import (
	"bytes"
	"fmt"
	"os"
)

// SafeBuffer wraps bytes.Buffer with explicit lifecycle management.
// A payload is assembled exactly once; Commit() seals it so later writes
// panic instead of silently corrupting fixture bytes that tests pin.
type SafeBuffer struct {
	buf       *bytes.Buffer
	committed bool   // True once Commit() is called
	name      string // For debugging
}

// NewSafeBuffer creates a new SafeBuffer with a name for debugging
func NewSafeBuffer(name string) *SafeBuffer {
	return &SafeBuffer{
		buf:  &bytes.Buffer{},
		name: name,
	}
}

// Writer returns the emission wrapper for this buffer
func (sb *SafeBuffer) Writer() Writer {
	if sb.committed {
		panic(fmt.Sprintf("SafeBuffer(%s): Cannot write to committed buffer", sb.name))
	}
	return &BufferWrapper{sb.buf}
}

// Bytes returns the buffer contents. Safe to call after commit.
func (sb *SafeBuffer) Bytes() []byte {
	return sb.buf.Bytes()
}

// Len returns the buffer length
func (sb *SafeBuffer) Len() int {
	return sb.buf.Len()
}

// Commit marks the buffer as complete. After this, no more writes allowed.
func (sb *SafeBuffer) Commit() {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, "SafeBuffer(%s): Committed with %d bytes\n", sb.name, sb.buf.Len())
	}
	sb.committed = true
}

// IsCommitted returns true if the buffer has been committed
func (sb *SafeBuffer) IsCommitted() bool {
	return sb.committed
}
