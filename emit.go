// Completion: 100% - Utility module complete
package main

import (
	"bytes"
	"fmt"
	"os"
)

// emit.go - Byte emission layer
//
// All payload bytes flow through the Writer interface. BufferWrapper is
// the only implementation; it appends to a bytes.Buffer and, in verbose
// mode, traces every emitted byte to stderr.

type Writer interface {
	Write(b byte) int
	WriteN(b byte, n int) int
	WriteBytes(bs []byte) int
	WriteUnsigned(i uint) int
	WriteWord(w uint32) int
}

type BufferWrapper struct {
	buf *bytes.Buffer
}

func (bw *BufferWrapper) Write(b byte) int {
	bw.buf.Write([]byte{b})
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %x", b)
	}
	return 1
}

func (bw *BufferWrapper) WriteN(b byte, n int) int {
	for i := 0; i < n; i++ {
		bw.Write(b)
	}
	return n
}

func (bw *BufferWrapper) WriteBytes(bs []byte) int {
	bw.buf.Write(bs)
	if VerboseMode {
		for _, b := range bs {
			fmt.Fprintf(os.Stderr, " %x", b)
		}
	}
	return len(bs)
}

// WriteUnsigned writes a 32-bit immediate in little-endian byte order
func (bw *BufferWrapper) WriteUnsigned(i uint) int {
	a := byte(i & 0xff)
	b := byte((i >> 8) & 0xff)
	c := byte((i >> 16) & 0xff)
	d := byte((i >> 24) & 0xff)
	bw.buf.Write([]byte{a, b, c, d})
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %x %x %x %x", a, b, c, d)
	}
	return 4
}

// WriteWord writes a 32-bit instruction word in little-endian byte order.
// ARM instructions are fixed-width words, so this is the natural unit there.
func (bw *BufferWrapper) WriteWord(w uint32) int {
	return bw.WriteUnsigned(uint(w))
}
